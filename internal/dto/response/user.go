package response

import "movie-ticketing/internal/data/entity"

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Balance:  user.Balance,
	}
}
