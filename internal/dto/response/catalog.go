package response

import "movie-ticketing/internal/data/entity"

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TheaterResponse struct {
	ID        int64 `json:"id"`
	Room      int   `json:"room"`
	TotalSeat int   `json:"total_seat"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:        theater.ID,
		Room:      theater.Room,
		TotalSeat: theater.TotalSeat,
	}
}
