package response

import "movie-ticketing/internal/data/entity"

type TopupResponse struct {
	ID          int64 `json:"topup_id"`
	Amount      int64 `json:"amount"`
	IsConfirmed bool  `json:"is_confirmed"`
}

func TopupToResponse(topup *entity.Topup) TopupResponse {
	return TopupResponse{
		ID:          topup.ID,
		Amount:      topup.Amount,
		IsConfirmed: topup.IsConfirmed,
	}
}
