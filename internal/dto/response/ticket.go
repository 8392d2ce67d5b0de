package response

import "movie-ticketing/internal/data/entity"

type TicketResponse struct {
	TransactionID    int64  `json:"transaction_id"`
	ScheduleID       int64  `json:"schedule_id"`
	Date             string `json:"date"`
	PricePaid        int64  `json:"price_paid"`
	RemainingBalance int64  `json:"remaining_balance"`
}

func TicketToResponse(transaction *entity.Transaction, pricePaid, remainingBalance int64) TicketResponse {
	return TicketResponse{
		TransactionID:    transaction.ID,
		ScheduleID:       transaction.ScheduleID,
		Date:             transaction.Date.Format("2006-01-02"),
		PricePaid:        pricePaid,
		RemainingBalance: remainingBalance,
	}
}
