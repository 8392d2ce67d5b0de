package request

type BuyTicketRequest struct {
	ScheduleID int64 `json:"schedule_id" validate:"required,gt=0"`

	// Date is honored only when the booking date policy allows client-chosen
	// dates; otherwise the purchase date is today.
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
