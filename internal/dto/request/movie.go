package request

type MovieRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Launching   string `json:"launching" validate:"required,datetime=2006-01-02"`
	CategoryID  int64  `json:"category_id" validate:"required,gt=0"`
	TicketPrice int64  `json:"ticket_price" validate:"required,gt=0"`
}

type MovieUpdateRequest struct {
	ID          int64   `json:"id" validate:"required,gt=0"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Launching   *string `json:"launching,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CategoryID  *int64  `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	TicketPrice *int64  `json:"ticket_price,omitempty" validate:"omitempty,gt=0"`
}

type MovieDeleteRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}
