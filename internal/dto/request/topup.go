package request

type TopupRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type ConfirmTopupRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}
