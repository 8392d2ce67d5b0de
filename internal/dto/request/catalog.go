package request

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type TheaterRequest struct {
	Room      int `json:"room" validate:"required,gt=0"`
	TotalSeat int `json:"total_seat" validate:"required,gt=0"`
}
