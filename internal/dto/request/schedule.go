package request

type ScheduleRequest struct {
	MovieID   int64  `json:"movie_id" validate:"required,gt=0"`
	TheaterID int64  `json:"theater_id" validate:"required,gt=0"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
}

type ScheduleUpdateRequest struct {
	ID        int64   `json:"id" validate:"required,gt=0"`
	MovieID   *int64  `json:"movie_id,omitempty" validate:"omitempty,gt=0"`
	TheaterID *int64  `json:"theater_id,omitempty" validate:"omitempty,gt=0"`
	Time      *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
}

type ScheduleDeleteRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}
