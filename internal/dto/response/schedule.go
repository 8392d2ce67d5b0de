package response

import "movie-ticketing/internal/data/entity"

type ScheduleResponse struct {
	ID        int64  `json:"id"`
	MovieID   int64  `json:"movie_id"`
	TheaterID int64  `json:"theater_id"`
	Time      string `json:"time"`
}

func ScheduleToResponse(schedule *entity.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        schedule.ID,
		MovieID:   schedule.MovieID,
		TheaterID: schedule.TheaterID,
		Time:      schedule.ShowTime,
	}
}
