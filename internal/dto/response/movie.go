package response

import (
	"movie-ticketing/internal/data/entity"
)

type MovieResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Launching   string `json:"launching"`
	CategoryID  int64  `json:"category_id"`
	Category    string `json:"category,omitempty"`
	TicketPrice int64  `json:"ticket_price"`
}

// MovieListResponse is a movie with its nested schedules as returned by /list/.
type MovieListResponse struct {
	MovieResponse
	Schedules []ScheduleInfo `json:"schedules"`
}

type ScheduleInfo struct {
	ID      int64  `json:"id"`
	Time    string `json:"time"`
	Theater int    `json:"theater"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Name:        movie.Name,
		Launching:   movie.Launching.Format("2006-01-02"),
		CategoryID:  movie.CategoryID,
		Category:    movie.CategoryName,
		TicketPrice: movie.TicketPrice,
	}
}

func MovieToListResponse(movie *entity.Movie, schedules []*entity.Schedule) MovieListResponse {
	infos := make([]ScheduleInfo, len(schedules))
	for i, schedule := range schedules {
		infos[i] = ScheduleInfo{
			ID:      schedule.ID,
			Time:    schedule.ShowTime,
			Theater: schedule.TheaterRoom,
		}
	}

	return MovieListResponse{
		MovieResponse: MovieToResponse(movie),
		Schedules:     infos,
	}
}
