package usecase

import (
	"context"
	"time"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/dto/response"
	"movie-ticketing/pkg/apperrors"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	CreateTheater(ctx context.Context, req *request.TheaterRequest) (*response.TheaterResponse, error)

	CreateSchedule(ctx context.Context, req *request.ScheduleRequest) (*response.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, req *request.ScheduleUpdateRequest) (*response.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int64) error

	ListActive(ctx context.Context, playDate time.Time) ([]response.MovieListResponse, error)
	Search(ctx context.Context, query string) ([]response.MovieResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	category, err := s.repo.Category.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	launching, err := utils.ParseDate(req.Launching)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Name:         req.Name,
		Launching:    launching,
		CategoryID:   req.CategoryID,
		TicketPrice:  req.TicketPrice,
		CategoryName: category.Name,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("name", movie.Name),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) UpdateMovie(ctx context.Context, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperrors.ErrMovieNotFound
	}

	if req.Name != nil {
		movie.Name = *req.Name
	}
	if req.Launching != nil {
		launching, err := utils.ParseDate(*req.Launching)
		if err != nil {
			return nil, err
		}
		movie.Launching = launching
	}
	if req.CategoryID != nil {
		category, err := s.repo.Category.FindByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperrors.ErrCategoryNotFound
		}
		movie.CategoryID = *req.CategoryID
		movie.CategoryName = category.Name
	}
	if req.TicketPrice != nil {
		movie.TicketPrice = *req.TicketPrice
	}

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie updated", zap.Int64("movie_id", movie.ID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) DeleteMovie(ctx context.Context, id int64) error {
	return s.repo.Movie.Delete(ctx, id)
}

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	category := &entity.Category{Name: req.Name}
	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info("Category created",
		zap.Int64("category_id", category.ID),
		zap.String("name", category.Name),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) CreateTheater(ctx context.Context, req *request.TheaterRequest) (*response.TheaterResponse, error) {
	theater := &entity.Theater{
		Room:      req.Room,
		TotalSeat: req.TotalSeat,
	}
	if err := s.repo.Theater.Create(ctx, theater); err != nil {
		return nil, err
	}

	s.log.Info("Theater created",
		zap.Int64("theater_id", theater.ID),
		zap.Int("room", theater.Room),
		zap.Int("total_seat", theater.TotalSeat),
	)

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

func (s *catalogService) CreateSchedule(ctx context.Context, req *request.ScheduleRequest) (*response.ScheduleResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperrors.ErrMovieNotFound
	}

	theater, err := s.repo.Theater.FindByID(ctx, req.TheaterID)
	if err != nil {
		return nil, err
	}
	if theater == nil {
		return nil, apperrors.ErrTheaterNotFound
	}

	schedule := &entity.Schedule{
		MovieID:   req.MovieID,
		TheaterID: req.TheaterID,
		ShowTime:  req.Time,
	}

	// The (movie_id, show_time) pair is guarded by a unique constraint;
	// concurrent duplicate inserts surface as ErrScheduleExists.
	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		return nil, err
	}

	s.log.Info("Schedule created",
		zap.Int64("schedule_id", schedule.ID),
		zap.Int64("movie_id", schedule.MovieID),
		zap.String("show_time", schedule.ShowTime),
	)

	resp := response.ScheduleToResponse(schedule)
	return &resp, nil
}

func (s *catalogService) UpdateSchedule(ctx context.Context, req *request.ScheduleUpdateRequest) (*response.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	if req.MovieID != nil {
		movie, err := s.repo.Movie.FindByID(ctx, *req.MovieID)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return nil, apperrors.ErrMovieNotFound
		}
		schedule.MovieID = *req.MovieID
	}
	if req.TheaterID != nil {
		theater, err := s.repo.Theater.FindByID(ctx, *req.TheaterID)
		if err != nil {
			return nil, err
		}
		if theater == nil {
			return nil, apperrors.ErrTheaterNotFound
		}
		schedule.TheaterID = *req.TheaterID
	}
	if req.Time != nil {
		schedule.ShowTime = *req.Time
	}

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		return nil, err
	}

	s.log.Info("Schedule updated", zap.Int64("schedule_id", schedule.ID))

	resp := response.ScheduleToResponse(schedule)
	return &resp, nil
}

func (s *catalogService) DeleteSchedule(ctx context.Context, id int64) error {
	return s.repo.Schedule.Delete(ctx, id)
}

func (s *catalogService) ListActive(ctx context.Context, playDate time.Time) ([]response.MovieListResponse, error) {
	movies, err := s.repo.Movie.FindActive(ctx, playDate)
	if err != nil {
		return nil, err
	}

	list := make([]response.MovieListResponse, 0, len(movies))
	for _, movie := range movies {
		schedules, err := s.repo.Schedule.FindByMovieID(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		list = append(list, response.MovieToListResponse(movie, schedules))
	}

	return list, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		results = append(results, response.MovieToResponse(movie))
	}

	return results, nil
}
