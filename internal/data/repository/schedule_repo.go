package repository

import (
	"context"
	"fmt"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/pkg/apperrors"
	"movie-ticketing/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindByID(ctx context.Context, id int64) (*entity.Schedule, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Schedule, error)
	Update(ctx context.Context, schedule *entity.Schedule) error
	Delete(ctx context.Context, id int64) error
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

func (sr *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (movie_id, theater_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := sr.db.QueryRow(ctx, query,
		schedule.MovieID,
		schedule.TheaterID,
		schedule.ShowTime,
	).Scan(&schedule.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrScheduleExists
		}
		sr.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.Int64("movie_id", schedule.MovieID),
			zap.String("show_time", schedule.ShowTime),
		)
		return fmt.Errorf("create schedule for movie %d at %s: %w", schedule.MovieID, schedule.ShowTime, err)
	}

	return nil
}

func (sr *scheduleRepository) FindByID(ctx context.Context, id int64) (*entity.Schedule, error) {
	query := `
		SELECT s.id, s.movie_id, s.theater_id, s.show_time, t.room
		FROM schedules s
		JOIN theaters t ON t.id = s.theater_id
		WHERE s.id = $1
	`

	var schedule entity.Schedule
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.MovieID,
		&schedule.TheaterID,
		&schedule.ShowTime,
		&schedule.TheaterRoom,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.Int64("schedule_id", id),
		)
		return nil, fmt.Errorf("find schedule by ID %d: %w", id, err)
	}

	return &schedule, nil
}

func (sr *scheduleRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Schedule, error) {
	query := `
		SELECT s.id, s.movie_id, s.theater_id, s.show_time, t.room
		FROM schedules s
		JOIN theaters t ON t.id = s.theater_id
		WHERE s.movie_id = $1
		ORDER BY s.show_time
	`

	rows, err := sr.db.Query(ctx, query, movieID)
	if err != nil {
		sr.log.Error("Failed to find schedules by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find schedules by movie ID %d: %w", movieID, err)
	}
	defer rows.Close()

	var schedules []*entity.Schedule
	for rows.Next() {
		var schedule entity.Schedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.MovieID,
			&schedule.TheaterID,
			&schedule.ShowTime,
			&schedule.TheaterRoom,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule rows: %w", err)
	}

	return schedules, nil
}

func (sr *scheduleRepository) Update(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		UPDATE schedules
		SET movie_id = $2, theater_id = $3, show_time = $4
		WHERE id = $1
	`

	result, err := sr.db.Exec(ctx, query,
		schedule.ID,
		schedule.MovieID,
		schedule.TheaterID,
		schedule.ShowTime,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrScheduleExists
		}
		sr.log.Error("Failed to update schedule",
			zap.Error(err),
			zap.Int64("schedule_id", schedule.ID),
		)
		return fmt.Errorf("update schedule %d: %w", schedule.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

func (sr *scheduleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM schedules WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.Int64("schedule_id", id),
		)
		return fmt.Errorf("delete schedule %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	sr.log.Info("Schedule deleted", zap.Int64("schedule_id", id))
	return nil
}
