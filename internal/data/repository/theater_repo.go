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

type TheaterRepository interface {
	Create(ctx context.Context, theater *entity.Theater) error
	FindByID(ctx context.Context, id int64) (*entity.Theater, error)
	FindAll(ctx context.Context) ([]*entity.Theater, error)
}

type theaterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTheaterRepository(db database.PgxIface, log *zap.Logger) TheaterRepository {
	return &theaterRepository{
		db:  db,
		log: log,
	}
}

func (tr *theaterRepository) Create(ctx context.Context, theater *entity.Theater) error {
	query := `INSERT INTO theaters (room, total_seat) VALUES ($1, $2) RETURNING id`

	err := tr.db.QueryRow(ctx, query, theater.Room, theater.TotalSeat).Scan(&theater.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrTheaterExists
		}
		tr.log.Error("Failed to create theater",
			zap.Error(err),
			zap.Int("room", theater.Room),
		)
		return fmt.Errorf("create theater room %d: %w", theater.Room, err)
	}

	return nil
}

func (tr *theaterRepository) FindByID(ctx context.Context, id int64) (*entity.Theater, error) {
	query := `SELECT id, room, total_seat FROM theaters WHERE id = $1`

	var theater entity.Theater
	err := tr.db.QueryRow(ctx, query, id).Scan(&theater.ID, &theater.Room, &theater.TotalSeat)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find theater by ID",
			zap.Error(err),
			zap.Int64("theater_id", id),
		)
		return nil, fmt.Errorf("find theater by ID %d: %w", id, err)
	}

	return &theater, nil
}

func (tr *theaterRepository) FindAll(ctx context.Context) ([]*entity.Theater, error) {
	query := `SELECT id, room, total_seat FROM theaters ORDER BY room`

	rows, err := tr.db.Query(ctx, query)
	if err != nil {
		tr.log.Error("Failed to find all theaters", zap.Error(err))
		return nil, fmt.Errorf("find all theaters: %w", err)
	}
	defer rows.Close()

	var theaters []*entity.Theater
	for rows.Next() {
		var theater entity.Theater
		if err := rows.Scan(&theater.ID, &theater.Room, &theater.TotalSeat); err != nil {
			return nil, fmt.Errorf("scan theater row: %w", err)
		}
		theaters = append(theaters, &theater)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate theater rows: %w", err)
	}

	return theaters, nil
}
