package repository

import (
	"context"
	"fmt"
	"time"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/pkg/apperrors"
	"movie-ticketing/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error

	// Business queries
	FindActive(ctx context.Context, playDate time.Time) ([]*entity.Movie, error)
	Search(ctx context.Context, query string) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (mr *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (name, launching, category_id, ticket_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := mr.db.QueryRow(ctx, query,
		movie.Name,
		movie.Launching,
		movie.CategoryID,
		movie.TicketPrice,
	).Scan(&movie.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrMovieExists
		}
		mr.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", movie.Name),
		)
		return fmt.Errorf("create movie %s: %w", movie.Name, err)
	}

	return nil
}

func (mr *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT m.id, m.name, m.launching, m.category_id, m.ticket_price, c.name
		FROM movies m
		JOIN categories c ON c.id = m.category_id
		WHERE m.id = $1
	`

	var movie entity.Movie
	err := mr.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.Launching,
		&movie.CategoryID,
		&movie.TicketPrice,
		&movie.CategoryName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return &movie, nil
}

func (mr *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET name = $2, launching = $3, category_id = $4, ticket_price = $5
		WHERE id = $1
	`

	result, err := mr.db.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.Launching,
		movie.CategoryID,
		movie.TicketPrice,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrMovieExists
		}
		mr.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrMovieNotFound
	}

	return nil
}

func (mr *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := mr.db.Exec(ctx, query, id)
	if err != nil {
		mr.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrMovieNotFound
	}

	mr.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

// FindActive returns movies whose launch date falls within the booking window
// relative to playDate, oldest id first.
func (mr *movieRepository) FindActive(ctx context.Context, playDate time.Time) ([]*entity.Movie, error) {
	query := `
		SELECT m.id, m.name, m.launching, m.category_id, m.ticket_price, c.name
		FROM movies m
		JOIN categories c ON c.id = m.category_id
		WHERE m.launching >= $1 AND m.launching <= $2
		ORDER BY m.id
	`

	minLaunching := playDate.AddDate(0, 0, -entity.ActiveDays)

	rows, err := mr.db.Query(ctx, query, minLaunching, playDate)
	if err != nil {
		mr.log.Error("Failed to find active movies",
			zap.Error(err),
			zap.Time("play_date", playDate),
		)
		return nil, fmt.Errorf("find active movies for %s: %w", playDate.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

// Search matches the query as a case-insensitive substring against movie name
// or category name. Results are deduplicated and ordered by movie id.
func (mr *movieRepository) Search(ctx context.Context, query string) ([]*entity.Movie, error) {
	sql := `
		SELECT m.id, m.name, m.launching, m.category_id, m.ticket_price, c.name
		FROM movies m
		JOIN categories c ON c.id = m.category_id
		WHERE m.name ILIKE $1 OR c.name ILIKE $1
		ORDER BY m.id
	`

	rows, err := mr.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		mr.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search movies %q: %w", query, err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.Launching,
			&movie.CategoryID,
			&movie.TicketPrice,
			&movie.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}
