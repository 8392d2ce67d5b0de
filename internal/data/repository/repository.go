package repository

import (
	"errors"

	"movie-ticketing/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Category    CategoryRepository
	Theater     TheaterRepository
	Movie       MovieRepository
	Schedule    ScheduleRepository
	Topup       TopupRepository
	Transaction TransactionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Theater:     NewTheaterRepository(db, log),
		Movie:       NewMovieRepository(db, log),
		Schedule:    NewScheduleRepository(db, log),
		Topup:       NewTopupRepository(db, log),
		Transaction: NewTransactionRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505). Duplicate checks rely on constraints instead of
// read-before-insert so concurrent inserts cannot race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
