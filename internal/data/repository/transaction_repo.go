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

type TransactionRepository interface {
	// Purchase books one seat for the schedule on the given date, debiting the
	// buyer's balance. Capacity check, balance check, debit, and insert all
	// run in one database transaction with the schedule and user rows locked,
	// so concurrent purchases cannot oversell a theater or double-spend a
	// balance.
	Purchase(ctx context.Context, userID, scheduleID int64, date time.Time) (*entity.Transaction, error)

	CountForScheduleDate(ctx context.Context, scheduleID int64, date time.Time) (int64, error)
	TopMovies(ctx context.Context, limit int) ([]*entity.MovieRanking, error)
}

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func (r *transactionRepository) Purchase(ctx context.Context, userID, scheduleID int64, date time.Time) (*entity.Transaction, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin purchase: %w", err)
	}
	defer tx.Rollback(ctx)

	// Locking the schedule row serializes purchases per schedule. The user
	// row is always locked after the schedule row to keep lock order
	// consistent across requests.
	var ticketPrice int64
	var totalSeat int
	err = tx.QueryRow(ctx, `
		SELECT m.ticket_price, t.total_seat
		FROM schedules s
		JOIN movies m ON m.id = s.movie_id
		JOIN theaters t ON t.id = s.theater_id
		WHERE s.id = $1
		FOR UPDATE OF s
	`, scheduleID).Scan(&ticketPrice, &totalSeat)

	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrScheduleNotFound
	}
	if err != nil {
		r.log.Error("Failed to lock schedule for purchase",
			zap.Error(err),
			zap.Int64("schedule_id", scheduleID),
		)
		return nil, fmt.Errorf("lock schedule %d: %w", scheduleID, err)
	}

	var sold int64
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE schedule_id = $1 AND date = $2`,
		scheduleID, date,
	).Scan(&sold)
	if err != nil {
		return nil, fmt.Errorf("count sold seats for schedule %d: %w", scheduleID, err)
	}

	if sold >= int64(totalSeat) {
		return nil, apperrors.ErrSoldOut
	}

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&balance)

	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock user %d balance: %w", userID, err)
	}

	if balance < ticketPrice {
		return nil, apperrors.ErrInsufficientBalance
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET balance = balance - $2 WHERE id = $1`,
		userID, ticketPrice,
	); err != nil {
		return nil, fmt.Errorf("debit user %d: %w", userID, err)
	}

	transaction := &entity.Transaction{
		UserID:     userID,
		ScheduleID: scheduleID,
		Date:       date,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO transactions (user_id, schedule_id, date) VALUES ($1, $2, $3) RETURNING id`,
		userID, scheduleID, date,
	).Scan(&transaction.ID)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	r.log.Info("Ticket purchased",
		zap.Int64("transaction_id", transaction.ID),
		zap.Int64("user_id", userID),
		zap.Int64("schedule_id", scheduleID),
		zap.String("date", date.Format("2006-01-02")),
		zap.Int64("price", ticketPrice),
	)

	return transaction, nil
}

func (r *transactionRepository) CountForScheduleDate(ctx context.Context, scheduleID int64, date time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE schedule_id = $1 AND date = $2`,
		scheduleID, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions for schedule %d: %w", scheduleID, err)
	}

	return count, nil
}

// TopMovies aggregates ticket counts per movie across all schedules. Ties are
// broken by ascending movie id so the ranking is deterministic.
func (r *transactionRepository) TopMovies(ctx context.Context, limit int) ([]*entity.MovieRanking, error) {
	query := `
		SELECT m.id, m.name, COUNT(t.id) AS ticket_count
		FROM movies m
		JOIN schedules s ON m.id = s.movie_id
		JOIN transactions t ON s.id = t.schedule_id
		GROUP BY m.id, m.name
		ORDER BY ticket_count DESC, m.id ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query top movies", zap.Error(err))
		return nil, fmt.Errorf("query top movies: %w", err)
	}
	defer rows.Close()

	var rankings []*entity.MovieRanking
	for rows.Next() {
		var ranking entity.MovieRanking
		if err := rows.Scan(&ranking.MovieID, &ranking.MovieName, &ranking.TicketCount); err != nil {
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		rankings = append(rankings, &ranking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ranking rows: %w", err)
	}

	return rankings, nil
}
