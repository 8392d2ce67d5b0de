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

type TopupRepository interface {
	Create(ctx context.Context, topup *entity.Topup) error
	FindByID(ctx context.Context, id int64) (*entity.Topup, error)

	// Confirm flips the confirmation flag and credits the owning user's
	// balance in one database transaction. Confirmation is terminal: a second
	// call returns ErrTopupConfirmed and credits nothing.
	Confirm(ctx context.Context, id int64) (*entity.Topup, error)
}

type topupRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTopupRepository(db database.PgxIface, log *zap.Logger) TopupRepository {
	return &topupRepository{
		db:  db,
		log: log.With(zap.String("repository", "topup")),
	}
}

func (tr *topupRepository) Create(ctx context.Context, topup *entity.Topup) error {
	query := `
		INSERT INTO topups (user_id, amount, is_confirmed)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := tr.db.QueryRow(ctx, query,
		topup.UserID,
		topup.Amount,
		topup.IsConfirmed,
	).Scan(&topup.ID)

	if err != nil {
		tr.log.Error("Failed to create topup",
			zap.Error(err),
			zap.Int64("user_id", topup.UserID),
			zap.Int64("amount", topup.Amount),
		)
		return fmt.Errorf("create topup for user %d: %w", topup.UserID, err)
	}

	return nil
}

func (tr *topupRepository) FindByID(ctx context.Context, id int64) (*entity.Topup, error) {
	query := `SELECT id, user_id, amount, is_confirmed FROM topups WHERE id = $1`

	var topup entity.Topup
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&topup.ID,
		&topup.UserID,
		&topup.Amount,
		&topup.IsConfirmed,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find topup by ID",
			zap.Error(err),
			zap.Int64("topup_id", id),
		)
		return nil, fmt.Errorf("find topup by ID %d: %w", id, err)
	}

	return &topup, nil
}

func (tr *topupRepository) Confirm(ctx context.Context, id int64) (*entity.Topup, error) {
	tx, err := tr.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin confirm topup %d: %w", id, err)
	}
	defer tx.Rollback(ctx)

	// Row lock so two concurrent confirmations of the same topup serialize.
	var topup entity.Topup
	err = tx.QueryRow(ctx,
		`SELECT id, user_id, amount, is_confirmed FROM topups WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&topup.ID, &topup.UserID, &topup.Amount, &topup.IsConfirmed)

	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrTopupNotFound
	}
	if err != nil {
		tr.log.Error("Failed to lock topup for confirmation",
			zap.Error(err),
			zap.Int64("topup_id", id),
		)
		return nil, fmt.Errorf("lock topup %d: %w", id, err)
	}

	if topup.IsConfirmed {
		return nil, apperrors.ErrTopupConfirmed
	}

	if _, err := tx.Exec(ctx,
		`UPDATE topups SET is_confirmed = TRUE WHERE id = $1`, id,
	); err != nil {
		return nil, fmt.Errorf("mark topup %d confirmed: %w", id, err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET balance = balance + $2 WHERE id = $1`,
		topup.UserID, topup.Amount,
	); err != nil {
		return nil, fmt.Errorf("credit user %d balance: %w", topup.UserID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit confirm topup %d: %w", id, err)
	}

	topup.IsConfirmed = true

	tr.log.Info("Topup confirmed",
		zap.Int64("topup_id", topup.ID),
		zap.Int64("user_id", topup.UserID),
		zap.Int64("amount", topup.Amount),
	)

	return &topup, nil
}
