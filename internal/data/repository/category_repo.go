package repository

import (
	"context"
	"fmt"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log,
	}
}

func (cr *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`

	err := cr.db.QueryRow(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		cr.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (cr *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`

	var category entity.Category
	err := cr.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, fmt.Errorf("find category by ID %d: %w", id, err)
	}

	return &category, nil
}

func (cr *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to find all categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}
