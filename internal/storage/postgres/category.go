package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"reel_fetcher/internal/domain"
)

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, popularity_percentage, type, created_at, updated_at
		FROM categories
		ORDER BY name`

	var categories []domain.Category
	if err := GetExecutor(ctx, s.db).SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w: %w", domain.ErrPersistence, err)
	}

	return categories, nil
}

func (s *CategoryStore) Insert(ctx context.Context, category *domain.Category) error {
	category.ID = uuid.New()
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	query := `
		INSERT INTO categories (id, name, popularity_percentage, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.PopularityPercentage,
		category.Type,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w: %w", domain.ErrPersistence, err)
	}

	return nil
}
