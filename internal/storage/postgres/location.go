package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"reel_fetcher/internal/domain"
)

const locationColumns = `id, name, formatted_address, place_id, instagram_handle,
	instagram_username, instagram_bio, category_id, created_at`

type LocationStore struct {
	db *sqlx.DB
}

func NewLocationStore(db *sqlx.DB) *LocationStore {
	return &LocationStore{db: db}
}

func (s *LocationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	var loc domain.Location
	err := GetExecutor(ctx, s.db).GetContext(ctx, &loc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w: %w", domain.ErrPersistence, err)
	}

	return &loc, nil
}

// GetByName resolves a location by exact display name. No fuzzy
// matching; ambiguous names resolve to an arbitrary match.
func (s *LocationStore) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE name = $1 LIMIT 1`

	var loc domain.Location
	err := GetExecutor(ctx, s.db).GetContext(ctx, &loc, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("location %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w: %w", domain.ErrPersistence, err)
	}

	return &loc, nil
}

// Search matches name or address case-insensitively for the admin UI.
func (s *LocationStore) Search(ctx context.Context, query string) ([]domain.Location, error) {
	q := `SELECT ` + locationColumns + `
		FROM locations
		WHERE name ILIKE '%' || $1 || '%' OR formatted_address ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT 10`

	var locs []domain.Location
	if err := GetExecutor(ctx, s.db).SelectContext(ctx, &locs, q, query); err != nil {
		return nil, fmt.Errorf("search locations: %w: %w", domain.ErrPersistence, err)
	}

	return locs, nil
}

func (s *LocationStore) Insert(ctx context.Context, loc *domain.Location) error {
	loc.ID = uuid.New()
	loc.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO locations (
			id, name, formatted_address, place_id, instagram_handle,
			instagram_username, instagram_bio, category_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		loc.ID,
		loc.Name,
		loc.FormattedAddress,
		loc.PlaceID,
		loc.InstagramHandle,
		loc.InstagramUsername,
		loc.InstagramBio,
		loc.CategoryID,
		loc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w: %w", domain.ErrPersistence, err)
	}

	return nil
}
