package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"reel_fetcher/internal/domain"
)

type ReelStore struct {
	db *sqlx.DB
}

func NewReelStore(db *sqlx.DB) *ReelStore {
	return &ReelStore{db: db}
}

// Insert persists a fully resolved reel, assigning its id, zeroed
// engagement counters and timestamps. The record is immutable to this
// service once written.
func (s *ReelStore) Insert(ctx context.Context, reel *domain.Reel) error {
	reel.ID = uuid.New()
	now := time.Now().UTC()
	reel.CreatedAt = now
	reel.UpdatedAt = now
	reel.LikeCount = 0
	reel.CommentCount = 0
	reel.ViewCount = 0

	query := `
		INSERT INTO reels (
			id, location_id, category_id, video_uri, thumb_uri, caption,
			like_count, comment_count, view_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		reel.ID,
		reel.LocationID,
		reel.CategoryID,
		reel.VideoURI,
		reel.ThumbURI,
		reel.Caption,
		reel.LikeCount,
		reel.CommentCount,
		reel.ViewCount,
		reel.CreatedAt,
		reel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reel: %w: %w", domain.ErrPersistence, err)
	}

	return nil
}

// CountByLocation reports how many reels a location has accumulated.
func (s *ReelStore) CountByLocation(ctx context.Context, locationID uuid.UUID) (int, error) {
	var count int
	err := GetExecutor(ctx, s.db).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM reels WHERE location_id = $1`, locationID)
	if err != nil {
		return 0, fmt.Errorf("count reels: %w: %w", domain.ErrPersistence, err)
	}
	return count, nil
}
