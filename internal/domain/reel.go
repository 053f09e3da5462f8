package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaTypeVideo is the Instagram media_type discriminator for video posts.
const MediaTypeVideo = 2

// CandidateItem is one post returned by the profile listing call, before
// type filtering. It lives only for the duration of a pipeline run.
type CandidateItem struct {
	Code      string
	MediaType int
	Caption   string
}

// IsVideo reports whether the item qualifies for reel ingestion.
func (c CandidateItem) IsVideo() bool {
	return c.MediaType == MediaTypeVideo
}

// Reel is a re-hosted video recorded against its owning location. The
// category reference is copied from the location at creation time.
// Engagement counters start at zero and are mutated elsewhere.
type Reel struct {
	ID           uuid.UUID `db:"id"`
	LocationID   uuid.UUID `db:"location_id"`
	CategoryID   uuid.UUID `db:"category_id"`
	VideoURI     string    `db:"video_uri"`
	ThumbURI     string    `db:"thumb_uri"`
	Caption      string    `db:"caption"`
	LikeCount    int       `db:"like_count"`
	CommentCount int       `db:"comment_count"`
	ViewCount    int       `db:"view_count"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// AssetURIs is the result of re-hosting one remote video.
type AssetURIs struct {
	VideoURI string
	ThumbURI string
}
