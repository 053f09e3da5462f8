package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical place with an associated Instagram profile.
// The ingestion pipeline only reads locations; they are created and
// edited through the admin endpoints.
type Location struct {
	ID                uuid.UUID `db:"id"`
	Name              string    `db:"name"`
	FormattedAddress  *string   `db:"formatted_address"`
	PlaceID           *string   `db:"place_id"`
	InstagramHandle   string    `db:"instagram_handle"`
	InstagramUsername *string   `db:"instagram_username"`
	InstagramBio      *string   `db:"instagram_bio"`
	CategoryID        uuid.UUID `db:"category_id"`
	CreatedAt         time.Time `db:"created_at"`
}

type Category struct {
	ID                   uuid.UUID `db:"id"`
	Name                 string    `db:"name"`
	PopularityPercentage float64   `db:"popularity_percentage"`
	Type                 string    `db:"type"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}
