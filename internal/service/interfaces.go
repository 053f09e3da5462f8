package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"reel_fetcher/internal/domain"
)

type LocationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	GetByName(ctx context.Context, name string) (*domain.Location, error)
}

type ReelStore interface {
	Insert(ctx context.Context, reel *domain.Reel) error
}

type ReelSource interface {
	FetchReels(ctx context.Context, handle string) ([]domain.CandidateItem, error)
	ResolveMedia(ctx context.Context, code string) (string, error)
}

type Rehoster interface {
	Rehost(ctx context.Context, remoteURL string) (*domain.AssetURIs, error)
}

type ConnManager interface {
	WithConn(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProgressPublisher interface {
	Publish(sessionID string, event domain.ProgressEvent)
}

type ReelPublisher interface {
	Publish(ctx context.Context, reel *domain.Reel) error
	Close() error
}
