//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"reel_fetcher/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_categories.up.sql"),
			filepath.Join(migrationsPath, "002_create_locations.up.sql"),
			filepath.Join(migrationsPath, "003_create_reels.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM reels")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM locations")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM categories")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertFixtures() (*domain.Category, *domain.Location) {
	category := &domain.Category{
		Name:                 "Cafes",
		PopularityPercentage: 72.5,
		Type:                 "food",
	}
	s.Require().NoError(NewCategoryStore(s.db).Insert(s.ctx, category))

	addr := "123 Example St"
	location := &domain.Location{
		Name:             "Blue Bottle Cafe",
		FormattedAddress: &addr,
		InstagramHandle:  "17841400000000000",
		CategoryID:       category.ID,
	}
	s.Require().NoError(NewLocationStore(s.db).Insert(s.ctx, location))

	return category, location
}

func (s *PostgresIntegrationSuite) TestCategoryStore_InsertAndList() {
	store := NewCategoryStore(s.db)

	category := &domain.Category{Name: "Bars", PopularityPercentage: 40, Type: "nightlife"}
	s.Require().NoError(store.Insert(s.ctx, category))
	s.NotEqual(uuid.Nil, category.ID)

	categories, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 1)
	s.Equal("Bars", categories[0].Name)
	s.Equal(40.0, categories[0].PopularityPercentage)
}

func (s *PostgresIntegrationSuite) TestLocationStore_GetByIDAndName() {
	_, location := s.insertFixtures()
	store := NewLocationStore(s.db)

	byID, err := store.GetByID(s.ctx, location.ID)
	s.Require().NoError(err)
	s.Equal(location.Name, byID.Name)
	s.Equal(location.InstagramHandle, byID.InstagramHandle)

	byName, err := store.GetByName(s.ctx, "Blue Bottle Cafe")
	s.Require().NoError(err)
	s.Equal(location.ID, byName.ID)
}

func (s *PostgresIntegrationSuite) TestLocationStore_NotFound() {
	store := NewLocationStore(s.db)

	_, err := store.GetByName(s.ctx, "nonexistent-cafe")
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrNotFound))

	_, err = store.GetByID(s.ctx, uuid.New())
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestLocationStore_Search() {
	_, _ = s.insertFixtures()
	store := NewLocationStore(s.db)

	locations, err := store.Search(s.ctx, "blue bottle")
	s.Require().NoError(err)
	s.Len(locations, 1)

	locations, err = store.Search(s.ctx, "example st")
	s.Require().NoError(err)
	s.Len(locations, 1)

	locations, err = store.Search(s.ctx, "no such place")
	s.Require().NoError(err)
	s.Empty(locations)
}

func (s *PostgresIntegrationSuite) TestReelStore_Insert() {
	category, location := s.insertFixtures()
	store := NewReelStore(s.db)

	reel := &domain.Reel{
		LocationID: location.ID,
		CategoryID: category.ID,
		VideoURI:   "https://res.cloudinary.com/demo/abc.mp4",
		ThumbURI:   "https://res.cloudinary.com/demo/abc.jpg",
		Caption:    "a reel",
	}
	s.Require().NoError(store.Insert(s.ctx, reel))
	s.NotEqual(uuid.Nil, reel.ID)
	s.False(reel.CreatedAt.IsZero())

	var stored domain.Reel
	err := s.db.GetContext(s.ctx, &stored, `
		SELECT id, location_id, category_id, video_uri, thumb_uri, caption,
			like_count, comment_count, view_count, created_at, updated_at
		FROM reels WHERE id = $1`, reel.ID)
	s.Require().NoError(err)

	s.Equal(location.ID, stored.LocationID)
	s.Equal(category.ID, stored.CategoryID)
	s.Equal(0, stored.LikeCount)
	s.Equal(0, stored.CommentCount)
	s.Equal(0, stored.ViewCount)

	count, err := store.CountByLocation(s.ctx, location.ID)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestConnManager_ScopedConnection() {
	category, location := s.insertFixtures()

	manager := NewConnManager(s.db)
	reels := NewReelStore(s.db)

	err := manager.WithConn(s.ctx, func(ctx context.Context) error {
		s.NotNil(GetConnFromContext(ctx))

		return reels.Insert(ctx, &domain.Reel{
			LocationID: location.ID,
			CategoryID: category.ID,
			VideoURI:   "https://res.cloudinary.com/demo/scoped.mp4",
			ThumbURI:   "https://res.cloudinary.com/demo/scoped.jpg",
		})
	})
	s.Require().NoError(err)

	count, err := reels.CountByLocation(s.ctx, location.ID)
	s.Require().NoError(err)
	s.Equal(1, count)
}
