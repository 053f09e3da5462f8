//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"reel_fetcher/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishReel() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-reels",
		RoutingKey: "test-routing-key-reels",
		QueueName:  "test-queue-reels",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().UTC().Truncate(time.Millisecond)
	reel := &domain.Reel{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		CategoryID: uuid.New(),
		VideoURI:   "https://res.cloudinary.com/demo/abc.mp4",
		ThumbURI:   "https://res.cloudinary.com/demo/abc.jpg",
		Caption:    "a reel",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = pub.Publish(s.ctx, reel)
	s.Require().NoError(err)

	delivery := s.consumeOne(cfg)

	var msg ReelMessage
	s.Require().NoError(json.Unmarshal(delivery.Body, &msg))

	s.Equal("create", msg.Action)
	s.Equal(reel.ID, msg.Reel.ID)
	s.Equal(reel.VideoURI, msg.Reel.VideoURI)
	s.Equal(reel.ThumbURI, msg.Reel.ThumbURI)
}

func (s *RabbitMQIntegrationSuite) consumeOne(cfg Config) amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	deliveries, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case delivery := <-deliveries:
		return delivery
	case <-time.After(10 * time.Second):
		s.FailNow("timed out waiting for message")
		return amqp.Delivery{}
	}
}
