package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"reel_fetcher/internal/config"
	"reel_fetcher/internal/progress"
	"reel_fetcher/internal/publisher"
	"reel_fetcher/internal/rehost"
	"reel_fetcher/internal/server"
	"reel_fetcher/internal/service"
	"reel_fetcher/internal/source/instagram"
	"reel_fetcher/internal/source/places"
	"reel_fetcher/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher for downstream reel notifications
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	locationStore := postgres.NewLocationStore(db)
	categoryStore := postgres.NewCategoryStore(db)
	reelStore := postgres.NewReelStore(db)
	connManager := postgres.NewConnManager(db)

	// Initialize external clients
	instagramClient := instagram.New(instagram.Config{
		Host:    cfg.Instagram.Host,
		APIKey:  cfg.Instagram.APIKey,
		Timeout: cfg.Instagram.Timeout,
	}, logger)

	placesClient := places.New(places.Config{
		Host:    cfg.Places.Host,
		APIKey:  cfg.Places.APIKey,
		Timeout: cfg.Places.Timeout,
	}, logger)

	rehoster, err := rehost.New(rehost.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	}, logger)
	if err != nil {
		logger.Error("failed to init rehoster", "error", err)
		os.Exit(1)
	}

	bus := progress.NewBus(logger)

	pipeline := service.NewPipelineService(
		locationStore,
		reelStore,
		instagramClient,
		rehoster,
		connManager,
		bus,
		rabbitMQ,
		logger,
	)

	srv := server.New(
		pipeline,
		bus,
		locationStore,
		categoryStore,
		instagramClient,
		placesClient,
		logger,
	)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("starting reel ingestor", "addr", cfg.Server.Addr)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
