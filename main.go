// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"cinix-booking/cmd"
	"cinix-booking/internal/backend"
	"cinix-booking/internal/clock"
	"cinix-booking/internal/data/repository"
	"cinix-booking/internal/event"
	"cinix-booking/internal/usecase"
	"cinix-booking/internal/wire"
	"cinix-booking/pkg/database"
	"cinix-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("backend", config.Backend.BaseURL),
		zap.String("storage", config.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ticket storage
	tickets, health, closeStore, err := openTicketStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to open ticket storage", zap.Error(err))
	}
	defer closeStore()

	// Event publisher
	publisher := event.NewNoopPublisher()
	if config.Broker.URL != "" {
		publisher, err = event.NewAMQPPublisher(config.Broker.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to broker", zap.Error(err))
		}
		logger.Info("Broker connected successfully")
	}
	defer publisher.Close()

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:      repository.NewRepository(tickets),
		Backend:   backend.NewClient(config.Backend, logger),
		Publisher: publisher,
		Clock:     clock.NewSystem(),
		Health:    health,
	}, config, logger)

	go runSessionJanitor(ctx, app.Service.Booking, config.Session.IdleTimeout, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}

// openTicketStore picks the ticket repository for STORAGE_DRIVER.
func openTicketStore(ctx context.Context, config *utils.Config, logger *zap.Logger) (repository.TicketRepository, wire.HealthCheck, func(), error) {
	switch config.Storage.Driver {
	case "", "memory":
		logger.Warn("Using in-memory ticket storage, tickets are lost on restart")
		return repository.NewMemoryTicketRepository(logger), nil, func() {}, nil

	case "redis":
		rdb, err := database.InitRedis(ctx, config.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("Redis connected successfully")

		health := func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return repository.NewRedisTicketRepository(rdb, logger), health, func() { rdb.Close() }, nil

	case "postgres":
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repository.EnsureClientStorage(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		logger.Info("Database connected successfully")

		return repository.NewPostgresTicketRepository(db, logger), db.Ping, db.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
}

// runSessionJanitor drops idle booking sessions until ctx is done.
func runSessionJanitor(ctx context.Context, booking usecase.BookingService, idle time.Duration, logger *zap.Logger) {
	if idle <= 0 {
		return
	}

	ticker := time.NewTicker(max(idle/2, time.Minute))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Session janitor stopped")
			return
		case <-ticker.C:
			booking.PurgeIdleSessions()
		}
	}
}
