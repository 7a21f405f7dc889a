package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventman/internal/api/router"
	"eventman/internal/config"
	"eventman/internal/core/repository"
	"eventman/internal/core/service"
	"eventman/internal/session"
	"eventman/internal/view"

	"github.com/rs/zerolog"
)

func main() {
	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	// Repositories: MongoDB when configured, in-memory otherwise
	var userRepo repository.UserRepository
	var eventRepo repository.EventRepository

	mongoConfig := config.NewMongoConfig()
	if mongoConfig.URI != "" {
		db, err := config.ConnectMongoDB(mongoConfig)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		logger.Info().Str("database", mongoConfig.Database).Msg("connected to MongoDB")
		userRepo = repository.NewMongoUserRepository(db)
		eventRepo = repository.NewMongoEventRepository(db)
	} else {
		logger.Warn().Msg("MONGODB_URI not set, using in-memory stores")
		userRepo = repository.NewInMemoryUserRepository()
		eventRepo = repository.NewInMemoryEventRepository()
	}

	// Session store: Redis when configured, in-memory otherwise
	var sessionStore session.Store
	if cfg.RedisURL != "" {
		sessionStore, err = session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		logger.Info().Msg("using Redis session store")
	} else {
		sessionStore = session.NewInMemoryStore()
	}
	sessions := session.NewManager(sessionStore, cfg.SessionTTL)

	// Initialize services
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)

	views, err := view.NewRenderer(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse templates")
	}

	// Initialize router
	r := router.NewRouter(userService, eventService, sessions, views, int(cfg.SessionTTL.Seconds()), logger)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Serve until interrupted, then drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}
