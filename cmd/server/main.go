package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammondstays/hotels-api/internal/api"
	"github.com/hammondstays/hotels-api/internal/core/service"
	"github.com/hammondstays/hotels-api/internal/infrastructure/config"
	"github.com/hammondstays/hotels-api/internal/infrastructure/db/postgres"
	redisdb "github.com/hammondstays/hotels-api/internal/infrastructure/db/redis"
	"github.com/hammondstays/hotels-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Best effort: a missing .env just means plain environment variables.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: "hotels-api",
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	hotelRepo := postgres.NewHotelRepository(pool)
	identityRepo := postgres.NewIdentityRepository(pool)

	seeder := service.NewSeeder(identityRepo, hotelRepo, log)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
