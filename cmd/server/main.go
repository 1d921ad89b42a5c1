package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmadjutt29/isp-billing-system/internal/api"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/service"
	"github.com/ahmadjutt29/isp-billing-system/internal/infrastructure/config"
	"github.com/ahmadjutt29/isp-billing-system/internal/infrastructure/db/postgres"
	"github.com/ahmadjutt29/isp-billing-system/internal/infrastructure/db/redis"
	"github.com/ahmadjutt29/isp-billing-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// Seed the default admin so a fresh deployment is immediately usable.
	// The seed endpoint stays available; both paths are idempotent.
	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.Admin.Username, cfg.Admin.Password, 24*time.Hour, log)
	if _, _, err := authService.SeedAdmin(ctx); err != nil {
		log.Warn().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:     cfg.JWTSecret,
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
		InvoiceIssuer: cfg.InvoiceIssuer,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("billing API listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
