package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-treatments/internal/adapters/auth/introspect"
	pg "pet-treatments/internal/adapters/storage/postgres"
	"pet-treatments/internal/middleware"
	"pet-treatments/internal/platform/config"
	"pet-treatments/internal/platform/logger"
	"pet-treatments/internal/ports/auth"
	"pet-treatments/internal/router"
)

// @title Pet Treatments API
// @version 1.0
// @description Tratamientos de mascotas: cálculo de dosis progresivas y periodicidad.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = pg.ApplySchema(schemaCtx, db)
		cancel()
		if err != nil {
			log.Error("apply schema failed", "error", err)
			os.Exit(1)
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limiter.StartPruning(ctx, time.Minute)
	}

	// sin verifier: modo dev con X-Debug-User-ID
	var verifier auth.AuthVerifier
	if cfg.AuthVerifyURL != "" {
		v, err := introspect.NewVerifier(introspect.Config{
			BaseURL: cfg.AuthVerifyURL,
			APIKey:  cfg.AuthAPIKey,
		})
		if err != nil {
			log.Error("auth verifier config failed", "error", err)
			os.Exit(1)
		}
		verifier = v
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:       verifier,
		DB:                 db,
		Logger:             log,
		RateLimiter:        limiter,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "postgres", db != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			log.Error("server close error", "error", err)
		}
	}
	log.Info("server stopped")
}
