// Copyright (c) 2026 Garagem. All rights reserved.

// Command api is the entry point for the Garagem HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Connect to MinIO and ensure the upload bucket.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pvieira/garagem/internal/api"
	"github.com/pvieira/garagem/internal/auth"
	"github.com/pvieira/garagem/internal/contact"
	"github.com/pvieira/garagem/internal/core/car"
	"github.com/pvieira/garagem/internal/core/client"
	"github.com/pvieira/garagem/internal/core/partner"
	"github.com/pvieira/garagem/internal/dashboard"
	"github.com/pvieira/garagem/internal/identity"
	"github.com/pvieira/garagem/internal/objectstore"
	"github.com/pvieira/garagem/internal/platform/config"
	"github.com/pvieira/garagem/internal/platform/constants"
	"github.com/pvieira/garagem/internal/platform/migration"
	pgstore "github.com/pvieira/garagem/internal/platform/postgres"
	redisstore "github.com/pvieira/garagem/internal/platform/redis"
	"github.com/pvieira/garagem/internal/platform/sec"
	"github.com/pvieira/garagem/internal/upload"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Garagem] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Object Store ───────────────────────────────────────────────────
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	must(log, err, "create minio client")

	binaryStore, err := objectstore.NewStore(startupCtx, minioClient, cfg.MinioBucket)
	must(log, err, "ensure upload bucket")

	// ── 7. Session Codec & Identity Provider ──────────────────────────────
	appID := cfg.AppID
	if appID == "" {
		appID = constants.AppName
	}

	codec, err := sec.NewCodec(cfg.SessionSecret, appID)
	must(log, err, "initialize session codec")

	verifier, err := identity.NewGoogleVerifier(cfg.IdentityProjectID)
	must(log, err, "initialize identity verifier")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresRepository(pool)
	authService := auth.NewService(userRepository, verifier, codec, log)
	authHandler := auth.NewHandler(authService)

	carService := car.NewService(car.NewPostgresRepository(pool), log)
	clientService := client.NewService(client.NewPostgresRepository(pool), log)
	partnerService := partner.NewService(partner.NewPostgresRepository(pool), log)
	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)

	dashboardService := dashboard.NewService(
		dashboard.NewPostgresRepository(pool),
		dashboard.NewRedisCache(rdb),
		log,
	)

	uploadService := upload.NewService(binaryStore, cfg.PublicBaseURL, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Car:       car.NewHandler(carService),
		Client:    client.NewHandler(clientService),
		Partner:   partner.NewHandler(partnerService),
		Contact:   contact.NewHandler(contactService),
		Dashboard: dashboard.NewHandler(dashboardService),
		Upload:    upload.NewHandler(uploadService),
	}

	server := api.NewServer(context.Background(), cfg, log, authService, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
