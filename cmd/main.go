package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adbudget/internal/adapter/csvsource"
	httpadapter "adbudget/internal/adapter/http"
	"adbudget/internal/adapter/postgres"
	"adbudget/internal/adapter/usecase"
	"adbudget/internal/config"
	"adbudget/internal/config/configs"
	"adbudget/internal/core/port"
	"adbudget/internal/db"
)

// main is the entry point of the adbudget service. It loads configuration,
// initializes the dataset source (CSV export or PostgreSQL, optionally
// running migrations and seeding the table from the export), builds the
// estimator over the loaded records and starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var src port.RecordSource
	switch cfg.Dataset.Normalized() {
	case configs.SourceCSV:
		src = csvsource.NewLoader(cfg.Dataset.Path)

	case configs.SourcePostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			records, err := csvsource.NewLoader(cfg.Dataset.Path).Load(ctx)
			if err != nil {
				logger.Error("seed load error", slog.Any("error", err))
				os.Exit(1)
			}
			if err = db.Seed(ctx, pool, records); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("campaign records seeded", slog.Int("records", len(records)))
		}
		src = postgres.NewRecordRepository(pool)

	default:
		logger.Error("unknown dataset source", slog.String("source", cfg.Dataset.Source))
		os.Exit(1)
	}

	// The dataset is loaded eagerly, once per process lifetime. A schema
	// error here means no computation is possible; abort startup.
	svc, err := usecase.NewBudgetEstimator(ctx, src)
	if err != nil {
		logger.Error("dataset load error", slog.Any("error", err))
		os.Exit(1)
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
