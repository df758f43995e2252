package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"courses-backend/internal/catalog"
	"courses-backend/internal/config"
	"courses-backend/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if !cfg.DatabaseConfigured() {
		logger.Error("seed: DATABASE_URL and DATABASE_NAME are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		logger.Error("seed: mongo client setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Disconnect(context.Background())

	if err := store.Ping(ctx); err != nil {
		logger.Error("seed: mongo unreachable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := db.EnsureIndexes(ctx, store); err != nil {
		logger.Error("seed: index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := catalog.NewService(catalog.NewRepository(store), logger)
	report, err := svc.Seed(ctx)
	if err != nil {
		logger.Error("seed: failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.Int("categories_inserted", report.Categories),
		slog.Int("staff_inserted", report.Staff),
	)
}
