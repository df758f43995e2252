package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courses-backend/internal/admin"
	"courses-backend/internal/auth"
	"courses-backend/internal/cache"
	"courses-backend/internal/config"
	"courses-backend/internal/db"
	"courses-backend/internal/handlers"
	"courses-backend/internal/metrics"
	"courses-backend/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := openStore(ctx, cfg, logger)
	defer store.Disconnect(context.Background())

	cacheStore := openCache(ctx, cfg, logger)

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:    []byte(cfg.JWTSecret),
			AccessTTL: time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			Issuer:    "courses-backend",
		}
	}

	adminCreds, err := adminCredentials(cfg)
	if err != nil {
		logger.Error("admin credentials invalid", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.AdminConfigured() {
		logger.Info("admin login enabled", slog.String("user", adminCreds.Username))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(registry)

	server := &handlers.Server{
		Cfg:      cfg,
		Store:    store,
		Val:      validation.New(),
		Log:      logger,
		Cache:    cacheStore,
		Auth:     jwtManager,
		Admin:    adminCreds,
		Gatherer: registry,
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

// openStore connects to MongoDB when configured. Missing settings or a
// malformed URI leave the service running without a database. An unreachable
// server keeps the client: requests fail until the driver reconnects, and
// index creation is retried in the background.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) *db.Handle {
	if !cfg.DatabaseConfigured() {
		logger.Warn("database not configured, running without store",
			slog.Bool("database_url_set", cfg.DatabaseURL != ""),
			slog.Bool("database_name_set", cfg.DatabaseName != ""),
		)
		return db.Disconnected()
	}

	store, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		logger.Error("mongo client setup failed, running without store", slog.String("error", err.Error()))
		return db.Disconnected()
	}

	if err := store.Ping(ctx); err != nil {
		logger.Warn("mongo unreachable, requests will fail until it recovers", slog.String("error", err.Error()))
		go ensureIndexesUntilReady(store, logger)
		return store
	}
	logger.Info("mongo connected", slog.String("database", cfg.DatabaseName))

	if err := db.EnsureIndexes(ctx, store); err != nil {
		logger.Warn("index creation failed", slog.String("error", err.Error()))
	}
	return store
}

func ensureIndexesUntilReady(store *db.Handle, logger *slog.Logger) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		err := db.EnsureIndexes(context.Background(), store)
		if err == nil {
			logger.Info("mongo reachable, indexes ensured")
			return
		}
		logger.Debug("index creation retry failed", slog.String("error", err.Error()))
	}
}

func openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Cache {
	if cfg.RedisURL == "" && cfg.RedisAddr == "" {
		return cache.NewNoop()
	}

	var redisCache *cache.RedisCache
	var err error
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
	} else {
		redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	if err == nil {
		if err = redisCache.Ping(ctx); err != nil {
			_ = redisCache.Close()
		}
	}
	if err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", slog.String("error", err.Error()))
		return cache.NewNoop()
	}

	logger.Info("redis connected")
	return redisCache
}

// adminCredentials accepts either a bcrypt hash or a plaintext password,
// which is hashed once at startup.
func adminCredentials(cfg *config.Config) (admin.Credentials, error) {
	creds := admin.Credentials{Username: cfg.AdminUser}
	switch {
	case cfg.AdminPasswordHash != "":
		creds.PasswordHash = cfg.AdminPasswordHash
	case auth.IsHash(cfg.AdminPassword):
		creds.PasswordHash = cfg.AdminPassword
	case cfg.AdminPassword != "":
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return admin.Credentials{}, err
		}
		creds.PasswordHash = hash
	}
	return creds, nil
}
