package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neexbeast/monastery-trails/internal/api"
	"github.com/neexbeast/monastery-trails/internal/cache"
	"github.com/neexbeast/monastery-trails/internal/catalog"
	"github.com/neexbeast/monastery-trails/internal/config"
	"github.com/neexbeast/monastery-trails/internal/itinerary"
	"github.com/neexbeast/monastery-trails/internal/metrics"
	"github.com/neexbeast/monastery-trails/internal/storage"
	"github.com/neexbeast/monastery-trails/migrations"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Connect to PostgreSQL.
	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	// Run migrations.
	if err := storage.RunMigrations(ctx, pool, migrationsFS(cfg.MigrationsDir, log), log); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied")

	seeder := storage.NewSeeder(pool, log)
	if cfg.SeedOnStart {
		_, err := seeder.Seed(ctx)
		metrics.RecordSeed(err)
		if err != nil {
			return fmt.Errorf("seeding on start: %w", err)
		}
	}

	// Redis is optional; without it every lookup goes to the database.
	var (
		entityCache api.EntityCache = cache.Nop{}
		cachePinger api.Pinger
	)
	if cfg.RedisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		c := cache.NewCache(redisClient, cfg.CacheTTL)
		if cfg.SeedOnStart {
			if _, err := c.Flush(ctx); err != nil {
				log.Warn("cache flush after startup seed failed", "err", err)
			}
		}
		entityCache, cachePinger = c, c
	} else {
		log.Info("REDIS_URL not set, caching disabled")
	}

	// Wire dependencies.
	repo := storage.NewRepository(pool)
	handlers := api.NewHandlers(
		repo,
		entityCache,
		catalog.NewSearcher(repo, log),
		itinerary.NewPlanner(repo, log),
		seeder,
		log,
	)

	router := api.NewRouter(handlers, api.RouterOptions{
		APIBase:            cfg.APIBase,
		AdminToken:         cfg.AdminToken,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		StaticDir:          cfg.StaticDir,
		DB:                 pool,
		Cache:              cachePinger,
	}, log)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "addr", srv.Addr, "api_base", cfg.APIBase, "admin_token", cfg.AdminToken != "")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// migrationsFS prefers an on-disk directory so schema files can be edited
// without a rebuild, and falls back to the copy embedded in the binary.
func migrationsFS(dir string, log *slog.Logger) fs.FS {
	if st, err := os.Stat(dir); err == nil && st.IsDir() {
		log.Debug("using migrations from disk", "dir", dir)
		return os.DirFS(dir)
	}
	return migrations.FS
}
