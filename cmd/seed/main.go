// Command seed applies the schema and replaces the catalog with the reference data set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/neexbeast/monastery-trails/internal/cache"
	"github.com/neexbeast/monastery-trails/internal/config"
	"github.com/neexbeast/monastery-trails/internal/storage"
	"github.com/neexbeast/monastery-trails/migrations"
)

func main() {
	envFile := flag.String("env", "", "optional env file to load before reading the environment")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline for migrating and seeding")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log, *envFile, *timeout); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, envFile string, timeout time.Duration) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if err := storage.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	counts, err := storage.NewSeeder(pool, log).Seed(ctx)
	if err != nil {
		return err
	}

	// Cached rows point at ids that no longer exist.
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("skipping cache flush", "err", err)
		} else {
			defer func() { _ = client.Close() }()
			n, err := cache.NewCache(client, cfg.CacheTTL).Flush(ctx)
			if err != nil {
				return fmt.Errorf("flushing cache: %w", err)
			}
			log.Info("cache flushed", "keys", n)
		}
	}

	fmt.Printf("seeded %d monasteries, %d festivals, %d accommodations, %d blogs\n",
		counts.Monasteries, counts.Festivals, counts.Accommodations, counts.Blogs)
	return nil
}
