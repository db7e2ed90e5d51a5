package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the server and seed tool.
type Config struct {
	DatabaseURL        string
	Port               string
	APIBase            string // no trailing slash; empty means root
	RedisURL           string
	CacheTTL           time.Duration
	CORSAllowedOrigins []string
	RateLimitPerMinute int
	AdminToken         string
	StaticDir          string
	MigrationsDir      string
	SeedOnStart        bool
}

// Load reads envFiles (or ./.env when none are given, if present) into the
// process environment without overriding variables that are already set,
// then builds a Config from the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("loading env files %v: %w", envFiles, err)
	}

	var errs []error

	cfg := Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		Port:               getEnv("PORT", "5000"),
		RedisURL:           getEnv("REDIS_URL", ""),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminToken:         getEnv("ADMIN_TOKEN", ""),
		StaticDir:          getEnv("STATIC_DIR", ""),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
	}

	if cfg.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}

	if p, err := strconv.Atoi(cfg.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port))
	}

	base := getEnv("API_BASE", "/api")
	if !strings.HasPrefix(base, "/") {
		errs = append(errs, fmt.Errorf("API_BASE must start with /, got %q", base))
	}
	// "/" mounts the API at the root.
	cfg.APIBase = strings.TrimRight(base, "/")

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil || ttl <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be a positive duration, got %q", os.Getenv("CACHE_TTL")))
	}
	cfg.CacheTTL = ttl

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60"))
	if err != nil || limit < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a non-negative integer, got %q", os.Getenv("RATE_LIMIT_PER_MINUTE")))
	}
	cfg.RateLimitPerMinute = limit

	seed, err := strconv.ParseBool(getEnv("SEED_ON_START", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SEED_ON_START must be a boolean, got %q", os.Getenv("SEED_ON_START")))
	}
	cfg.SeedOnStart = seed

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
