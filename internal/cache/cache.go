package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL = time.Hour
	keyPrefix  = "catalog:"
	scanBatch  = 100
)

// Cache stores JSON-encoded catalog entities in Redis under catalog:<kind>:<id>.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl falls back to one hour.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func key(kind, id string) string {
	return keyPrefix + kind + ":" + strings.ToLower(strings.TrimSpace(id))
}

// Get decodes the cached entry into dst.
// A miss is reported as false with a nil error.
func (c *Cache) Get(ctx context.Context, kind, id string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get for %s %s: %w", kind, id, err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("unmarshaling cached %s %s: %w", kind, id, err)
	}

	return true, nil
}

// Set stores v with the configured TTL. A nil v is ignored.
func (c *Cache) Set(ctx context.Context, kind, id string, v any) error {
	if v == nil {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s %s: %w", kind, id, err)
	}

	if err := c.client.Set(ctx, key(kind, id), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s %s: %w", kind, id, err)
	}

	return nil
}

// Delete removes the cached entry for kind/id.
func (c *Cache) Delete(ctx context.Context, kind, id string) error {
	if err := c.client.Del(ctx, key(kind, id)).Err(); err != nil {
		return fmt.Errorf("cache delete for %s %s: %w", kind, id, err)
	}
	return nil
}

// Flush removes every catalog entry and returns how many keys were deleted.
// Keys outside the catalog namespace are left alone.
func (c *Cache) Flush(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return deleted, fmt.Errorf("scanning cache keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("flushing cache keys: %w", err)
			}
			deleted += int(n)
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

// Ping checks connectivity to Redis.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Nop is the cache used when Redis is not configured; every Get misses.
type Nop struct{}

func (Nop) Get(context.Context, string, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, string, any) error         { return nil }
func (Nop) Delete(context.Context, string, string) error           { return nil }
func (Nop) Flush(context.Context) (int, error)                      { return 0, nil }
func (Nop) Ping(context.Context) error                              { return nil }
