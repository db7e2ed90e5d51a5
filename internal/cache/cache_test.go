package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/monastery-trails/internal/cache"
	"github.com/neexbeast/monastery-trails/internal/catalog"
)

const rumtekID = "0b9d6a3e-4c1f-4f7e-9a55-2d1b8c7e6f10"

func newTestCache(t *testing.T, ttl time.Duration) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewCache(client, ttl), mr
}

func sampleMonastery() *catalog.Monastery {
	return &catalog.Monastery{
		ID:     rumtekID,
		Name:   "Rumtek Monastery",
		Region: catalog.RegionEast,
	}
}

func TestCache_SetAndGet(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "monastery", rumtekID, sampleMonastery()))
	assert.True(t, mr.Exists("catalog:monastery:"+rumtekID))

	var got catalog.Monastery
	ok, err := c.Get(ctx, "monastery", rumtekID, &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rumtek Monastery", got.Name)
	assert.Equal(t, catalog.RegionEast, got.Region)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	var got catalog.Monastery
	ok, err := c.Get(context.Background(), "monastery", "nonexistent", &got)
	require.NoError(t, err)
	assert.False(t, ok, "cache miss should return false, nil")
}

func TestCache_KindsDoNotCollide(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "monastery", rumtekID, sampleMonastery()))

	var f catalog.Festival
	ok, err := c.Get(ctx, "festival", rumtekID, &f)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_IDKeyIsLowercased(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "blog", "ABC-DEF", &catalog.Blog{Title: "t"}))

	var got catalog.Blog
	ok, err := c.Get(ctx, "blog", "abc-def", &got)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCache_Get_CorruptPayload(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	require.NoError(t, mr.Set("catalog:monastery:"+rumtekID, "{not json"))

	var got catalog.Monastery
	ok, err := c.Get(context.Background(), "monastery", rumtekID, &got)
	require.Error(t, err)
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "monastery", rumtekID, sampleMonastery()))
	require.NoError(t, c.Delete(ctx, "monastery", rumtekID))

	var got catalog.Monastery
	ok, err := c.Get(ctx, "monastery", rumtekID, &got)
	require.NoError(t, err)
	assert.False(t, ok, "entry should be gone after delete")
}

func TestCache_Delete_NonExistent(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	require.NoError(t, c.Delete(context.Background(), "monastery", "ghost"))
}

func TestCache_Set_NilValue(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	require.NoError(t, c.Set(context.Background(), "monastery", rumtekID, nil))
	assert.False(t, mr.Exists("catalog:monastery:"+rumtekID))
}

func TestCache_TTL(t *testing.T) {
	c, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "monastery", rumtekID, sampleMonastery()))
	assert.Equal(t, 10*time.Minute, mr.TTL("catalog:monastery:"+rumtekID))

	mr.FastForward(11 * time.Minute)

	var got catalog.Monastery
	ok, err := c.Get(ctx, "monastery", rumtekID, &got)
	require.NoError(t, err)
	assert.False(t, ok, "entry should be expired after TTL")
}

func TestCache_DefaultTTL(t *testing.T) {
	c, mr := newTestCache(t, 0)
	require.NoError(t, c.Set(context.Background(), "monastery", rumtekID, sampleMonastery()))
	assert.Equal(t, time.Hour, mr.TTL("catalog:monastery:"+rumtekID))
}

func TestCache_Flush_OnlyCatalogKeys(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		kind := []string{"monastery", "festival", "blog"}[i]
		require.NoError(t, c.Set(ctx, kind, id, map[string]string{"id": id}))
	}
	require.NoError(t, mr.Set("session:xyz", "keep me"))

	n, err := c.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, mr.Exists("session:xyz"))
	assert.False(t, mr.Exists("catalog:blog:c"))
}

func TestCache_Flush_Empty(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	n, err := c.Flush(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCache_Ping(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}

func TestNop(t *testing.T) {
	var c cache.Nop
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "monastery", rumtekID, sampleMonastery()))
	var got catalog.Monastery
	ok, err := c.Get(ctx, "monastery", rumtekID, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := c.Flush(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}

func TestConnect_OK(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := cache.Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	_ = client.Close()
}
