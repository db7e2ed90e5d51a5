package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/monastery-trails/internal/api"
	"github.com/neexbeast/monastery-trails/internal/catalog"
)

// ---- GET /api/health and /api/ready ----

func TestHealth_NoDependencies(t *testing.T) {
	router := buildRouter(deps{opts: api.RouterOptions{DB: &mockPinger{err: fmt.Errorf("db down")}}})

	w := do(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(body["timestamp"], "Z"))
}

func TestReady_AllOK(t *testing.T) {
	router := buildRouter(deps{opts: api.RouterOptions{Cache: &mockPinger{}}})

	w := do(t, router, http.MethodGet, "/api/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["db"])
	assert.Equal(t, "ok", body["cache"])
}

func TestReady_DBDown(t *testing.T) {
	router := buildRouter(deps{opts: api.RouterOptions{DB: &mockPinger{err: fmt.Errorf("connection refused")}}})

	w := do(t, router, http.MethodGet, "/api/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "error", body["db"])
	assert.Equal(t, "disabled", body["cache"])
}

func TestReady_CacheDown(t *testing.T) {
	router := buildRouter(deps{opts: api.RouterOptions{Cache: &mockPinger{err: fmt.Errorf("redis timeout")}}})

	w := do(t, router, http.MethodGet, "/api/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ---- routing ----

func TestRouter_CustomAPIBase(t *testing.T) {
	router := buildRouter(deps{opts: api.RouterOptions{APIBase: "/v2"}})

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/v2/health", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/health", nil).Code)
}

func TestRouter_UnknownAPIRouteIsJSON404(t *testing.T) {
	w := do(t, buildRouter(deps{}), http.MethodGet, "/api/manuscripts", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", errorBody(t, w))
}

func TestRouter_MetricsOutsidePrefix(t *testing.T) {
	router := buildRouter(deps{})
	do(t, router, http.MethodGet, "/api/health", nil)

	w := do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/health",status="200"}`)
}

func TestRouter_PanicRecovered(t *testing.T) {
	repo := &mockRepo{
		listMonasteriesFn: func(_ context.Context, _ catalog.MonasteryFilter) ([]catalog.Monastery, error) {
			panic("nil map")
		},
	}
	router := buildRouter(deps{repo: repo})

	assert.Equal(t, http.StatusInternalServerError, do(t, router, http.MethodGet, "/api/monasteries", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/health", nil).Code, "server keeps serving after a panic")
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := buildRouter(deps{opts: api.RouterOptions{CORSAllowedOrigins: []string{"https://trails.example"}}})

	w := do(t, router, http.MethodOptions, "/api/monasteries", nil,
		"Origin", "https://trails.example",
		"Access-Control-Request-Method", "GET",
	)
	assert.Equal(t, "https://trails.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, router, http.MethodOptions, "/api/monasteries", nil,
		"Origin", "https://evil.example",
		"Access-Control-Request-Method", "GET",
	)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	router := buildRouter(deps{opts: api.RouterOptions{RateLimitPerMinute: 2}})

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/health", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, router, http.MethodGet, "/api/health", nil).Code)
}

func TestRouter_StaticSPA(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	router := buildRouter(deps{opts: api.RouterOptions{StaticDir: dir}})

	w := do(t, router, http.MethodGet, "/assets/app.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = do(t, router, http.MethodGet, "/monasteries/rumtek", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<html>app</html>", "client routes fall back to index.html")

	w = do(t, router, http.MethodGet, "/../../etc/passwd", nil)
	assert.NotContains(t, w.Body.String(), "root:")

	w = do(t, router, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "API misses stay JSON 404s")
}
