package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/monastery-trails/internal/catalog"
	"github.com/neexbeast/monastery-trails/internal/metrics"
)

const maxBodyBytes = 1 << 20

// entity names one catalog kind for cache keys and client messages.
type entity struct {
	kind   string // cache namespace and singular noun
	title  string
	plural string
}

var (
	monasteries    = entity{kind: "monastery", title: "Monastery", plural: "monasteries"}
	festivals      = entity{kind: "festival", title: "Festival", plural: "festivals"}
	accommodations = entity{kind: "accommodation", title: "Accommodation", plural: "accommodations"}
	blogs          = entity{kind: "blog", title: "Blog", plural: "blogs"}
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	repo     CatalogRepo
	cache    EntityCache
	searcher Searcher
	planner  TripPlanner
	seeder   CatalogSeeder
	log      *slog.Logger
	now      func() time.Time
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(repo CatalogRepo, cache EntityCache, searcher Searcher, planner TripPlanner, seeder CatalogSeeder, log *slog.Logger) *Handlers {
	return &Handlers{
		repo:     repo,
		cache:    cache,
		searcher: searcher,
		planner:  planner,
		seeder:   seeder,
		log:      log,
		now:      time.Now,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody reads a single JSON object from r, rejecting unknown fields and trailing data.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, strict bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", catalog.ErrInvalidInput, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON body", catalog.ErrInvalidInput)
	}
	return nil
}

func listEntities[F, T any](h *Handlers, w http.ResponseWriter, r *http.Request, e entity,
	parse func(url.Values) (F, error), list func(context.Context, F) ([]T, error)) {
	f, err := parse(r.URL.Query())
	if err != nil {
		h.log.Debug("rejected list query", "entity", e.plural, "err", err)
		writeError(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, err := list(r.Context(), f)
	if err != nil {
		h.log.Error("list failed", "entity", e.plural, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch "+e.plural)
		return
	}
	if items == nil {
		items = []T{}
	}

	writeJSON(w, http.StatusOK, items)
}

// getEntity serves a point lookup: cache hit → return, DB hit → cache + return, neither → 404.
func getEntity[T any](h *Handlers, w http.ResponseWriter, r *http.Request, e entity,
	get func(context.Context, string) (*T, error)) {
	id := chi.URLParam(r, "id")

	var cached T
	hit, err := h.cache.Get(r.Context(), e.kind, id, &cached)
	switch {
	case err != nil:
		metrics.RecordCacheLookup(metrics.CacheError)
		h.log.Error("cache get failed", "entity", e.kind, "id", id, "err", err)
	case hit:
		metrics.RecordCacheLookup(metrics.CacheHit)
		writeJSON(w, http.StatusOK, cached)
		return
	default:
		metrics.RecordCacheLookup(metrics.CacheMiss)
	}

	item, err := get(r.Context(), id)
	if err != nil {
		h.log.Error("db get failed", "entity", e.kind, "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch "+e.kind)
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, e.title+" not found")
		return
	}

	if err := h.cache.Set(r.Context(), e.kind, id, item); err != nil {
		h.log.Warn("cache set failed after db hit", "entity", e.kind, "id", id, "err", err)
	}

	writeJSON(w, http.StatusOK, item)
}

// createEntity validates the body, inserts it and writes the new row through to the cache.
func createEntity[In, T any](h *Handlers, w http.ResponseWriter, r *http.Request, e entity,
	create func(context.Context, In) (*T, error), idOf func(*T) string) {
	var in In
	if err := decodeBody(w, r, &in, true); err != nil {
		h.log.Debug("rejected create body", "entity", e.kind, "err", err)
		writeError(w, http.StatusBadRequest, "Invalid "+e.kind+" data")
		return
	}
	if err := catalog.Validate(in); err != nil {
		h.log.Debug("rejected create body", "entity", e.kind, "err", err)
		writeError(w, http.StatusBadRequest, "Invalid "+e.kind+" data")
		return
	}

	item, err := create(r.Context(), in)
	if err != nil {
		h.log.Error("create failed", "entity", e.kind, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to create "+e.kind)
		return
	}

	if err := h.cache.Set(r.Context(), e.kind, idOf(item), item); err != nil {
		h.log.Warn("cache set failed after create", "entity", e.kind, "id", idOf(item), "err", err)
		// A failed write may leave a partial or older entry under the new id.
		if err := h.cache.Delete(r.Context(), e.kind, idOf(item)); err != nil {
			h.log.Warn("cache delete failed after create", "entity", e.kind, "id", idOf(item), "err", err)
		}
	}

	writeJSON(w, http.StatusCreated, item)
}

// ListMonasteries handles GET /monasteries. limit defaults to 50 and is
// capped at 100; limit=0 means the default.
func (h *Handlers) ListMonasteries(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, monasteries, catalog.ParseMonasteryFilter, h.repo.ListMonasteries)
}

// GetMonastery handles GET /monasteries/{id}.
func (h *Handlers) GetMonastery(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, monasteries, h.repo.GetMonastery)
}

// CreateMonastery handles POST /monasteries.
func (h *Handlers) CreateMonastery(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, monasteries, h.repo.CreateMonastery, func(m *catalog.Monastery) string { return m.ID })
}

// ListFestivals handles GET /festivals. limit defaults to 20, capped at 100.
func (h *Handlers) ListFestivals(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, festivals, catalog.ParseFestivalFilter, h.repo.ListFestivals)
}

func (h *Handlers) GetFestival(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, festivals, h.repo.GetFestival)
}

func (h *Handlers) CreateFestival(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, festivals, h.repo.CreateFestival, func(f *catalog.Festival) string { return f.ID })
}

// ListAccommodations handles GET /accommodations. limit defaults to 30, capped at 100.
func (h *Handlers) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, accommodations, catalog.ParseAccommodationFilter, h.repo.ListAccommodations)
}

func (h *Handlers) GetAccommodation(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, accommodations, h.repo.GetAccommodation)
}

func (h *Handlers) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, accommodations, h.repo.CreateAccommodation, func(a *catalog.Accommodation) string { return a.ID })
}

// ListBlogs handles GET /blogs; posts come newest first.
// limit defaults to 10, capped at 100.
func (h *Handlers) ListBlogs(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, blogs, catalog.ParseBlogFilter, h.repo.ListBlogs)
}

func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, blogs, h.repo.GetBlog)
}

// CreateBlog handles POST /blogs. A missing publishedAt defaults to now.
func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, blogs, h.repo.CreateBlog, func(b *catalog.Blog) string { return b.ID })
}

// Search handles GET /search?q=.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "Search query is required")
			return
		}
		h.log.Error("search failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to search catalog")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
