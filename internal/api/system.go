package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/neexbeast/monastery-trails/internal/itinerary"
	"github.com/neexbeast/monastery-trails/internal/metrics"
	"github.com/neexbeast/monastery-trails/internal/storage"
)

// isoMillis matches the timestamp shape browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

// PlanTrip handles POST /trip-planner.
func (h *Handlers) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req itinerary.Request
	if err := decodeBody(w, r, &req, false); err != nil {
		h.log.Debug("rejected trip planner body", "err", err)
		writeError(w, http.StatusBadRequest, "Invalid trip planner data")
		return
	}

	it, err := h.planner.Plan(r.Context(), req)
	if err != nil {
		if errors.Is(err, itinerary.ErrInvalidTripType) {
			writeError(w, http.StatusBadRequest, "Invalid trip type")
			return
		}
		h.log.Error("trip planning failed", "type", req.Type, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate trip itinerary")
		return
	}

	writeJSON(w, http.StatusOK, it)
}

type seedResponse struct {
	Message string             `json:"message"`
	Counts  storage.SeedCounts `json:"counts"`
	// CacheFlushed is false when stale entries may still be served until their TTL.
	CacheFlushed bool `json:"cacheFlushed"`
}

// Seed handles POST /seed: reload the reference data, then drop every cached entity.
func (h *Handlers) Seed(w http.ResponseWriter, r *http.Request) {
	counts, err := h.seeder.Seed(r.Context())
	metrics.RecordSeed(err)
	if err != nil {
		h.log.Error("seeding failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to seed database")
		return
	}

	n, err := h.cache.Flush(r.Context())
	metrics.RecordCacheFlush(err)
	if err != nil {
		h.log.Error("cache flush failed after seed", "err", err)
	} else {
		h.log.Info("cache flushed after seed", "keys", n)
	}

	writeJSON(w, http.StatusOK, seedResponse{
		Message:      "Database seeded successfully",
		Counts:       counts,
		CacheFlushed: err == nil,
	})
}

// Health handles GET /health. It never checks dependencies.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(isoMillis),
	})
}

// ReadyHandlerFunc returns an http.HandlerFunc that checks db and cache connectivity.
// A nil cache is reported as "disabled" and does not affect readiness.
func ReadyHandlerFunc(db Pinger, cache Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		cacheStatus := "disabled"

		if err := db.Ping(ctx); err != nil {
			log.Error("readiness check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if cache != nil {
			cacheStatus = "ok"
			if err := cache.Ping(ctx); err != nil {
				log.Error("readiness check: cache ping failed", "err", err)
				cacheStatus = "error"
				status = http.StatusServiceUnavailable
			}
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"cache":  cacheStatus,
		})
	}
}
