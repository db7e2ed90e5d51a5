package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/neexbeast/monastery-trails/internal/metrics"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// APIBase is the mount point of the API, without a trailing slash. Empty mounts at the root.
	APIBase string
	// AdminToken guards the create and seed routes when non-empty.
	AdminToken         string
	CORSAllowedOrigins []string
	// RateLimitPerMinute is a per-IP budget; zero disables limiting.
	RateLimitPerMinute int
	// StaticDir, when set, serves the built client with an index.html fallback.
	StaticDir string

	DB    Pinger
	Cache Pinger // nil when caching is disabled
}

// NewRouter builds and returns the Chi router with all routes configured.
// Reads, the trip planner and the probes are public; writes require the admin token if one is configured.
func NewRouter(handlers *Handlers, opts RouterOptions, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metrics.Middleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   opts.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)
	if opts.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
	}

	r.Handle("/metrics", metrics.Handler())

	routes := func(r chi.Router) {
		r.Use(RequestLogger(log))

		r.Get("/health", handlers.Health)
		r.Get("/ready", ReadyHandlerFunc(opts.DB, opts.Cache, log))

		r.Get("/monasteries", handlers.ListMonasteries)
		r.Get("/monasteries/{id}", handlers.GetMonastery)
		r.Get("/festivals", handlers.ListFestivals)
		r.Get("/festivals/{id}", handlers.GetFestival)
		r.Get("/accommodations", handlers.ListAccommodations)
		r.Get("/accommodations/{id}", handlers.GetAccommodation)
		r.Get("/blogs", handlers.ListBlogs)
		r.Get("/blogs/{id}", handlers.GetBlog)
		r.Get("/search", handlers.Search)
		r.Post("/trip-planner", handlers.PlanTrip)

		r.Group(func(r chi.Router) {
			if opts.AdminToken != "" {
				r.Use(BearerAuth(opts.AdminToken))
			}
			r.Post("/monasteries", handlers.CreateMonastery)
			r.Post("/festivals", handlers.CreateFestival)
			r.Post("/accommodations", handlers.CreateAccommodation)
			r.Post("/blogs", handlers.CreateBlog)
			r.Post("/seed", handlers.Seed)
		})
	}

	if opts.APIBase == "" {
		r.Group(routes)
	} else {
		r.Route(opts.APIBase, func(r chi.Router) {
			routes(r)
			r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
				writeError(w, http.StatusNotFound, "Not found")
			})
		})
	}

	if opts.StaticDir != "" {
		r.NotFound(spaHandler(opts.StaticDir))
	}

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
