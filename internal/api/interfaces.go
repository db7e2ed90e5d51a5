package api

import (
	"context"

	"github.com/neexbeast/monastery-trails/internal/catalog"
	"github.com/neexbeast/monastery-trails/internal/itinerary"
	"github.com/neexbeast/monastery-trails/internal/storage"
)

// CatalogRepo defines the storage operations needed by handlers.
type CatalogRepo interface {
	ListMonasteries(ctx context.Context, f catalog.MonasteryFilter) ([]catalog.Monastery, error)
	GetMonastery(ctx context.Context, id string) (*catalog.Monastery, error)
	CreateMonastery(ctx context.Context, in catalog.NewMonastery) (*catalog.Monastery, error)

	ListFestivals(ctx context.Context, f catalog.FestivalFilter) ([]catalog.Festival, error)
	GetFestival(ctx context.Context, id string) (*catalog.Festival, error)
	CreateFestival(ctx context.Context, in catalog.NewFestival) (*catalog.Festival, error)

	ListAccommodations(ctx context.Context, f catalog.AccommodationFilter) ([]catalog.Accommodation, error)
	GetAccommodation(ctx context.Context, id string) (*catalog.Accommodation, error)
	CreateAccommodation(ctx context.Context, in catalog.NewAccommodation) (*catalog.Accommodation, error)

	ListBlogs(ctx context.Context, f catalog.BlogFilter) ([]catalog.Blog, error)
	GetBlog(ctx context.Context, id string) (*catalog.Blog, error)
	CreateBlog(ctx context.Context, in catalog.NewBlog) (*catalog.Blog, error)
}

// EntityCache defines the cache operations needed by handlers.
type EntityCache interface {
	Get(ctx context.Context, kind, id string, dst any) (bool, error)
	Set(ctx context.Context, kind, id string, v any) error
	Delete(ctx context.Context, kind, id string) error
	Flush(ctx context.Context) (int, error)
}

// Searcher runs a cross-catalog text search.
type Searcher interface {
	Search(ctx context.Context, q string) (*catalog.SearchResults, error)
}

// TripPlanner builds itineraries.
type TripPlanner interface {
	Plan(ctx context.Context, req itinerary.Request) (*itinerary.Itinerary, error)
}

// CatalogSeeder reloads the reference data set.
type CatalogSeeder interface {
	Seed(ctx context.Context) (storage.SeedCounts, error)
}

// Pinger is implemented by dependencies the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
