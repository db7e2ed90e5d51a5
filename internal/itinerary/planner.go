package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/monastery-trails/internal/catalog"
)

// TripType selects one of the fixed plans.
type TripType string

const (
	ThreeDay  TripType = "3-day"
	SevenDay  TripType = "7-day"
	Adventure TripType = "adventure"
	Cultural  TripType = "cultural"
)

// ErrInvalidTripType is returned by Plan for an unrecognised trip type.
var ErrInvalidTripType = errors.New("invalid trip type")

// Request is the trip planner input. Only Type affects the result; the
// preference fields are kept raw so any JSON value is accepted.
type Request struct {
	Type      TripType        `json:"type"`
	Duration  json.RawMessage `json:"duration,omitempty"`
	GroupSize json.RawMessage `json:"groupSize,omitempty"`
	Interests json.RawMessage `json:"interests,omitempty"`
}

// Day is one entry of an itinerary.
type Day struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	Monasteries   []string `json:"monasteries"`
	Accommodation string   `json:"accommodation,omitempty"`
}

// Itinerary is a generated trip plan. It is never persisted.
type Itinerary struct {
	ID          string   `json:"id"`
	Type        TripType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Days        []Day    `json:"days"`
}

// CatalogReader is the part of the repository the planner consults.
type CatalogReader interface {
	ListMonasteries(ctx context.Context, f catalog.MonasteryFilter) ([]catalog.Monastery, error)
	ListFestivals(ctx context.Context, f catalog.FestivalFilter) ([]catalog.Festival, error)
}

const (
	sideFetchMonasteries = 10
	sideFetchFestivals   = 5
)

// Planner maps trip types to itineraries.
type Planner struct {
	catalog CatalogReader
	log     *slog.Logger
	now     func() time.Time
}

// NewPlanner constructs a Planner using the wall clock for identifiers.
func NewPlanner(c CatalogReader, log *slog.Logger) *Planner {
	return &Planner{catalog: c, log: log, now: time.Now}
}

// WithClock replaces the clock used to derive itinerary ids.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

// Plan returns a fresh copy of the plan for req.Type.
//
// The catalog is read before the plan is built and a read failure fails the
// call, but the rows never influence the result.
func (p *Planner) Plan(ctx context.Context, req Request) (*Itinerary, error) {
	tpl, ok := plans[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTripType, req.Type)
	}

	if err := p.readCatalog(ctx); err != nil {
		return nil, fmt.Errorf("planning %s trip: %w", req.Type, err)
	}

	it := Itinerary{
		ID:          fmt.Sprintf("trip-%d", p.now().UnixMilli()),
		Type:        req.Type,
		Title:       tpl.Title,
		Description: tpl.Description,
		Days:        make([]Day, len(tpl.Days)),
	}
	for i, d := range tpl.Days {
		d.Activities = slices.Clone(d.Activities)
		d.Monasteries = slices.Clone(d.Monasteries)
		it.Days[i] = d
	}

	p.log.Debug("itinerary generated", "type", req.Type, "days", len(it.Days))
	return &it, nil
}

func (p *Planner) readCatalog(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("monastery read panicked", "recover", r)
				err = fmt.Errorf("monastery read panicked: %v", r)
			}
		}()
		_, err = p.catalog.ListMonasteries(gCtx, catalog.MonasteryFilter{Page: catalog.Page{Limit: sideFetchMonasteries}})
		return err
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("festival read panicked", "recover", r)
				err = fmt.Errorf("festival read panicked: %v", r)
			}
		}()
		_, err = p.catalog.ListFestivals(gCtx, catalog.FestivalFilter{Page: catalog.Page{Limit: sideFetchFestivals}})
		return err
	})

	return g.Wait()
}
