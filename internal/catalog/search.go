package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyQuery is returned by Search when no query text is given.
var ErrEmptyQuery = errors.New("empty search query")

// Lister is the subset of the repository the searcher fans out to.
type Lister interface {
	ListMonasteries(ctx context.Context, f MonasteryFilter) ([]Monastery, error)
	ListFestivals(ctx context.Context, f FestivalFilter) ([]Festival, error)
	ListBlogs(ctx context.Context, f BlogFilter) ([]Blog, error)
}

// Searcher runs one substring query against several catalogs in parallel.
type Searcher struct {
	repo Lister
	log  *slog.Logger
}

// NewSearcher constructs a Searcher over the given repository.
func NewSearcher(repo Lister, log *slog.Logger) *Searcher {
	return &Searcher{repo: repo, log: log}
}

// Search matches q against monastery, festival and blog text.
// Any single catalog failure fails the whole search.
func (s *Searcher) Search(ctx context.Context, q string) (*SearchResults, error) {
	if q == "" {
		return nil, ErrEmptyQuery
	}

	g, gCtx := errgroup.WithContext(ctx)

	var (
		monasteries []Monastery
		festivals   []Festival
		blogs       []Blog
	)

	g.Go(func() (err error) {
		defer recoverInto(s.log, "monastery search", &err)
		monasteries, err = s.repo.ListMonasteries(gCtx, MonasteryFilter{Search: q})
		return err
	})

	g.Go(func() (err error) {
		defer recoverInto(s.log, "festival search", &err)
		festivals, err = s.repo.ListFestivals(gCtx, FestivalFilter{Search: q})
		return err
	})

	g.Go(func() (err error) {
		defer recoverInto(s.log, "blog search", &err)
		blogs, err = s.repo.ListBlogs(gCtx, BlogFilter{Search: q})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("searching catalog for %q: %w", q, err)
	}

	return &SearchResults{
		Query:       q,
		Monasteries: nonNil(monasteries),
		Festivals:   nonNil(festivals),
		Blogs:       nonNil(blogs),
	}, nil
}

func recoverInto(log *slog.Logger, what string, err *error) {
	if r := recover(); r != nil {
		log.Error(what+" panicked", "recover", r)
		*err = fmt.Errorf("%s panicked: %v", what, r)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
