package catalog

import (
	"fmt"
	"net/url"
	"strconv"
)

// Default page sizes per entity, and the hard cap applied to any limit.
const (
	DefaultMonasteryLimit     = 50
	DefaultFestivalLimit      = 20
	DefaultAccommodationLimit = 30
	DefaultBlogLimit          = 10
	MaxLimit                  = 100
)

// Page is the limit/offset pair shared by every list query.
// A zero Limit means "use the entity default".
type Page struct {
	Limit  int
	Offset int
}

// Resolve returns the effective limit given the entity default.
func (p Page) Resolve(def int) int {
	if p.Limit <= 0 {
		return def
	}
	if p.Limit > MaxLimit {
		return MaxLimit
	}
	return p.Limit
}

// MonasteryFilter constrains ListMonasteries. Empty fields add no predicate.
type MonasteryFilter struct {
	Region Region
	Search string
	Page
}

// FestivalFilter constrains ListFestivals. Month matches the free-text date by substring.
type FestivalFilter struct {
	Month     string
	Monastery string
	Search    string
	Page
}

// AccommodationFilter constrains ListAccommodations. Prices are inclusive bounds.
type AccommodationFilter struct {
	Type     AccommodationType
	Location string
	MinPrice *int
	MaxPrice *int
	Page
}

// BlogFilter constrains ListBlogs.
type BlogFilter struct {
	Category BlogCategory
	Author   string
	Search   string
	Page
}

// ParseMonasteryFilter reads region/search/limit/offset from a query string.
func ParseMonasteryFilter(q url.Values) (MonasteryFilter, error) {
	region, err := ParseRegion(q.Get("region"))
	if err != nil {
		return MonasteryFilter{}, err
	}
	page, err := parsePage(q)
	if err != nil {
		return MonasteryFilter{}, err
	}
	return MonasteryFilter{Region: region, Search: q.Get("search"), Page: page}, nil
}

// ParseFestivalFilter reads month/monastery/search/limit/offset from a query string.
func ParseFestivalFilter(q url.Values) (FestivalFilter, error) {
	page, err := parsePage(q)
	if err != nil {
		return FestivalFilter{}, err
	}
	return FestivalFilter{
		Month:     q.Get("month"),
		Monastery: q.Get("monastery"),
		Search:    q.Get("search"),
		Page:      page,
	}, nil
}

// ParseAccommodationFilter reads type/location/minPrice/maxPrice/limit/offset.
func ParseAccommodationFilter(q url.Values) (AccommodationFilter, error) {
	typ, err := ParseAccommodationType(q.Get("type"))
	if err != nil {
		return AccommodationFilter{}, err
	}
	page, err := parsePage(q)
	if err != nil {
		return AccommodationFilter{}, err
	}
	minPrice, err := optionalInt(q, "minPrice")
	if err != nil {
		return AccommodationFilter{}, err
	}
	maxPrice, err := optionalInt(q, "maxPrice")
	if err != nil {
		return AccommodationFilter{}, err
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return AccommodationFilter{}, fmt.Errorf("%w: minPrice %d > maxPrice %d", ErrInvalidFilter, *minPrice, *maxPrice)
	}
	return AccommodationFilter{
		Type:     typ,
		Location: q.Get("location"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     page,
	}, nil
}

// ParseBlogFilter reads category/author/search/limit/offset from a query string.
func ParseBlogFilter(q url.Values) (BlogFilter, error) {
	category, err := ParseBlogCategory(q.Get("category"))
	if err != nil {
		return BlogFilter{}, err
	}
	page, err := parsePage(q)
	if err != nil {
		return BlogFilter{}, err
	}
	return BlogFilter{Category: category, Author: q.Get("author"), Search: q.Get("search"), Page: page}, nil
}

func parsePage(q url.Values) (Page, error) {
	var p Page
	limit, err := optionalInt(q, "limit")
	if err != nil {
		return p, err
	}
	offset, err := optionalInt(q, "offset")
	if err != nil {
		return p, err
	}
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p, nil
}

// optionalInt parses a non-negative integer parameter; absent yields nil.
func optionalInt(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidFilter, key, raw)
	}
	return &n, nil
}
