package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter is returned when a list query carries a value outside the
// accepted set for its field.
var ErrInvalidFilter = errors.New("invalid filter")

// Region is a coarse directional tag for monasteries.
type Region string

const (
	RegionNorth Region = "North"
	RegionSouth Region = "South"
	RegionEast  Region = "East"
	RegionWest  Region = "West"
)

// Regions lists every accepted region in display order.
var Regions = []Region{RegionNorth, RegionSouth, RegionEast, RegionWest}

// Valid reports whether r is one of the enumerated regions.
func (r Region) Valid() bool {
	switch r {
	case RegionNorth, RegionSouth, RegionEast, RegionWest:
		return true
	}
	return false
}

// ParseRegion parses a region query value. Empty and "all" yield "" (no filter).
func ParseRegion(s string) (Region, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	r := Region(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: region %q", ErrInvalidFilter, s)
	}
	return r, nil
}

// AccommodationType is the kind of an accommodation.
type AccommodationType string

const (
	AccommodationHotel    AccommodationType = "hotel"
	AccommodationHomestay AccommodationType = "homestay"
	AccommodationEcoLodge AccommodationType = "eco-lodge"
)

// Valid reports whether t is a known accommodation type.
func (t AccommodationType) Valid() bool {
	switch t {
	case AccommodationHotel, AccommodationHomestay, AccommodationEcoLodge:
		return true
	}
	return false
}

// ParseAccommodationType parses a type query value. Empty yields "" (no filter).
func ParseAccommodationType(s string) (AccommodationType, error) {
	if s == "" {
		return "", nil
	}
	t := AccommodationType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: accommodation type %q", ErrInvalidFilter, s)
	}
	return t, nil
}

// BlogCategory is the tag a blog post is filed under.
type BlogCategory string

const (
	CategoryExperiences BlogCategory = "experiences"
	CategoryTravelTips  BlogCategory = "travel-tips"
	CategoryCulture     BlogCategory = "culture"
	CategoryGuides      BlogCategory = "guides"
)

// Valid reports whether c is a known blog category.
func (c BlogCategory) Valid() bool {
	switch c {
	case CategoryExperiences, CategoryTravelTips, CategoryCulture, CategoryGuides:
		return true
	}
	return false
}

// ParseBlogCategory parses a category query value. Empty yields "" (no filter).
func ParseBlogCategory(s string) (BlogCategory, error) {
	if s == "" {
		return "", nil
	}
	c := BlogCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: blog category %q", ErrInvalidFilter, s)
	}
	return c, nil
}
