package catalog_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/monastery-trails/internal/catalog"
)

func TestParseRegion(t *testing.T) {
	for _, r := range catalog.Regions {
		got, err := catalog.ParseRegion(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := catalog.ParseRegion("all")
	require.NoError(t, err)
	assert.Empty(t, got, "all means no region filter")

	got, err = catalog.ParseRegion("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseRegion_OutOfSet(t *testing.T) {
	_, err := catalog.ParseRegion("north") // case-sensitive
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrInvalidFilter))

	_, err = catalog.ParseRegion("Central")
	assert.ErrorIs(t, err, catalog.ErrInvalidFilter)
}

func TestParseMonasteryFilter(t *testing.T) {
	f, err := catalog.ParseMonasteryFilter(url.Values{
		"region": {"East"},
		"search": {"Rumtek"},
		"limit":  {"5"},
		"offset": {"2"},
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.RegionEast, f.Region)
	assert.Equal(t, "Rumtek", f.Search)
	assert.Equal(t, 5, f.Limit)
	assert.Equal(t, 2, f.Offset)
}

func TestParseMonasteryFilter_BadLimit(t *testing.T) {
	_, err := catalog.ParseMonasteryFilter(url.Values{"limit": {"ten"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidFilter)

	_, err = catalog.ParseMonasteryFilter(url.Values{"offset": {"-1"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidFilter)
}

func TestParseAccommodationFilter(t *testing.T) {
	f, err := catalog.ParseAccommodationFilter(url.Values{
		"type":     {"eco-lodge"},
		"location": {"Pell"},
		"minPrice": {"1000"},
		"maxPrice": {"5000"},
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.AccommodationEcoLodge, f.Type)
	assert.Equal(t, "Pell", f.Location)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 1000, *f.MinPrice)
	assert.Equal(t, 5000, *f.MaxPrice)
}

func TestParseAccommodationFilter_Errors(t *testing.T) {
	_, err := catalog.ParseAccommodationFilter(url.Values{"type": {"castle"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidFilter)

	_, err = catalog.ParseAccommodationFilter(url.Values{"minPrice": {"9000"}, "maxPrice": {"100"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidFilter)
}

func TestParseBlogFilter(t *testing.T) {
	f, err := catalog.ParseBlogFilter(url.Values{"category": {"culture"}, "author": {"David Chen"}})
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryCulture, f.Category)
	assert.Equal(t, "David Chen", f.Author)

	_, err = catalog.ParseBlogFilter(url.Values{"category": {"gossip"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidFilter)
}

func TestParseFestivalFilter(t *testing.T) {
	f, err := catalog.ParseFestivalFilter(url.Values{"month": {"May"}, "monastery": {"Enchey Monastery"}})
	require.NoError(t, err)
	assert.Equal(t, "May", f.Month)
	assert.Equal(t, "Enchey Monastery", f.Monastery)
	assert.Zero(t, f.Limit)
}

func TestPage_Resolve(t *testing.T) {
	assert.Equal(t, catalog.DefaultBlogLimit, catalog.Page{}.Resolve(catalog.DefaultBlogLimit))
	assert.Equal(t, 7, catalog.Page{Limit: 7}.Resolve(catalog.DefaultBlogLimit))
	assert.Equal(t, catalog.MaxLimit, catalog.Page{Limit: 5000}.Resolve(catalog.DefaultBlogLimit))
}
