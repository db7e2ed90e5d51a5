package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/monastery-trails/internal/catalog"
)

func validMonastery() catalog.NewMonastery {
	return catalog.NewMonastery{
		Name:            "Rumtek Monastery",
		Description:     "Seat of the Karmapa.",
		Region:          catalog.RegionEast,
		Latitude:        "27.3350",
		Longitude:       "88.5593",
		Image:           "/img/rumtek.png",
		Significance:    "Kagyu School",
		BestTimeToVisit: "October to May",
	}
}

func TestValidate_Monastery(t *testing.T) {
	require.NoError(t, catalog.Validate(validMonastery()))
}

func TestValidate_MonasteryMissingName(t *testing.T) {
	m := validMonastery()
	m.Name = ""
	err := catalog.Validate(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Name")
}

func TestValidate_MonasteryBadRegion(t *testing.T) {
	m := validMonastery()
	m.Region = "Central"
	err := catalog.Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region")
}

func TestValidate_Accommodation(t *testing.T) {
	a := catalog.NewAccommodation{
		Name:      "Monastery Guesthouse",
		Type:      catalog.AccommodationHomestay,
		Location:  "Rumtek",
		Price:     800,
		Rating:    3,
		Amenities: []string{"Library"},
		Image:     "/img/guesthouse.png",
	}
	require.NoError(t, catalog.Validate(a))

	a.Type = "castle"
	assert.ErrorIs(t, catalog.Validate(a), catalog.ErrInvalidInput)

	a.Type = catalog.AccommodationHotel
	a.Rating = 9
	assert.ErrorIs(t, catalog.Validate(a), catalog.ErrInvalidInput)
}

func TestValidate_BlogCategory(t *testing.T) {
	b := catalog.NewBlog{
		Title:    "Tips",
		Content:  "Remove shoes.",
		Author:   "David Chen",
		Category: catalog.CategoryTravelTips,
		Image:    "/img/tips.png",
	}
	require.NoError(t, catalog.Validate(b))

	b.Category = "gossip"
	assert.ErrorIs(t, catalog.Validate(b), catalog.ErrInvalidInput)
}

func TestValidate_FestivalMonasteryOptional(t *testing.T) {
	f := catalog.NewFestival{
		Name:         "Losar",
		Date:         "February 2024",
		Description:  "Tibetan New Year.",
		Significance: "New Year",
	}
	require.NoError(t, catalog.Validate(f))
}
