package catalog

import "time"

// Monastery is a single monastery record.
type Monastery struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Region          Region `json:"region"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
	Image           string `json:"image"`
	Significance    string `json:"significance"`
	BestTimeToVisit string `json:"bestTimeToVisit"`
}

// Festival is a single festival record. Date is free text ("February 2024").
type Festival struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Monastery    *string `json:"monastery"`
	Significance string  `json:"significance"`
}

// Accommodation is a single place to stay.
type Accommodation struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      AccommodationType `json:"type"`
	Location  string            `json:"location"`
	Price     int               `json:"price"`
	Rating    int               `json:"rating"`
	Amenities []string          `json:"amenities"`
	Image     string            `json:"image"`
}

// Blog is a published article.
type Blog struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	PublishedAt time.Time    `json:"publishedAt"`
	Category    BlogCategory `json:"category"`
	Image       string       `json:"image"`
}

// User is an account record. The hash never leaves the server.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// NewMonastery is the create payload for a monastery.
type NewMonastery struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Region          Region `json:"region" validate:"required,region"`
	Latitude        string `json:"latitude" validate:"required"`
	Longitude       string `json:"longitude" validate:"required"`
	Image           string `json:"image" validate:"required"`
	Significance    string `json:"significance" validate:"required"`
	BestTimeToVisit string `json:"bestTimeToVisit" validate:"required"`
}

// NewFestival is the create payload for a festival.
type NewFestival struct {
	Name         string  `json:"name" validate:"required"`
	Date         string  `json:"date" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Monastery    *string `json:"monastery"`
	Significance string  `json:"significance" validate:"required"`
}

// NewAccommodation is the create payload for an accommodation.
type NewAccommodation struct {
	Name      string            `json:"name" validate:"required"`
	Type      AccommodationType `json:"type" validate:"required,accommodation_type"`
	Location  string            `json:"location" validate:"required"`
	Price     int               `json:"price" validate:"min=0"`
	Rating    int               `json:"rating" validate:"min=0,max=5"`
	Amenities []string          `json:"amenities" validate:"required,dive,required"`
	Image     string            `json:"image" validate:"required"`
}

// NewBlog is the create payload for a blog post.
// A nil PublishedAt is filled with the current time on insert.
type NewBlog struct {
	Title       string       `json:"title" validate:"required"`
	Content     string       `json:"content" validate:"required"`
	Author      string       `json:"author" validate:"required"`
	PublishedAt *time.Time   `json:"publishedAt"`
	Category    BlogCategory `json:"category" validate:"required,blog_category"`
	Image       string       `json:"image" validate:"required"`
}

// SearchResults groups matches from each catalog searched by Searcher.
type SearchResults struct {
	Query       string      `json:"query"`
	Monasteries []Monastery `json:"monasteries"`
	Festivals   []Festival  `json:"festivals"`
	Blogs       []Blog      `json:"blogs"`
}
