package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// SeedCounts reports how many rows of each kind a seed inserted.
type SeedCounts struct {
	Monasteries    int `json:"monasteries"`
	Festivals      int `json:"festivals"`
	Accommodations int `json:"accommodations"`
	Blogs          int `json:"blogs"`
}

// Seeder replaces the catalog tables with the reference data set.
type Seeder struct {
	db  TxBeginner
	log *slog.Logger
}

// NewSeeder constructs a Seeder over the given pool.
func NewSeeder(db TxBeginner, log *slog.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// Seed deletes every catalog row and inserts the reference set in a single
// transaction. On any failure the previous contents are left untouched.
func (s *Seeder) Seed(ctx context.Context) (SeedCounts, error) {
	var counts SeedCounts

	err := inTx(ctx, s.db, func(tx pgx.Tx) error {
		for _, table := range []string{"blogs", "accommodations", "festivals", "monasteries"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}

		for _, m := range seedMonasteries {
			if _, err := tx.Exec(ctx, `
				INSERT INTO monasteries (name, description, region, latitude, longitude, image, significance, best_time_to_visit)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				m.Name, m.Description, string(m.Region), m.Latitude, m.Longitude, m.Image, m.Significance, m.BestTimeToVisit,
			); err != nil {
				return fmt.Errorf("seeding monastery %s: %w", m.Name, err)
			}
			counts.Monasteries++
		}

		for _, f := range seedFestivals {
			if _, err := tx.Exec(ctx, `
				INSERT INTO festivals (name, date, description, monastery, significance)
				VALUES ($1, $2, $3, $4, $5)`,
				f.Name, f.Date, f.Description, f.Monastery, f.Significance,
			); err != nil {
				return fmt.Errorf("seeding festival %s: %w", f.Name, err)
			}
			counts.Festivals++
		}

		for _, a := range seedAccommodations {
			if _, err := tx.Exec(ctx, `
				INSERT INTO accommodations (name, type, location, price, rating, amenities, image)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				a.Name, string(a.Type), a.Location, a.Price, a.Rating, a.Amenities, a.Image,
			); err != nil {
				return fmt.Errorf("seeding accommodation %s: %w", a.Name, err)
			}
			counts.Accommodations++
		}

		for _, b := range seedBlogs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO blogs (title, content, author, published_at, category, image)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				b.Title, b.Content, b.Author, b.PublishedAt, string(b.Category), b.Image,
			); err != nil {
				return fmt.Errorf("seeding blog %s: %w", b.Title, err)
			}
			counts.Blogs++
		}

		return nil
	})
	if err != nil {
		return SeedCounts{}, fmt.Errorf("seeding catalog: %w", err)
	}

	s.log.Info("catalog seeded",
		"monasteries", counts.Monasteries,
		"festivals", counts.Festivals,
		"accommodations", counts.Accommodations,
		"blogs", counts.Blogs,
	)
	return counts, nil
}

// ReferenceCounts returns the size of the built-in data set.
func ReferenceCounts() SeedCounts {
	return SeedCounts{
		Monasteries:    len(seedMonasteries),
		Festivals:      len(seedFestivals),
		Accommodations: len(seedAccommodations),
		Blogs:          len(seedBlogs),
	}
}
