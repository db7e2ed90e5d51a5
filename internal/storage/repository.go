package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/monastery-trails/internal/catalog"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for the catalog tables.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// whereBuilder accumulates AND-ed predicates and their positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg registers v and returns its $n placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereBuilder) eq(col string, v any) {
	w.conds = append(w.conds, col+" = "+w.arg(v))
}

// contains adds a case-sensitive substring match of s against any of cols.
func (w *whereBuilder) contains(s string, cols ...string) {
	p := w.arg("%" + escapeLike(s) + "%")
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " LIKE " + p
	}
	if len(parts) == 1 {
		w.conds = append(w.conds, parts[0])
		return
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

func (w *whereBuilder) cmp(col, op string, v any) {
	w.conds = append(w.conds, col+" "+op+" "+w.arg(v))
}

func (w *whereBuilder) where() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page appends LIMIT/OFFSET placeholders.
func (w *whereBuilder) page(limit, offset int) string {
	return " LIMIT " + w.arg(limit) + " OFFSET " + w.arg(offset)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// validID reports whether id can match a row at all.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ---- monasteries ----

const monasteryColumns = `id::text, name, description, region, latitude, longitude, image, significance, best_time_to_visit`

func scanMonastery(row pgx.Row) (catalog.Monastery, error) {
	var m catalog.Monastery
	var region string
	err := row.Scan(&m.ID, &m.Name, &m.Description, &region, &m.Latitude, &m.Longitude, &m.Image, &m.Significance, &m.BestTimeToVisit)
	m.Region = catalog.Region(region)
	return m, err
}

// ListMonasteries returns monasteries matching f in storage order.
func (r *Repository) ListMonasteries(ctx context.Context, f catalog.MonasteryFilter) ([]catalog.Monastery, error) {
	var w whereBuilder
	if f.Region != "" {
		w.eq("region", string(f.Region))
	}
	if f.Search != "" {
		w.contains(f.Search, "name", "description", "significance")
	}
	q := "SELECT " + monasteryColumns + " FROM monasteries" + w.where() + w.page(f.Resolve(catalog.DefaultMonasteryLimit), f.Offset)

	return queryAll(ctx, r.q, "monasteries", q, w.args, scanMonastery)
}

// GetMonastery returns nil, nil when no monastery has the given id.
func (r *Repository) GetMonastery(ctx context.Context, id string) (*catalog.Monastery, error) {
	if !validID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, "monastery", id, "SELECT "+monasteryColumns+" FROM monasteries WHERE id = $1", scanMonastery)
}

// CreateMonastery inserts in and returns the stored row.
func (r *Repository) CreateMonastery(ctx context.Context, in catalog.NewMonastery) (*catalog.Monastery, error) {
	const q = `
		INSERT INTO monasteries (name, description, region, latitude, longitude, image, significance, best_time_to_visit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + monasteryColumns

	m, err := scanMonastery(r.q.QueryRow(ctx, q,
		in.Name, in.Description, string(in.Region), in.Latitude, in.Longitude, in.Image, in.Significance, in.BestTimeToVisit,
	))
	if err != nil {
		return nil, fmt.Errorf("inserting monastery %s: %w", in.Name, err)
	}
	return &m, nil
}

// ---- festivals ----

const festivalColumns = `id::text, name, date, description, monastery, significance`

func scanFestival(row pgx.Row) (catalog.Festival, error) {
	var f catalog.Festival
	err := row.Scan(&f.ID, &f.Name, &f.Date, &f.Description, &f.Monastery, &f.Significance)
	return f, err
}

// ListFestivals returns festivals matching f in storage order.
func (r *Repository) ListFestivals(ctx context.Context, f catalog.FestivalFilter) ([]catalog.Festival, error) {
	var w whereBuilder
	if f.Month != "" {
		w.contains(f.Month, "date")
	}
	if f.Monastery != "" {
		w.eq("monastery", f.Monastery)
	}
	if f.Search != "" {
		w.contains(f.Search, "name", "description", "significance")
	}
	q := "SELECT " + festivalColumns + " FROM festivals" + w.where() + w.page(f.Resolve(catalog.DefaultFestivalLimit), f.Offset)

	return queryAll(ctx, r.q, "festivals", q, w.args, scanFestival)
}

// GetFestival returns nil, nil when no festival has the given id.
func (r *Repository) GetFestival(ctx context.Context, id string) (*catalog.Festival, error) {
	if !validID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, "festival", id, "SELECT "+festivalColumns+" FROM festivals WHERE id = $1", scanFestival)
}

// CreateFestival inserts in and returns the stored row.
func (r *Repository) CreateFestival(ctx context.Context, in catalog.NewFestival) (*catalog.Festival, error) {
	const q = `
		INSERT INTO festivals (name, date, description, monastery, significance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + festivalColumns

	f, err := scanFestival(r.q.QueryRow(ctx, q, in.Name, in.Date, in.Description, in.Monastery, in.Significance))
	if err != nil {
		return nil, fmt.Errorf("inserting festival %s: %w", in.Name, err)
	}
	return &f, nil
}

// ---- accommodations ----

const accommodationColumns = `id::text, name, type, location, price, rating, amenities, image`

func scanAccommodation(row pgx.Row) (catalog.Accommodation, error) {
	var a catalog.Accommodation
	var typ string
	err := row.Scan(&a.ID, &a.Name, &typ, &a.Location, &a.Price, &a.Rating, &a.Amenities, &a.Image)
	a.Type = catalog.AccommodationType(typ)
	return a, err
}

// ListAccommodations returns accommodations matching f in storage order.
func (r *Repository) ListAccommodations(ctx context.Context, f catalog.AccommodationFilter) ([]catalog.Accommodation, error) {
	var w whereBuilder
	if f.Type != "" {
		w.eq("type", string(f.Type))
	}
	if f.Location != "" {
		w.contains(f.Location, "location")
	}
	if f.MinPrice != nil {
		w.cmp("price", ">=", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.cmp("price", "<=", *f.MaxPrice)
	}
	q := "SELECT " + accommodationColumns + " FROM accommodations" + w.where() + w.page(f.Resolve(catalog.DefaultAccommodationLimit), f.Offset)

	return queryAll(ctx, r.q, "accommodations", q, w.args, scanAccommodation)
}

// GetAccommodation returns nil, nil when no accommodation has the given id.
func (r *Repository) GetAccommodation(ctx context.Context, id string) (*catalog.Accommodation, error) {
	if !validID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, "accommodation", id, "SELECT "+accommodationColumns+" FROM accommodations WHERE id = $1", scanAccommodation)
}

// CreateAccommodation inserts in and returns the stored row.
func (r *Repository) CreateAccommodation(ctx context.Context, in catalog.NewAccommodation) (*catalog.Accommodation, error) {
	const q = `
		INSERT INTO accommodations (name, type, location, price, rating, amenities, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + accommodationColumns

	a, err := scanAccommodation(r.q.QueryRow(ctx, q,
		in.Name, string(in.Type), in.Location, in.Price, in.Rating, in.Amenities, in.Image,
	))
	if err != nil {
		return nil, fmt.Errorf("inserting accommodation %s: %w", in.Name, err)
	}
	return &a, nil
}

// ---- blogs ----

const blogColumns = `id::text, title, content, author, published_at, category, image`

func scanBlog(row pgx.Row) (catalog.Blog, error) {
	var b catalog.Blog
	var category string
	err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.PublishedAt, &category, &b.Image)
	b.Category = catalog.BlogCategory(category)
	return b, err
}

// ListBlogs returns blogs matching f, newest first.
func (r *Repository) ListBlogs(ctx context.Context, f catalog.BlogFilter) ([]catalog.Blog, error) {
	var w whereBuilder
	if f.Category != "" {
		w.eq("category", string(f.Category))
	}
	if f.Author != "" {
		w.eq("author", f.Author)
	}
	if f.Search != "" {
		w.contains(f.Search, "title", "content")
	}
	q := "SELECT " + blogColumns + " FROM blogs" + w.where() + " ORDER BY published_at DESC" + w.page(f.Resolve(catalog.DefaultBlogLimit), f.Offset)

	return queryAll(ctx, r.q, "blogs", q, w.args, scanBlog)
}

// GetBlog returns nil, nil when no blog has the given id.
func (r *Repository) GetBlog(ctx context.Context, id string) (*catalog.Blog, error) {
	if !validID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, "blog", id, "SELECT "+blogColumns+" FROM blogs WHERE id = $1", scanBlog)
}

// CreateBlog inserts in and returns the stored row. A nil PublishedAt becomes now().
func (r *Repository) CreateBlog(ctx context.Context, in catalog.NewBlog) (*catalog.Blog, error) {
	const q = `
		INSERT INTO blogs (title, content, author, published_at, category, image)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, NOW()), $5, $6)
		RETURNING ` + blogColumns

	b, err := scanBlog(r.q.QueryRow(ctx, q, in.Title, in.Content, in.Author, in.PublishedAt, string(in.Category), in.Image))
	if err != nil {
		return nil, fmt.Errorf("inserting blog %s: %w", in.Title, err)
	}
	return &b, nil
}

// ---- helpers ----

func queryAll[T any](ctx context.Context, q Querier, table, sql string, args []any, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	results := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		results = append(results, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}

	return results, nil
}

func queryOne[T any](ctx context.Context, q Querier, entity, id, sql string, scan func(pgx.Row) (T, error)) (*T, error) {
	v, err := scan(q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying %s %s: %w", entity, id, err)
	}
	return &v, nil
}
