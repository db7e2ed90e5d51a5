package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/neexbeast/monastery-trails/internal/catalog"
)

const bcryptCost = 12

// ErrUsernameTaken is returned by CreateUser when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// UserStore provides access to the users table. Passwords are stored as bcrypt hashes.
type UserStore struct {
	q    Querier
	cost int
}

// NewUserStore constructs a UserStore over q.
func NewUserStore(q Querier) *UserStore {
	return &UserStore{q: q, cost: bcryptCost}
}

// NewUserStoreWithCost is NewUserStore with a custom bcrypt cost (tests use bcrypt.MinCost).
func NewUserStoreWithCost(q Querier, cost int) *UserStore {
	return &UserStore{q: q, cost: cost}
}

func scanUser(row pgx.Row) (catalog.User, error) {
	var u catalog.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash)
	return u, err
}

// GetUser returns nil, nil when no user has the given id.
func (s *UserStore) GetUser(ctx context.Context, id string) (*catalog.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return queryOne(ctx, s.q, "user", id, `SELECT id::text, username, password_hash FROM users WHERE id = $1`, scanUser)
}

// GetUserByUsername returns nil, nil when the username is unknown.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*catalog.User, error) {
	return queryOne(ctx, s.q, "user", username, `SELECT id::text, username, password_hash FROM users WHERE username = $1`, scanUser)
}

// CreateUser hashes password and inserts a new user.
func (s *UserStore) CreateUser(ctx context.Context, username, password string) (*catalog.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %s: %w", username, err)
	}

	const q = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id::text, username, password_hash
	`

	u, err := scanUser(s.q.QueryRow(ctx, q, username, string(hash)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("inserting user %s: %w", username, err)
	}
	return &u, nil
}

// VerifyPassword reports whether password matches the user's stored hash.
func VerifyPassword(u *catalog.User, password string) bool {
	if u == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
