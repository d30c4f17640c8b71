// Package users implements read access to the user resource. Users are
// seeded out-of-band; the API only lists them and resolves usernames.
package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/database"
)

// User is a user row. The username is the primary identifier.
type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}

// Store executes user queries against the database.
type Store struct {
	db database.DBTX
}

// NewStore creates a new user Store.
func NewStore(db database.DBTX) *Store {
	return &Store{db: db}
}

// List retrieves all users.
func (s *Store) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.Query(ctx, "SELECT username, name, avatar_url FROM users")
	if err != nil {
		return nil, apierror.Wrap("querying users", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[User])
	if err != nil {
		return nil, apierror.Wrap("scanning users", err)
	}
	if users == nil {
		users = []User{}
	}

	return users, nil
}

// GetByUsername retrieves a single user.
func (s *Store) GetByUsername(ctx context.Context, username string) (User, error) {
	rows, err := s.db.Query(ctx,
		"SELECT username, name, avatar_url FROM users WHERE username = $1", username)
	if err != nil {
		return User{}, apierror.Wrap("querying user", err)
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apierror.ErrNotFound
		}
		return User{}, apierror.Wrap("scanning user", err)
	}

	return user, nil
}
