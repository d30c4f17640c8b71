// Package topics implements the topic resource: listing and validated
// creation.
package topics

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/database"
)

// Topic is a topic row. The slug is the primary identifier.
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// NewTopicInput is the request body for creating a topic.
type NewTopicInput struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Store executes topic queries against the database.
type Store struct {
	db database.DBTX
}

// NewStore creates a new topic Store.
func NewStore(db database.DBTX) *Store {
	return &Store{db: db}
}

// List retrieves all topics.
func (s *Store) List(ctx context.Context) ([]Topic, error) {
	rows, err := s.db.Query(ctx, "SELECT slug, description FROM topics")
	if err != nil {
		return nil, apierror.Wrap("querying topics", err)
	}
	defer rows.Close()

	topics, err := pgx.CollectRows(rows, pgx.RowToStructByName[Topic])
	if err != nil {
		return nil, apierror.Wrap("scanning topics", err)
	}
	if topics == nil {
		topics = []Topic{}
	}

	return topics, nil
}

// Insert creates a new topic. A duplicate slug surfaces as an
// invalid-body failure via the unique-violation translation.
func (s *Store) Insert(ctx context.Context, in NewTopicInput) (Topic, error) {
	rows, err := s.db.Query(ctx,
		"INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING slug, description",
		in.Slug, in.Description)
	if err != nil {
		return Topic{}, apierror.Wrap("inserting topic", err)
	}
	defer rows.Close()

	topic, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Topic])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Topic{}, apierror.ErrInvalidBody
		}
		return Topic{}, apierror.Wrap("scanning inserted topic", err)
	}

	return topic, nil
}
