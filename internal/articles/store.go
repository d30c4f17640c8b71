package articles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/database"
)

// getByIDQuery returns a single article including its body and
// comment count.
const getByIDQuery = `SELECT articles.article_id, articles.author, articles.title, articles.body,
	articles.topic, articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id)::INT AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = $1
GROUP BY articles.article_id`

const insertQuery = `INSERT INTO articles (author, title, body, topic, article_img_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`

// Store executes article queries against the database.
type Store struct {
	db database.DBTX
}

// NewStore creates a new article Store.
func NewStore(db database.DBTX) *Store {
	return &Store{db: db}
}

// List retrieves the filtered, sorted, paginated article collection.
// Articles with no comments are included with a comment count of zero.
func (s *Store) List(ctx context.Context, p ListParams) ([]Article, error) {
	sql, args := buildListQuery(p)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apierror.Wrap("querying articles", err)
	}
	defer rows.Close()

	arts, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[Article])
	if err != nil {
		return nil, apierror.Wrap("scanning articles", err)
	}
	if arts == nil {
		arts = []Article{}
	}

	return arts, nil
}

// Count reports how many articles match the topic filter, ignoring any
// pagination window.
func (s *Store) Count(ctx context.Context, topic *string) (int, error) {
	sql, args := buildCountQuery(topic)

	var total int
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, apierror.Wrap("counting articles", err)
	}

	return total, nil
}

// GetByID retrieves a single article with its body and comment count.
func (s *Store) GetByID(ctx context.Context, id int64) (Article, error) {
	rows, err := s.db.Query(ctx, getByIDQuery, id)
	if err != nil {
		return Article{}, apierror.Wrap("querying article", err)
	}
	defer rows.Close()

	art, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Article])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Article{}, apierror.ErrNotFound
		}
		return Article{}, apierror.Wrap("scanning article", err)
	}

	return art, nil
}

// Insert creates a new article and returns the stored row. The caller
// is responsible for substituting the default image URL beforehand.
func (s *Store) Insert(ctx context.Context, in NewArticleInput) (Article, error) {
	rows, err := s.db.Query(ctx, insertQuery,
		in.Author, in.Title, in.Body, in.Topic, in.ArticleImgURL)
	if err != nil {
		return Article{}, apierror.Wrap("inserting article", err)
	}
	defer rows.Close()

	art, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[Article])
	if err != nil {
		return Article{}, apierror.Wrap("scanning inserted article", err)
	}
	art.CommentCount = 0

	return art, nil
}

// IncrementVotes applies a vote delta to an article in a single
// statement. Votes may go negative.
func (s *Store) IncrementVotes(ctx context.Context, id int64, delta int) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE articles SET votes = votes + $1 WHERE article_id = $2", delta, id)
	if err != nil {
		return apierror.Wrap("updating article votes", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.ErrNotFound
	}

	return nil
}

// Delete removes an article; its comments are removed by the cascading
// foreign key.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM articles WHERE article_id = $1", id)
	if err != nil {
		return apierror.Wrap("deleting article", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.ErrNotFound
	}

	return nil
}

// TopicExists reports whether a topic with the given slug exists.
func (s *Store) TopicExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)", slug).Scan(&exists)
	if err != nil {
		return false, apierror.Wrap("checking topic existence", err)
	}

	return exists, nil
}

// UserExists reports whether a user with the given username exists.
func (s *Store) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return false, apierror.Wrap("checking user existence", err)
	}

	return exists, nil
}
