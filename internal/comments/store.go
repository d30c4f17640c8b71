package comments

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/database"
	"github.com/mgrundel/gazette/internal/params"
)

const commentColumns = "comment_id, body, article_id, author, votes, created_at"

const insertQuery = `INSERT INTO comments (body, author, article_id)
VALUES ($1, $2, $3)
RETURNING comment_id, body, article_id, author, votes, created_at`

// Store executes comment queries against the database.
type Store struct {
	db database.DBTX
}

// NewStore creates a new comment Store.
func NewStore(db database.DBTX) *Store {
	return &Store{db: db}
}

// buildListQuery assembles the newest-first read of an article's
// comments, with a bind-parameter pagination window when one is set.
func buildListQuery(articleID int64, page params.Page) (string, []any) {
	var b strings.Builder
	args := []any{articleID}

	b.WriteString("SELECT ")
	b.WriteString(commentColumns)
	b.WriteString("\nFROM comments\nWHERE article_id = $1\nORDER BY created_at DESC")

	if page.Set {
		args = append(args, page.Limit, page.Offset())
		b.WriteString("\nLIMIT $2 OFFSET $3")
	}

	return b.String(), args
}

// ListByArticle retrieves an article's comments, newest first.
func (s *Store) ListByArticle(ctx context.Context, articleID int64, page params.Page) ([]Comment, error) {
	sql, args := buildListQuery(articleID, page)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apierror.Wrap("querying comments", err)
	}
	defer rows.Close()

	cmts, err := pgx.CollectRows(rows, pgx.RowToStructByName[Comment])
	if err != nil {
		return nil, apierror.Wrap("scanning comments", err)
	}
	if cmts == nil {
		cmts = []Comment{}
	}

	return cmts, nil
}

// GetByID retrieves a single comment.
func (s *Store) GetByID(ctx context.Context, id int64) (Comment, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return Comment{}, apierror.Wrap("querying comment", err)
	}
	defer rows.Close()

	cmt, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Comment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Comment{}, apierror.ErrNotFound
		}
		return Comment{}, apierror.Wrap("scanning comment", err)
	}

	return cmt, nil
}

// Insert creates a new comment on an article and returns the stored row
// with its server-assigned id and timestamp.
func (s *Store) Insert(ctx context.Context, articleID int64, in NewCommentInput) (Comment, error) {
	rows, err := s.db.Query(ctx, insertQuery, in.Body, in.Username, articleID)
	if err != nil {
		return Comment{}, apierror.Wrap("inserting comment", err)
	}
	defer rows.Close()

	cmt, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Comment])
	if err != nil {
		return Comment{}, apierror.Wrap("scanning inserted comment", err)
	}

	return cmt, nil
}

// IncrementVotes applies a vote delta to a comment in a single
// statement. Votes may go negative.
func (s *Store) IncrementVotes(ctx context.Context, id int64, delta int) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE comments SET votes = votes + $1 WHERE comment_id = $2", delta, id)
	if err != nil {
		return apierror.Wrap("updating comment votes", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.ErrNotFound
	}

	return nil
}

// Delete removes a comment.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return apierror.Wrap("deleting comment", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.ErrNotFound
	}

	return nil
}

// ArticleExists reports whether an article with the given id exists.
func (s *Store) ArticleExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	if err != nil {
		return false, apierror.Wrap("checking article existence", err)
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
