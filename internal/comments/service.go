package comments

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/params"
)

// Service implements the business logic for comment operations.
type Service struct {
	store *Store
}

// NewService creates a new comment Service.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// parseID converts a raw path identifier into a numeric id. A
// non-numeric identifier is a malformed request, not a missing
// resource.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.ErrBadRequest
	}
	return id, nil
}

// ListForArticle retrieves an article's comments. The listing and the
// article existence check are independent and run concurrently: an
// unknown article fails with not-found, while an existing article with
// no comments yields an empty collection.
func (s *Service) ListForArticle(ctx context.Context, rawArticleID string, page params.Page) ([]Comment, error) {
	articleID, err := parseID(rawArticleID)
	if err != nil {
		return nil, err
	}

	var cmts []Comment

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cmts, err = s.store.ListByArticle(gctx, articleID, page)
		return err
	})

	g.Go(func() error {
		exists, err := s.store.ArticleExists(gctx, articleID)
		if err != nil {
			return err
		}
		if !exists {
			return apierror.ErrNotFound
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cmts, nil
}

// Get retrieves a single comment by its raw path identifier.
func (s *Service) Get(ctx context.Context, rawID string) (Comment, error) {
	id, err := parseID(rawID)
	if err != nil {
		return Comment{}, err
	}

	return s.store.GetByID(ctx, id)
}

// CreateForArticle inserts a comment after verifying both the article
// and the commenting user exist. The two existence checks are
// independent and run concurrently; the insert is only issued once both
// have passed.
func (s *Service) CreateForArticle(ctx context.Context, rawArticleID string, in NewCommentInput) (Comment, error) {
	articleID, err := parseID(rawArticleID)
	if err != nil {
		return Comment{}, err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		exists, err := s.store.ArticleExists(gctx, articleID)
		if err != nil {
			return err
		}
		if !exists {
			return apierror.ErrNotFound
		}
		return nil
	})

	g.Go(func() error {
		exists, err := s.store.UserExists(gctx, in.Username)
		if err != nil {
			return err
		}
		if !exists {
			return apierror.ErrNotFound
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Comment{}, err
	}

	return s.store.Insert(ctx, articleID, in)
}

// IncrementVotes applies a vote delta to a comment and returns the
// updated row. The re-fetch is issued only after the update has
// completed.
func (s *Service) IncrementVotes(ctx context.Context, rawID string, delta int) (Comment, error) {
	id, err := parseID(rawID)
	if err != nil {
		return Comment{}, err
	}

	if err := s.store.IncrementVotes(ctx, id, delta); err != nil {
		return Comment{}, err
	}

	return s.store.GetByID(ctx, id)
}

// Delete removes a comment.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}
