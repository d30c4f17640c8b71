package articles

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/mgrundel/gazette/internal/apierror"
)

// Service implements the business logic for article operations.
type Service struct {
	store *Store
}

// NewService creates a new article Service.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// parseID converts a path identifier into an article id. A non-numeric
// identifier is a malformed request, not a missing resource.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.ErrBadRequest
	}
	return id, nil
}

// List retrieves the article collection and its pagination-independent
// total. The collection read, the count, and the topic existence check
// share no results, so they run concurrently. A topic filter naming an
// unknown topic fails the whole request with not-found; an existing
// topic with no matching articles yields an empty collection.
func (s *Service) List(ctx context.Context, p ListParams) ([]Article, int, error) {
	var (
		arts  []Article
		total int
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		arts, err = s.store.List(ctx, p)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = s.store.Count(ctx, p.Topic)
		return err
	})

	if p.Topic != nil {
		topic := *p.Topic
		g.Go(func() error {
			exists, err := s.store.TopicExists(ctx, topic)
			if err != nil {
				return err
			}
			if !exists {
				return apierror.ErrNotFound
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return arts, total, nil
}

// Get retrieves a single article by its raw path identifier.
func (s *Service) Get(ctx context.Context, rawID string) (Article, error) {
	id, err := parseID(rawID)
	if err != nil {
		return Article{}, err
	}

	return s.store.GetByID(ctx, id)
}

// Create inserts a new article after verifying its author and topic
// exist. The two existence checks are independent and run concurrently.
func (s *Service) Create(ctx context.Context, in NewArticleInput) (Article, error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		exists, err := s.store.UserExists(gctx, in.Author)
		if err != nil {
			return err
		}
		if !exists {
			return apierror.ErrNotFound
		}
		return nil
	})

	g.Go(func() error {
		exists, err := s.store.TopicExists(gctx, in.Topic)
		if err != nil {
			return err
		}
		if !exists {
			return apierror.ErrNotFound
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Article{}, err
	}

	if in.ArticleImgURL == "" {
		in.ArticleImgURL = DefaultImageURL
	}

	return s.store.Insert(ctx, in)
}

// IncrementVotes applies a vote delta to an article and returns the
// updated row with a freshly computed comment count. The re-fetch is
// issued only after the update has completed.
func (s *Service) IncrementVotes(ctx context.Context, rawID string, delta int) (Article, error) {
	id, err := parseID(rawID)
	if err != nil {
		return Article{}, err
	}

	if err := s.store.IncrementVotes(ctx, id, delta); err != nil {
		return Article{}, err
	}

	art, err := s.store.GetByID(ctx, id)
	if err != nil {
		return Article{}, fmt.Errorf("re-fetching updated article: %w", err)
	}

	return art, nil
}

// Delete removes an article and, through the persistence layer's
// cascade, all of its comments.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}
