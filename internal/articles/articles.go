// Package articles implements the article resource: query-parameter
// parsing and normalization for the collection endpoint, safe dynamic
// SQL construction for filtered/sorted/paginated reads with per-article
// comment counts, pagination-independent totals, and validated
// mutations.
package articles

import "time"

// DefaultImageURL is the placeholder applied when an article is created
// without an article_img_url.
const DefaultImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is an article row. CommentCount is derived per query from the
// comments relation, never stored. Body is only populated on the
// single-article read.
type Article struct {
	ArticleID     int64     `json:"article_id" db:"article_id"`
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	Body          string    `json:"body,omitempty" db:"body"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// NewArticleInput is the request body for creating an article.
type NewArticleInput struct {
	Author        string `json:"author" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}
