// Package comments implements the comment resource: paginated reads of
// an article's comments, direct reads by comment id, and validated
// mutations (creation, vote increments, deletion).
package comments

import "time"

// Comment is a comment row.
type Comment struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	Body      string    `json:"body" db:"body"`
	ArticleID int64     `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewCommentInput is the request body for commenting on an article.
type NewCommentInput struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}
