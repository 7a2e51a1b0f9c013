package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	ArticleID int64     `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentSummary is the projection returned when listing an article's
// comments: the article_id is implied by the route and omitted.
type CommentSummary struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
}

// CommentQuery carries the sort parameters for a comment listing
type CommentQuery struct {
	SortBy string
	Order  string
}

// NewComment is the request body for posting a comment
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// VotePatch is the request body for vote increments. IncVotes is kept
// as the decoded JSON value so the core can apply its own numeric
// coercion rules; a missing key decodes to nil.
type VotePatch struct {
	IncVotes any `json:"inc_votes"`
}
