package models

import (
	"time"
)

// Article represents an article in the system
type Article struct {
	ArticleID int64     `json:"article_id" db:"article_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	Topic     string    `json:"topic" db:"topic"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ArticleWithCount is an article joined with its live comment count.
// The count is computed at read time from comment rows, never stored.
type ArticleWithCount struct {
	Article
	CommentCount int `json:"comment_count" db:"comment_count"`
}

// ArticleQuery carries the articles list query parameters exactly as
// parsed from the request. Author and Topic are pointers so that an
// absent filter is distinct from a present-but-empty one.
type ArticleQuery struct {
	SortBy string
	Order  string
	Author *string
	Topic  *string
	Page   string
	Limit  string
}

// ArticleList is the list envelope. TotalCount is the unfiltered total
// row count of the articles table, independent of filters/pagination.
type ArticleList struct {
	Articles   []ArticleWithCount `json:"articles"`
	TotalCount int                `json:"total_count"`
}

// ArticleListOptions are the resolved options handed to the repository
// after validation and defaulting.
type ArticleListOptions struct {
	SortBy string
	Order  string
	Author *string
	Topic  *string
	Limit  int
	Offset int
}
