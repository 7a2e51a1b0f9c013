package repository

import (
	"context"

	"github.com/news-discussion-api/internal/database"
	"github.com/news-discussion-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, opts models.ArticleListOptions) ([]models.ArticleWithCount, error)
	GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error)
	IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64, sortBy, order string) ([]models.CommentSummary, error)
	Insert(ctx context.Context, articleID int64, author, body string) (*models.Comment, error)
	IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Comment CommentRepository
	Topic   TopicRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
	}
}

// orderDirection normalizes a validated order parameter into a SQL
// direction keyword. Anything but "asc" sorts descending, the default.
func orderDirection(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}
