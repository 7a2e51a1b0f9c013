package service

import (
	"context"

	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the core article operations. Identifiers and
// vote deltas arrive as raw request values; every operation validates
// before touching storage and returns classified errors.
type ArticleService interface {
	List(ctx context.Context, query models.ArticleQuery) (*models.ArticleList, error)
	GetByID(ctx context.Context, articleID string) (*models.ArticleWithCount, error)
	IncrementVotes(ctx context.Context, articleID string, incVotes any) (*models.Article, error)
}

// CommentService defines the core comment operations
type CommentService interface {
	ListByArticle(ctx context.Context, articleID string, query models.CommentQuery) ([]models.CommentSummary, error)
	Create(ctx context.Context, articleID string, input models.NewComment) (*models.Comment, error)
	IncrementVotes(ctx context.Context, commentID string, incVotes any) (*models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

// TopicService defines topic lookups
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserService defines user lookups
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Topic   TopicService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos, log),
		Comment: newCommentService(repos, log),
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User, log),
	}
}
