package mocks

import (
	"context"

	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc           func(ctx context.Context, query models.ArticleQuery) (*models.ArticleList, error)
	GetByIDFunc        func(ctx context.Context, articleID string) (*models.ArticleWithCount, error)
	IncrementVotesFunc func(ctx context.Context, articleID string, incVotes any) (*models.Article, error)
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) List(ctx context.Context, query models.ArticleQuery) (*models.ArticleList, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return &models.ArticleList{Articles: []models.ArticleWithCount{}}, nil
}

func (m *MockArticleService) GetByID(ctx context.Context, articleID string) (*models.ArticleWithCount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, articleID)
	}
	return &models.ArticleWithCount{}, nil
}

func (m *MockArticleService) IncrementVotes(ctx context.Context, articleID string, incVotes any) (*models.Article, error) {
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, articleID, incVotes)
	}
	return &models.Article{}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListByArticleFunc  func(ctx context.Context, articleID string, query models.CommentQuery) ([]models.CommentSummary, error)
	CreateFunc         func(ctx context.Context, articleID string, input models.NewComment) (*models.Comment, error)
	IncrementVotesFunc func(ctx context.Context, commentID string, incVotes any) (*models.Comment, error)
	DeleteFunc         func(ctx context.Context, commentID string) error
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID string, query models.CommentQuery) ([]models.CommentSummary, error) {
	if m.ListByArticleFunc != nil {
		return m.ListByArticleFunc(ctx, articleID, query)
	}
	return []models.CommentSummary{}, nil
}

func (m *MockCommentService) Create(ctx context.Context, articleID string, input models.NewComment) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, articleID, input)
	}
	return &models.Comment{}, nil
}

func (m *MockCommentService) IncrementVotes(ctx context.Context, commentID string, incVotes any) (*models.Comment, error) {
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, commentID, incVotes)
	}
	return &models.Comment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, commentID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	ListFunc func(ctx context.Context) ([]models.Topic, error)
}

// Verify interface compliance
var _ service.TopicService = (*MockTopicService)(nil)

func (m *MockTopicService) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Topic{}, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
}

// Verify interface compliance
var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return &models.User{}, nil
}
