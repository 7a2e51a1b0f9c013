package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/repository"
)

// MockArticleRepository is an in-memory implementation of
// ArticleRepository. Calls counts every storage touch so tests can
// assert that validation failures never reach the repository.
type MockArticleRepository struct {
	mu       sync.Mutex
	Articles map[int64]*models.ArticleWithCount
	ListErr  error
	CountErr error
	IncErr   error
	LastOpts models.ArticleListOptions
	Calls    int
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int64]*models.ArticleWithCount),
	}
}

// Add seeds an article
func (m *MockArticleRepository) Add(a models.ArticleWithCount) {
	m.Articles[a.ArticleID] = &a
}

func (m *MockArticleRepository) List(ctx context.Context, opts models.ArticleListOptions) ([]models.ArticleWithCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastOpts = opts
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	matched := make([]models.ArticleWithCount, 0)
	for _, a := range m.Articles {
		if opts.Author != nil && a.Author != *opts.Author {
			continue
		}
		if opts.Topic != nil && a.Topic != *opts.Topic {
			continue
		}
		matched = append(matched, *a)
	}

	// Only created_at and votes ordering are modeled here
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch opts.SortBy {
		case "votes":
			less = matched[i].Votes < matched[j].Votes
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if opts.Order == "asc" {
			return less
		}
		return !less
	})

	if opts.Offset >= len(matched) {
		return []models.ArticleWithCount{}, nil
	}
	matched = matched[opts.Offset:]
	if opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.IncErr != nil {
		return nil, m.IncErr
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += int(delta)
	copied := a.Article
	return &copied, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	_, ok := m.Articles[id]
	return ok, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return len(m.Articles), nil
}

// MockCommentRepository is an in-memory implementation of
// CommentRepository
type MockCommentRepository struct {
	mu        sync.Mutex
	Comments  map[int64]*models.Comment
	NextID    int64
	InsertErr error
	LastSort  string
	LastOrder string
	Calls     int
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*models.Comment),
		NextID:   1,
	}
}

// Add seeds a comment
func (m *MockCommentRepository) Add(c models.Comment) {
	m.Comments[c.CommentID] = &c
	if c.CommentID >= m.NextID {
		m.NextID = c.CommentID + 1
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64, sortBy, order string) ([]models.CommentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastSort = sortBy
	m.LastOrder = order

	matched := make([]models.CommentSummary, 0)
	for _, c := range m.Comments {
		if c.ArticleID != articleID {
			continue
		}
		matched = append(matched, models.CommentSummary{
			CommentID: c.CommentID,
			Votes:     c.Votes,
			CreatedAt: c.CreatedAt,
			Author:    c.Author,
			Body:      c.Body,
		})
	}
	sort.Slice(matched, func(i, j int) bool {
		less := matched[i].CreatedAt.Before(matched[j].CreatedAt)
		if order == "asc" {
			return less
		}
		return !less
	})
	return matched, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int64, author, body string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}
	c := &models.Comment{
		CommentID: m.NextID,
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now(),
	}
	m.Comments[c.CommentID] = c
	m.NextID++
	copied := *c
	return &copied, nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	c.Votes += int(delta)
	copied := *c
	return &copied, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

// MockTopicRepository is an in-memory implementation of TopicRepository
type MockTopicRepository struct {
	Topics  map[string]models.Topic
	ListErr error
	Calls   int
}

// Verify interface compliance
var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: make(map[string]models.Topic)}
}

func (m *MockTopicRepository) Add(t models.Topic) {
	m.Topics[t.Slug] = t
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	m.Calls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	topics := make([]models.Topic, 0, len(m.Topics))
	for _, t := range m.Topics {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Slug < topics[j].Slug })
	return topics, nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	m.Calls++
	_, ok := m.Topics[slug]
	return ok, nil
}

// MockUserRepository is an in-memory implementation of UserRepository
type MockUserRepository struct {
	Users map[string]models.User
	Calls int
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]models.User)}
}

func (m *MockUserRepository) Add(u models.User) {
	m.Users[u.Username] = u
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.Calls++
	u, ok := m.Users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	m.Calls++
	_, ok := m.Users[username]
	return ok, nil
}
