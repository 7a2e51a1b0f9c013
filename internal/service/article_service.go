package service

import (
	"context"

	"github.com/news-discussion-api/internal/apperrors"
	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/repository"
	"github.com/news-discussion-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSortColumn = "created_at"
	defaultPageLimit  = 10
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	topics   repository.TopicRepository
	users    repository.UserRepository
	log      zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: repos.Article,
		topics:   repos.Topic,
		users:    repos.User,
		log:      log.With().Str("service", "articles").Logger(),
	}
}

// List returns a filtered, sorted, paginated page of articles with
// comment counts, plus the unfiltered total row count. Validation runs
// in a fixed order: limit, order, then topic/author existence.
func (s *articleService) List(ctx context.Context, query models.ArticleQuery) (*models.ArticleList, error) {
	limit := defaultPageLimit
	if query.Limit != "" {
		n, ok := validation.ParseCount(query.Limit)
		if !ok {
			return nil, apperrors.InvalidQuery("Invalid limit query")
		}
		limit = n
	}
	if !validation.IsValidSortOrder(query.Order) {
		return nil, apperrors.InvalidQuery("Invalid order query")
	}
	if err := s.checkFilters(ctx, query.Topic, query.Author); err != nil {
		return nil, err
	}

	// An unparsable page falls back to the first one
	page := 1
	if query.Page != "" {
		if n, ok := validation.ParseCount(query.Page); ok && n > 0 {
			page = n
		}
	}
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = defaultSortColumn
	}

	opts := models.ArticleListOptions{
		SortBy: sortBy,
		Order:  query.Order,
		Author: query.Author,
		Topic:  query.Topic,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	var (
		articles []models.ArticleWithCount
		total    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.articles.List(gctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.articles.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Debug().Err(err).Str("sort_by", sortBy).Msg("Article listing failed")
		return nil, apperrors.Classify(err)
	}

	return &models.ArticleList{Articles: articles, TotalCount: total}, nil
}

// checkFilters confirms referenced filter values exist before any query
// runs, so filtering by a nonexistent topic or author is a 404 rather
// than an empty list. The checks are independent reads and run
// concurrently; the first failure wins.
func (s *articleService) checkFilters(ctx context.Context, topic, author *string) error {
	if topic == nil && author == nil {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if topic != nil {
		slug := *topic
		g.Go(func() error {
			exists, err := s.topics.Exists(gctx, slug)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NotFound("Topic not found")
			}
			return nil
		})
	}
	if author != nil {
		username := *author
		g.Go(func() error {
			exists, err := s.users.Exists(gctx, username)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NotFound("User not found")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return apperrors.Classify(err)
	}
	return nil
}

// GetByID returns a single article with its comment count
func (s *articleService) GetByID(ctx context.Context, articleID string) (*models.ArticleWithCount, error) {
	id, ok := validation.ParseID(articleID)
	if !ok {
		return nil, apperrors.InvalidID("Invalid article id")
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if article == nil {
		return nil, apperrors.NotFound("Article not found")
	}
	return article, nil
}

// IncrementVotes applies a vote delta atomically at the storage layer
// and returns the updated article. A missing inc_votes counts as zero,
// which still touches the row so a bad id is a 404.
func (s *articleService) IncrementVotes(ctx context.Context, articleID string, incVotes any) (*models.Article, error) {
	id, ok := validation.ParseID(articleID)
	if !ok {
		return nil, apperrors.InvalidID("Invalid article id")
	}

	var delta int64
	if incVotes != nil {
		d, ok := validation.VoteDelta(incVotes)
		if !ok {
			return nil, apperrors.InvalidVoteDelta("inc_votes must be a number")
		}
		delta = d
	}

	article, err := s.articles.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if article == nil {
		return nil, apperrors.NotFound("Article not found")
	}
	return article, nil
}
