package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/news-discussion-api/internal/apperrors"
	"github.com/news-discussion-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArticles_InvalidLimit(t *testing.T) {
	svcs, repos := setupServices()

	_, err := svcs.Article.List(context.Background(), models.ArticleQuery{Limit: "lots"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidQuery, apperrors.KindOf(err))
	assert.Equal(t, "Invalid limit query", err.Error())
	assert.Zero(t, repos.articles.Calls, "validation failures must not reach storage")
}

func TestListArticles_InvalidOrder(t *testing.T) {
	svcs, repos := setupServices()

	_, err := svcs.Article.List(context.Background(), models.ArticleQuery{Order: "sideways"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidQuery, apperrors.KindOf(err))
	assert.Equal(t, "Invalid order query", err.Error())
	assert.Zero(t, repos.articles.Calls)
}

func TestListArticles_UnknownTopic(t *testing.T) {
	svcs, repos := setupServices()
	seedArticle(repos, 1, "butter_bridge", "coding", 0, time.Now())

	// The topic does not exist, so this is a 404 even though no article
	// would have matched anyway
	_, err := svcs.Article.List(context.Background(), models.ArticleQuery{Topic: strPtr("bananas")})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Topic not found", err.Error())
}

func TestListArticles_UnknownAuthor(t *testing.T) {
	svcs, _ := setupServices()

	_, err := svcs.Article.List(context.Background(), models.ArticleQuery{Author: strPtr("nobody")})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "User not found", err.Error())
}

func TestListArticles_ExistingFilterNoMatches(t *testing.T) {
	svcs, repos := setupServices()
	seedArticle(repos, 1, "butter_bridge", "coding", 0, time.Now())
	seedArticle(repos, 2, "butter_bridge", "coding", 0, time.Now())
	seedArticle(repos, 3, "icellusedkars", "cooking", 0, time.Now())

	// Topic exists but has no articles: empty list, not an error, and
	// total_count stays the unfiltered table count
	repos.topics.Add(models.Topic{Slug: "gardening"})
	list, err := svcs.Article.List(context.Background(), models.ArticleQuery{Topic: strPtr("gardening")})
	require.NoError(t, err)
	assert.Empty(t, list.Articles)
	assert.Equal(t, 3, list.TotalCount)
}

func TestListArticles_DefaultSortIsCreatedAtDesc(t *testing.T) {
	svcs, repos := setupServices()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedArticle(repos, 1, "butter_bridge", "coding", 0, base)
	seedArticle(repos, 2, "butter_bridge", "coding", 0, base.Add(2*time.Hour))
	seedArticle(repos, 3, "butter_bridge", "coding", 0, base.Add(time.Hour))

	list, err := svcs.Article.List(context.Background(), models.ArticleQuery{})
	require.NoError(t, err)
	require.Len(t, list.Articles, 3)
	assert.Equal(t, int64(2), list.Articles[0].ArticleID)
	assert.Equal(t, int64(3), list.Articles[1].ArticleID)
	assert.Equal(t, int64(1), list.Articles[2].ArticleID)

	assert.Equal(t, "created_at", repos.articles.LastOpts.SortBy)
	assert.Equal(t, 10, repos.articles.LastOpts.Limit)
	assert.Equal(t, 0, repos.articles.LastOpts.Offset)
}

func TestListArticles_Pagination(t *testing.T) {
	svcs, repos := setupServices()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 25; i++ {
		seedArticle(repos, int64(i), "butter_bridge", "coding", 0, base.Add(time.Duration(i)*time.Minute))
	}

	list, err := svcs.Article.List(context.Background(), models.ArticleQuery{Page: "3", Limit: "10"})
	require.NoError(t, err)
	assert.Len(t, list.Articles, 5)
	assert.Equal(t, 25, list.TotalCount)
	assert.Equal(t, 20, repos.articles.LastOpts.Offset)
}

func TestListArticles_StorageErrorClassified(t *testing.T) {
	svcs, repos := setupServices()
	repos.articles.ListErr = &pq.Error{Code: "42703"}

	// An unknown sort column is rejected by the storage layer and
	// re-tagged as an invalid query
	_, err := svcs.Article.List(context.Background(), models.ArticleQuery{SortBy: "bananas"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidQuery, apperrors.KindOf(err))
	assert.Equal(t, "Invalid query parameter", err.Error())
}

func TestGetArticleByID_InvalidID(t *testing.T) {
	svcs, repos := setupServices()

	_, err := svcs.Article.GetByID(context.Background(), "not-an-id")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidID, apperrors.KindOf(err))
	assert.Equal(t, "Invalid article id", err.Error())
	assert.Zero(t, repos.articles.Calls)
}

func TestGetArticleByID_NotFound(t *testing.T) {
	svcs, _ := setupServices()

	_, err := svcs.Article.GetByID(context.Background(), "999")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Article not found", err.Error())
}

func TestGetArticleByID_ZeroComments(t *testing.T) {
	svcs, repos := setupServices()
	seedArticle(repos, 1, "butter_bridge", "coding", 0, time.Now())

	article, err := svcs.Article.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), article.ArticleID)
	assert.Equal(t, 0, article.CommentCount)
}

func TestIncrementArticleVotes(t *testing.T) {
	svcs, repos := setupServices()
	seedArticle(repos, 1, "butter_bridge", "coding", 100, time.Now())

	article, err := svcs.Article.IncrementVotes(context.Background(), "1", float64(5))
	require.NoError(t, err)
	assert.Equal(t, 105, article.Votes)

	article, err = svcs.Article.IncrementVotes(context.Background(), "1", float64(-10))
	require.NoError(t, err)
	assert.Equal(t, 95, article.Votes)
}

func TestIncrementArticleVotes_MissingDeltaIsNoOp(t *testing.T) {
	svcs, repos := setupServices()
	seedArticle(repos, 1, "butter_bridge", "coding", 100, time.Now())

	article, err := svcs.Article.IncrementVotes(context.Background(), "1", nil)
	require.NoError(t, err)
	assert.Equal(t, 100, article.Votes)
}

func TestIncrementArticleVotes_BadDelta(t *testing.T) {
	svcs, repos := setupServices()
	seedArticle(repos, 1, "butter_bridge", "coding", 100, time.Now())
	repos.articles.Calls = 0

	_, err := svcs.Article.IncrementVotes(context.Background(), "1", "cat")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidVoteDelta, apperrors.KindOf(err))
	assert.Equal(t, "inc_votes must be a number", err.Error())
	assert.Zero(t, repos.articles.Calls)
}

func TestIncrementArticleVotes_NotFound(t *testing.T) {
	svcs, _ := setupServices()

	_, err := svcs.Article.IncrementVotes(context.Background(), "999", float64(1))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Article not found", err.Error())
}

func TestIncrementArticleVotes_Concurrent(t *testing.T) {
	svcs, repos := setupServices()
	seedArticle(repos, 1, "butter_bridge", "coding", 0, time.Now())

	// N concurrent +1 increments must converge to exactly +N
	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svcs.Article.IncrementVotes(context.Background(), "1", float64(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	article, err := svcs.Article.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, n, article.Votes)
}
