package service

import (
	"context"

	"github.com/news-discussion-api/internal/apperrors"
	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/repository"
	"github.com/news-discussion-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) CommentService {
	return &commentService{
		comments: repos.Comment,
		articles: repos.Article,
		log:      log.With().Str("service", "comments").Logger(),
	}
}

// ListByArticle returns an article's comments, newest first by default.
// The article itself must exist; an empty comment list is not an error.
func (s *commentService) ListByArticle(ctx context.Context, articleID string, query models.CommentQuery) ([]models.CommentSummary, error) {
	id, ok := validation.ParseID(articleID)
	if !ok {
		return nil, apperrors.InvalidID("Invalid article id")
	}
	if !validation.IsValidSortOrder(query.Order) {
		return nil, apperrors.InvalidQuery("Invalid order query")
	}

	exists, err := s.articles.Exists(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if !exists {
		return nil, apperrors.NotFound("Article not found")
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = defaultSortColumn
	}

	comments, err := s.comments.ListByArticle(ctx, id, sortBy, query.Order)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	return comments, nil
}

// Create inserts a comment on an article. The article is checked up
// front so a bad article id is a deterministic 404; the author is not
// pre-validated and an unknown username surfaces from the foreign-key
// constraint as a referential violation (422).
func (s *commentService) Create(ctx context.Context, articleID string, input models.NewComment) (*models.Comment, error) {
	if input.Body == "" {
		return nil, apperrors.InvalidComment("You can't post an empty comment!")
	}
	if input.Username == "" {
		return nil, apperrors.InvalidComment("You can't post a comment without a username!")
	}
	id, ok := validation.ParseID(articleID)
	if !ok {
		return nil, apperrors.InvalidID("Invalid article id")
	}

	exists, err := s.articles.Exists(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if !exists {
		return nil, apperrors.NotFound("Article not found")
	}

	comment, err := s.comments.Insert(ctx, id, input.Username, input.Body)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	s.log.Debug().Int64("article_id", id).Str("author", input.Username).Msg("Comment created")
	return comment, nil
}

// IncrementVotes applies a vote delta atomically to a comment. Unlike
// article votes, a missing inc_votes is an error here, not a no-op.
func (s *commentService) IncrementVotes(ctx context.Context, commentID string, incVotes any) (*models.Comment, error) {
	delta, ok := validation.VoteDelta(incVotes)
	if !ok {
		return nil, apperrors.InvalidVoteDelta("Invalid body parameter inc_votes")
	}
	id, ok := validation.ParseID(commentID)
	if !ok {
		return nil, apperrors.InvalidID("Invalid comment_id")
	}

	comment, err := s.comments.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if comment == nil {
		return nil, apperrors.NotFound("Comment not found")
	}
	return comment, nil
}

// Delete removes a comment. Zero affected rows is a 404.
func (s *commentService) Delete(ctx context.Context, commentID string) error {
	id, ok := validation.ParseID(commentID)
	if !ok {
		return apperrors.InvalidID("Invalid comment_id")
	}

	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return apperrors.Classify(err)
	}
	if !deleted {
		return apperrors.NotFound("Comment not found")
	}
	return nil
}
