package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/news-discussion-api/internal/database"
	"github.com/news-discussion-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle retrieves an article's comments, sorted. As with the
// article listing, sort_by passes through unwhitelisted and an unknown
// column surfaces as SQLSTATE 42703.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64, sortBy, order string) ([]models.CommentSummary, error) {
	query := `
		SELECT comment_id, votes, created_at, author, body
		FROM comments
		WHERE article_id = $1
		ORDER BY ` + pq.QuoteIdentifier(sortBy) + " " + orderDirection(order)

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.CommentSummary, 0)
	for rows.Next() {
		var c models.CommentSummary
		if err := rows.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Insert creates a new comment. comment_id, votes and created_at take
// their server-side defaults. A dangling author hits the foreign-key
// constraint and comes back as a pq error for the classifier.
func (r *commentRepo) Insert(ctx context.Context, articleID int64, author, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, articleID, author, body).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// IncrementVotes applies an atomic vote increment and returns the
// updated comment
func (r *commentRepo) IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Comment, error) {
	query := `
		UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Delete removes a comment, reporting whether a row was affected
func (r *commentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
