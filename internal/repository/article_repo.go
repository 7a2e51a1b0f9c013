package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/news-discussion-api/internal/database"
	"github.com/news-discussion-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `articles.article_id, articles.title, articles.body, articles.votes, articles.topic, articles.author, articles.created_at`

// List retrieves a filtered, sorted, paginated page of articles, each
// with its comment count. The LEFT JOIN keeps articles that have no
// comments, which then count as zero.
func (r *articleRepo) List(ctx context.Context, opts models.ArticleListOptions) ([]models.ArticleWithCount, error) {
	var (
		where []string
		args  []interface{}
	)
	if opts.Author != nil {
		args = append(args, *opts.Author)
		where = append(where, fmt.Sprintf("articles.author = $%d", len(args)))
	}
	if opts.Topic != nil {
		args = append(args, *opts.Topic)
		where = append(where, fmt.Sprintf("articles.topic = $%d", len(args)))
	}

	query := `
		SELECT ` + articleColumns + `, COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += `
		GROUP BY articles.article_id
		ORDER BY ` + articleOrderClause(opts.SortBy, opts.Order)
	args = append(args, opts.Limit)
	query += fmt.Sprintf("\n\t\tLIMIT $%d", len(args))
	args = append(args, opts.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]models.ArticleWithCount, 0)
	for rows.Next() {
		var a models.ArticleWithCount
		err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Body, &a.Votes, &a.Topic, &a.Author,
			&a.CreatedAt, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetByID retrieves a single article with its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	query := `
		SELECT ` + articleColumns + `, COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var a models.ArticleWithCount
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ArticleID, &a.Title, &a.Body, &a.Votes, &a.Topic, &a.Author,
		&a.CreatedAt, &a.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// IncrementVotes applies an atomic vote increment and returns the
// updated row. The addition happens in the UPDATE itself so concurrent
// increments never lose updates.
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, body, votes, topic, author, created_at
	`

	var a models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&a.ArticleID, &a.Title, &a.Body, &a.Votes, &a.Topic, &a.Author, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// articleOrderClause qualifies the sort column to the articles table
// and quotes it. The column is deliberately not checked against a
// whitelist: an unknown column is rejected by Postgres (SQLSTATE 42703)
// and classified upstream as an invalid query.
func articleOrderClause(sortBy, order string) string {
	return "articles." + pq.QuoteIdentifier(sortBy) + " " + orderDirection(order)
}
