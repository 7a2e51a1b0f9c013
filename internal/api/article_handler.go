package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "articles").Logger(),
	}
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	query := models.ArticleQuery{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Page:   c.Query("page"),
		Limit:  c.Query("limit"),
	}
	// GetQuery keeps "filter absent" distinct from "filter empty"
	if author, ok := c.GetQuery("author"); ok {
		query.Author = &author
	}
	if topic, ok := c.GetQuery("topic"); ok {
		query.Topic = &topic
	}

	list, err := h.services.Article.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.GetByID(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchArticleVotes(c *gin.Context) {
	var patch models.VotePatch
	if err := c.ShouldBindJSON(&patch); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	article, err := h.services.Article.IncrementVotes(c.Request.Context(), c.Param("article_id"), patch.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
