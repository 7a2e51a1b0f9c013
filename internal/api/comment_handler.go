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

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comments").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	query := models.CommentQuery{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}

	comments, err := h.services.Comment.ListByArticle(c.Request.Context(), c.Param("article_id"), query)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) PostComment(c *gin.Context) {
	// An empty or malformed body binds to zero values and falls through
	// to the core's own checks, which own the user-facing messages
	var input models.NewComment
	_ = c.ShouldBindJSON(&input)

	comment, err := h.services.Comment.Create(c.Request.Context(), c.Param("article_id"), input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// PatchCommentVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) PatchCommentVotes(c *gin.Context) {
	var patch models.VotePatch
	if err := c.ShouldBindJSON(&patch); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	comment, err := h.services.Comment.IncrementVotes(c.Request.Context(), c.Param("comment_id"), patch.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), c.Param("comment_id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
