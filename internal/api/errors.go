package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-discussion-api/internal/apperrors"
	"github.com/rs/zerolog"
)

// respondError writes a classified error as {"msg": ...} with its
// mapped status. Unclassified storage errors are logged and surfaced as
// opaque 500s.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Msg("Unhandled error")
		c.JSON(status, gin.H{"msg": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"msg": err.Error()})
}
