package handlers

import (
	"errors"
	"log"
	"net/http"

	"guild-games-go/internal/game"
	"guild-games-go/internal/middleware"
	"guild-games-go/internal/models"
	"guild-games-go/internal/session"

	"github.com/gin-gonic/gin"
)

var errSessionNotFound = errors.New("session not found")

func writeAPIError(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	case errors.Is(err, session.ErrUnknownGuild):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown guild"})
	case errors.Is(err, errSessionNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, models.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, game.ErrUnknownVariant):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown game variant"})
	case errors.Is(err, game.ErrInvalidConfig):
		// Config errors carry only the offending field and value.
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrEmptyGuildID):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "guild id is required"})
	case errors.Is(err, session.ErrStoreUnavailable):
		log.Printf("store unavailable: request_id=%s path=%s err=%v", c.GetString(middleware.RequestIDKey), c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "guild store unavailable"})
	default:
		log.Printf("internal error: request_id=%s path=%s err=%v", c.GetString(middleware.RequestIDKey), c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
