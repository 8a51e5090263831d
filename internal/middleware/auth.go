package middleware

import (
	"net/http"

	"guild-games-go/internal/auth"
	"guild-games-go/internal/config"

	"github.com/gin-gonic/gin"
)

// ClientKey is the gin context key holding the authenticated client name.
const ClientKey = "client"

func RequireAuth(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := auth.ParseAndValidateToken(token, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ClientKey, claims.Client)
		c.Next()
	}
}
