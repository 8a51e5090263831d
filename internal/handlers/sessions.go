package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"guild-games-go/internal/game"
	"guild-games-go/internal/game/catalog"
	"guild-games-go/internal/session"

	"github.com/gin-gonic/gin"
)

type createSessionRequest struct {
	Variant string          `json:"variant"`
	Args    json.RawMessage `json:"args,omitempty"`
}

func CreateSessionHandler(reg *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		guildID := strings.TrimSpace(c.Param("guildID"))

		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		variant, err := game.ParseVariant(req.Variant)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		cfg, err := catalog.DecodeConfig(variant, req.Args)
		if err != nil {
			writeAPIError(c, err)
			return
		}

		s, err := reg.CreateSession(c.Request.Context(), guildID, cfg)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusCreated, viewSession(guildID, s))
	}
}

func ListSessionsHandler(reg *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		guildID := c.Param("guildID")
		sessions, err := reg.ListSessions(guildID)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		out := make([]sessionView, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, viewSession(guildID, s))
		}
		c.JSON(http.StatusOK, gin.H{"sessions": out})
	}
}

func GetSessionHandler(reg *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		guildID := c.Param("guildID")
		s, ok, err := reg.GetSession(guildID, c.Param("sessionID"))
		if err != nil {
			writeAPIError(c, err)
			return
		}
		if !ok {
			writeAPIError(c, errSessionNotFound)
			return
		}
		c.JSON(http.StatusOK, viewSession(guildID, s))
	}
}

func RemoveSessionHandler(reg *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := reg.RemoveSession(c.Param("guildID"), c.Param("sessionID")); err != nil {
			writeAPIError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListVariantsHandler reports the game variants this server can start.
func ListVariantsHandler(factories *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		names := []string{}
		for _, v := range factories.Variants() {
			names = append(names, v.String())
		}
		c.JSON(http.StatusOK, gin.H{"variants": names})
	}
}
