package handlers

import (
	"context"
	"net/http"
	"strconv"

	"guild-games-go/internal/models"
	"guild-games-go/internal/session"

	"github.com/gin-gonic/gin"
)

// GuildReader is the read side of the persistent guild store.
type GuildReader interface {
	GetGuild(ctx context.Context, guildID string) (*models.Guild, error)
	ListGuilds(ctx context.Context, limit, offset int64) ([]models.Guild, error)
}

type guildView struct {
	models.Guild
	ActiveSessions int `json:"active_sessions"`
}

func ListGuildsHandler(guilds GuildReader, reg *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
		offset, _ := strconv.ParseInt(c.Query("offset"), 10, 64)
		list, err := guilds.ListGuilds(c.Request.Context(), limit, offset)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		out := make([]guildView, 0, len(list))
		for _, g := range list {
			out = append(out, guildView{Guild: g, ActiveSessions: reg.SessionCount(g.ID)})
		}
		c.JSON(http.StatusOK, gin.H{"guilds": out})
	}
}

func GetGuildHandler(guilds GuildReader, reg *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := guilds.GetGuild(c.Request.Context(), c.Param("guildID"))
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, guildView{Guild: *g, ActiveSessions: reg.SessionCount(g.ID)})
	}
}
