package handlers

import (
	"guild-games-go/internal/game"
	"guild-games-go/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(rg *gin.RouterGroup, reg *session.Registry, factories *game.Registry) {
	rg.GET("/variants", ListVariantsHandler(factories))
	rg.POST("/guilds/:guildID/sessions", CreateSessionHandler(reg))
	rg.GET("/guilds/:guildID/sessions", ListSessionsHandler(reg))
	rg.GET("/guilds/:guildID/sessions/:sessionID", GetSessionHandler(reg))
	rg.DELETE("/guilds/:guildID/sessions/:sessionID", RemoveSessionHandler(reg))
}

func RegisterGuildRoutes(rg *gin.RouterGroup, guilds GuildReader, reg *session.Registry) {
	rg.GET("/guilds", ListGuildsHandler(guilds, reg))
	rg.GET("/guilds/:guildID", GetGuildHandler(guilds, reg))
}
