package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"guild-games-go/internal/auth"
	"guild-games-go/internal/config"
	ws "guild-games-go/pkg/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func newUpgrader(cfg config.Config) websocket.Upgrader {
	allowed := map[string]bool{}
	for _, o := range cfg.WSAllowedOrigins {
		allowed[o] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" {
				// Bots and other non-browser clients send no Origin.
				return true
			}
			if allowed[origin] {
				return true
			}
			return cfg.IsDevelopment() && isLocalhostOrigin(origin)
		},
	}
}

func isLocalhostOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// WebSocketHandler subscribes the caller to session events for ?guild=<id>.
func WebSocketHandler(hubs func() (*ws.Hub, bool), cfg config.Config) gin.HandlerFunc {
	upgrader := newUpgrader(cfg)
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if token == "" && cfg.WSAllowQueryTokens {
			token = strings.TrimSpace(c.Query("token"))
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := auth.ParseAndValidateToken(token, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		guildID := strings.TrimSpace(c.Query("guild"))
		if guildID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "guild is required"})
			return
		}
		hub, ok := hubs()
		if !ok {
			log.Printf("WebSocketHandler: no hub available: caller=%s guild_id=%s", claims.Client, guildID)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "realtime unavailable"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocketHandler upgrade failed: remote=%s origin=%q err=%v",
				c.ClientIP(), c.Request.Header.Get("Origin"), err,
			)
			return
		}

		room := GuildRoom(guildID)
		client := ws.NewClient(conn, hub, room, claims.Client)
		hub.Register(client)

		go client.WritePump()
		go client.ReadPump()

		_ = client.SendDirect("connected", map[string]string{"guild_id": guildID, "room": room})
	}
}
