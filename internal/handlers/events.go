package handlers

import (
	"guild-games-go/internal/game"
	ws "guild-games-go/pkg/websocket"
)

// GuildRoom names the websocket room that receives a guild's session events.
func GuildRoom(guildID string) string { return "guild:" + guildID }

// HubNotifier publishes registry events to the current websocket hub.
type HubNotifier struct {
	hubs func() (*ws.Hub, bool)
}

func NewHubNotifier(hubs func() (*ws.Hub, bool)) *HubNotifier {
	return &HubNotifier{hubs: hubs}
}

func (n *HubNotifier) SessionCreated(guildID string, s game.Session) {
	n.publish(guildID, "session_created", viewSession(guildID, s))
}

func (n *HubNotifier) SessionRemoved(guildID, sessionID string) {
	n.publish(guildID, "session_removed", map[string]string{"guild_id": guildID, "id": sessionID})
}

func (n *HubNotifier) publish(guildID, typ string, payload any) {
	if n == nil || n.hubs == nil {
		return
	}
	hub, ok := n.hubs()
	if !ok {
		return
	}
	hub.Broadcast(GuildRoom(guildID), typ, payload)
}
