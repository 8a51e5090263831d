package handlers

import (
	"time"

	"guild-games-go/internal/game"
	"guild-games-go/internal/game/hangman"
	"guild-games-go/internal/game/maze"
	"guild-games-go/internal/game/sudoku"
)

type sessionView struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	Variant   string    `json:"variant"`
	CreatedAt time.Time `json:"created_at"`
	Details   any       `json:"details,omitempty"`
}

func viewSession(guildID string, s game.Session) sessionView {
	return sessionView{
		ID:        s.ID(),
		GuildID:   guildID,
		Variant:   s.Variant().String(),
		CreatedAt: s.CreatedAt(),
		Details:   publicDetails(s),
	}
}

// publicDetails exposes what players may see; hangman words stay hidden.
func publicDetails(s game.Session) any {
	switch g := s.(type) {
	case *sudoku.Game:
		return map[string]any{"difficulty": g.Difficulty()}
	case *hangman.Game:
		cfg := g.Config().(*hangman.Config)
		return map[string]any{"masked": g.Masked(), "max_misses": cfg.MaxMisses}
	case *maze.Game:
		cfg := g.Config().(*maze.Config)
		return map[string]any{"width": cfg.Width, "height": cfg.Height, "seed": cfg.Seed}
	default:
		return nil
	}
}
