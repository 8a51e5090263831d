package sudoku

import (
	"fmt"
	"strings"

	"guild-games-go/internal/game"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Config struct {
	Difficulty string `json:"difficulty,omitempty"`
}

func (c *Config) Variant() game.Variant { return game.VariantSudoku }

func (c *Config) Normalize() error {
	if c == nil {
		return fmt.Errorf("%w: nil sudoku config", game.ErrInvalidConfig)
	}
	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	switch c.Difficulty {
	case "":
		c.Difficulty = DifficultyMedium
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("%w: sudoku difficulty %q", game.ErrInvalidConfig, c.Difficulty)
	}
	return nil
}

// Game is a Sudoku session. Board generation lives with the rule engine.
type Game struct {
	game.Base
	cfg Config
}

func New(id string, cfg *Config) game.Session {
	return &Game{Base: game.NewBase(id), cfg: *cfg}
}

func (g *Game) Variant() game.Variant { return game.VariantSudoku }

// Config returns a copy of the normalized config the session was built from.
func (g *Game) Config() game.Config {
	c := g.cfg
	return &c
}

func (g *Game) Difficulty() string { return g.cfg.Difficulty }
