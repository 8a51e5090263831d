package maze

import (
	"fmt"
	"time"

	"guild-games-go/internal/game"
)

const (
	DefaultSize = 10
	minSize     = 2
	maxSize     = 64
)

type Config struct {
	Width  int   `json:"width,omitempty"`
	Height int   `json:"height,omitempty"`
	Seed   int64 `json:"seed,omitempty"`
}

func (c *Config) Variant() game.Variant { return game.VariantMaze }

func (c *Config) Normalize() error {
	if c == nil {
		return fmt.Errorf("%w: nil maze config", game.ErrInvalidConfig)
	}
	if c.Width == 0 {
		c.Width = DefaultSize
	}
	if c.Height == 0 {
		c.Height = DefaultSize
	}
	if c.Width < minSize || c.Width > maxSize || c.Height < minSize || c.Height > maxSize {
		return fmt.Errorf("%w: maze size %dx%d (allowed %d..%d)", game.ErrInvalidConfig, c.Width, c.Height, minSize, maxSize)
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return nil
}

// Game is a Maze session.
type Game struct {
	game.Base
	cfg Config
}

func New(id string, cfg *Config) game.Session {
	return &Game{Base: game.NewBase(id), cfg: *cfg}
}

func (g *Game) Variant() game.Variant { return game.VariantMaze }

// Config returns a copy of the normalized config the session was built from.
func (g *Game) Config() game.Config {
	c := g.cfg
	return &c
}
