package hangman

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"guild-games-go/internal/game"
)

const (
	DefaultMaxMisses = 6
	maxMissesLimit   = 26
)

var defaultWords = []string{
	"guild", "puzzle", "lantern", "harbor", "cipher",
	"meadow", "quartz", "voyage", "thimble", "orchard",
}

type Config struct {
	Word      string `json:"word,omitempty"`
	MaxMisses int    `json:"max_misses,omitempty"`
}

func (c *Config) Variant() game.Variant { return game.VariantHangman }

func (c *Config) Normalize() error {
	if c == nil {
		return fmt.Errorf("%w: nil hangman config", game.ErrInvalidConfig)
	}
	c.Word = strings.ToLower(strings.TrimSpace(c.Word))
	if c.Word == "" {
		c.Word = defaultWords[rand.IntN(len(defaultWords))]
	}
	for _, r := range c.Word {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return fmt.Errorf("%w: hangman word must be ascii letters", game.ErrInvalidConfig)
		}
	}
	if c.MaxMisses == 0 {
		c.MaxMisses = DefaultMaxMisses
	}
	if c.MaxMisses < 1 || c.MaxMisses > maxMissesLimit {
		return fmt.Errorf("%w: hangman max_misses %d out of range", game.ErrInvalidConfig, c.MaxMisses)
	}
	return nil
}

// Game is a Hangman session.
type Game struct {
	game.Base
	cfg Config
}

func New(id string, cfg *Config) game.Session {
	return &Game{Base: game.NewBase(id), cfg: *cfg}
}

func (g *Game) Variant() game.Variant { return game.VariantHangman }

// Config returns a copy of the normalized config the session was built from.
func (g *Game) Config() game.Config {
	c := g.cfg
	return &c
}

// Masked renders the word with every letter hidden, e.g. "_ _ _ _ _".
func (g *Game) Masked() string {
	return strings.TrimSpace(strings.Repeat("_ ", len(g.cfg.Word)))
}
