// Package catalog wires the built-in game variants into a factory table.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"guild-games-go/internal/game"
	"guild-games-go/internal/game/hangman"
	"guild-games-go/internal/game/maze"
	"guild-games-go/internal/game/sudoku"
)

// NewFactories returns a registry with Sudoku, Hangman and Maze registered.
func NewFactories() *game.Registry {
	r := game.NewRegistry()
	game.Register(r, game.VariantSudoku, sudoku.New)
	game.Register(r, game.VariantHangman, hangman.New)
	game.Register(r, game.VariantMaze, maze.New)
	return r
}

// NewConfig returns the zero config for v.
func NewConfig(v game.Variant) (game.Config, error) {
	switch v {
	case game.VariantSudoku:
		return &sudoku.Config{}, nil
	case game.VariantHangman:
		return &hangman.Config{}, nil
	case game.VariantMaze:
		return &maze.Config{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", game.ErrUnknownVariant, v)
	}
}

// DecodeConfig parses raw request args into v's config. Empty or null args
// yield the zero config, which Normalize later fills with defaults.
func DecodeConfig(v game.Variant, raw json.RawMessage) (game.Config, error) {
	cfg, err := NewConfig(v)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return cfg, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s args: %v", game.ErrInvalidConfig, v, err)
	}
	return cfg, nil
}
