package catalog

import (
	"encoding/json"
	"testing"

	"guild-games-go/internal/game"
	"guild-games-go/internal/game/hangman"
	"guild-games-go/internal/game/maze"
	"guild-games-go/internal/game/sudoku"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig_EmptyArgsGiveDefaults(t *testing.T) {
	for _, raw := range []string{"", "null", "{}", "  "} {
		cfg, err := DecodeConfig(game.VariantMaze, json.RawMessage(raw))
		require.NoError(t, err, "raw=%q", raw)
		require.NoError(t, cfg.Normalize())
		m := cfg.(*maze.Config)
		assert.Equal(t, maze.DefaultSize, m.Width)
		assert.Equal(t, maze.DefaultSize, m.Height)
		assert.NotZero(t, m.Seed)
	}
}

func TestDecodeConfig_Typed(t *testing.T) {
	cfg, err := DecodeConfig(game.VariantHangman, json.RawMessage(`{"word":"Orchard","max_misses":8}`))
	require.NoError(t, err)
	require.NoError(t, cfg.Normalize())
	h := cfg.(*hangman.Config)
	assert.Equal(t, "orchard", h.Word)
	assert.Equal(t, 8, h.MaxMisses)

	cfg, err = DecodeConfig(game.VariantSudoku, json.RawMessage(`{"difficulty":"Hard"}`))
	require.NoError(t, err)
	require.NoError(t, cfg.Normalize())
	assert.Equal(t, sudoku.DifficultyHard, cfg.(*sudoku.Config).Difficulty)
}

func TestDecodeConfig_Rejects(t *testing.T) {
	_, err := DecodeConfig(game.VariantSudoku, json.RawMessage(`{"size":9}`))
	assert.ErrorIs(t, err, game.ErrInvalidConfig)

	_, err = DecodeConfig(game.VariantMaze, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, game.ErrInvalidConfig)

	_, err = DecodeConfig(game.Variant(0), nil)
	assert.ErrorIs(t, err, game.ErrUnknownVariant)
}

func TestVariantNormalizeBounds(t *testing.T) {
	assert.ErrorIs(t, (&maze.Config{Width: 1}).Normalize(), game.ErrInvalidConfig)
	assert.ErrorIs(t, (&maze.Config{Height: 65}).Normalize(), game.ErrInvalidConfig)
	assert.ErrorIs(t, (&hangman.Config{Word: "two words"}).Normalize(), game.ErrInvalidConfig)
	assert.ErrorIs(t, (&hangman.Config{Word: "café"}).Normalize(), game.ErrInvalidConfig)
	assert.ErrorIs(t, (&hangman.Config{Word: "ok", MaxMisses: 27}).Normalize(), game.ErrInvalidConfig)

	h := &hangman.Config{}
	require.NoError(t, h.Normalize())
	assert.NotEmpty(t, h.Word)
	assert.Equal(t, hangman.DefaultMaxMisses, h.MaxMisses)
}

func TestFactoriesBuildEachVariant(t *testing.T) {
	r := NewFactories()
	for _, v := range game.Variants {
		cfg, err := NewConfig(v)
		require.NoError(t, err)
		build, err := r.Prepare(cfg)
		require.NoError(t, err)
		s := build("00000001")
		assert.Equal(t, v, s.Variant())
		assert.Equal(t, v, s.Config().Variant())
	}
}

func TestHangmanMasked(t *testing.T) {
	s := hangman.New("00000000", &hangman.Config{Word: "guild", MaxMisses: 6})
	assert.Equal(t, "_ _ _ _ _", s.(*hangman.Game).Masked())
}
