package game_test

import (
	"testing"

	"guild-games-go/internal/game"
	"guild-games-go/internal/game/catalog"
	"guild-games-go/internal/game/hangman"
	"guild-games-go/internal/game/maze"
	"guild-games-go/internal/game/sudoku"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	cases := map[string]game.Variant{
		"Sudoku":  game.VariantSudoku,
		"Hangman": game.VariantHangman,
		"Maze":    game.VariantMaze,
	}
	for name, want := range cases {
		got, err := game.ParseVariant(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	// Names are exact keys: no case folding or trimming.
	for _, name := range []string{"Chess", "", "sudoku", "HANGMAN", " Maze"} {
		_, err := game.ParseVariant(name)
		assert.ErrorIs(t, err, game.ErrUnknownVariant, name)
	}
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "Sudoku", game.VariantSudoku.String())
	assert.Equal(t, "Unknown", game.Variant(0).String())
	assert.False(t, game.Variant(0).Valid())
	assert.True(t, game.VariantMaze.Valid())
}

func TestRegistry_PrepareBuildsWithID(t *testing.T) {
	r := catalog.NewFactories()
	assert.Equal(t, game.Variants, r.Variants())

	build, err := r.Prepare(&sudoku.Config{})
	require.NoError(t, err)
	s := build("00000007")
	assert.Equal(t, "00000007", s.ID())
	assert.Equal(t, game.VariantSudoku, s.Variant())
	assert.False(t, s.CreatedAt().IsZero())
	assert.Equal(t, sudoku.DifficultyMedium, s.Config().(*sudoku.Config).Difficulty)
}

func TestRegistry_PrepareRejects(t *testing.T) {
	r := game.NewRegistry()
	_, err := r.Prepare(nil)
	assert.ErrorIs(t, err, game.ErrUnknownVariant)

	_, err = r.Prepare(&sudoku.Config{})
	assert.ErrorIs(t, err, game.ErrUnknownVariant)

	game.Register(r, game.VariantSudoku, sudoku.New)
	_, err = r.Prepare(&sudoku.Config{Difficulty: "extreme"})
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestRegistry_PrepareRejectsTypedNil(t *testing.T) {
	r := catalog.NewFactories()
	for _, cfg := range []game.Config{(*sudoku.Config)(nil), (*hangman.Config)(nil), (*maze.Config)(nil)} {
		var build func(string) game.Session
		var err error
		assert.NotPanics(t, func() { build, err = r.Prepare(cfg) })
		assert.ErrorIs(t, err, game.ErrInvalidConfig)
		assert.Nil(t, build)
	}
}

// impostorConfig claims to be a Sudoku config without being one.
type impostorConfig struct{}

func (impostorConfig) Variant() game.Variant { return game.VariantSudoku }
func (impostorConfig) Normalize() error      { return nil }

func TestRegistry_PrepareRejectsForeignConfigType(t *testing.T) {
	r := catalog.NewFactories()
	build, err := r.Prepare(impostorConfig{})
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
	assert.Nil(t, build)
}

func TestRegistry_RegisterInvalidPanics(t *testing.T) {
	r := game.NewRegistry()
	assert.Panics(t, func() { game.Register(r, game.Variant(0), sudoku.New) })
	assert.Panics(t, func() { game.Register[*sudoku.Config](r, game.VariantSudoku, nil) })
	// The config type must belong to the variant it is registered under.
	assert.Panics(t, func() { game.Register(r, game.VariantMaze, sudoku.New) })
	assert.Empty(t, r.Variants())
}
