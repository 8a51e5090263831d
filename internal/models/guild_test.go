package models

import (
	"context"
	"path/filepath"
	"testing"

	"guild-games-go/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *GuildStore {
	t.Helper()
	db, err := database.OpenAndMigrate(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewGuildStore(db)
}

func TestGuildStore_CreateAndExists(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ok, err := s.GuildExists(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.CreateGuild(ctx, "g1"))
	ok, err = s.GuildExists(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, ok)

	// Idempotent.
	require.NoError(t, s.CreateGuild(ctx, "g1"))
	guilds, err := s.ListGuilds(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, guilds, 1)
	assert.Equal(t, "g1", guilds[0].ID)
	assert.False(t, guilds[0].CreatedAt.IsZero())
}

func TestGuildStore_GetGuild(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetGuild(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.CreateGuild(ctx, "g2"))
	g, err := s.GetGuild(ctx, "g2")
	require.NoError(t, err)
	assert.Equal(t, "g2", g.ID)
}

func TestGuildStore_RejectsEmptyID(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.CreateGuild(context.Background(), ""), ErrInvalidGuildID)
}

func TestGuildStore_ListPaging(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.CreateGuild(ctx, id))
	}
	page, err := s.ListGuilds(ctx, 2, 1)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestGuildStore_ClosedDBSurfacesError(t *testing.T) {
	db, err := database.OpenAndMigrate(context.Background(), filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	s := NewGuildStore(db)
	require.NoError(t, db.Close())

	_, err = s.GuildExists(context.Background(), "g1")
	assert.Error(t, err)
	assert.Error(t, s.CreateGuild(context.Background(), "g1"))
}
