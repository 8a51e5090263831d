package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "guilds.db")

	db, err := OpenAndMigrate(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM guilds`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenAndMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "guilds.db")

	db, err := OpenAndMigrate(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenAndMigrate(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenAndMigrate_Memory(t *testing.T) {
	db, err := OpenAndMigrate(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO guilds(id) VALUES ('g1')`)
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM guilds`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenAndMigrate_RequiresPath(t *testing.T) {
	_, err := OpenAndMigrate(context.Background(), "")
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("-- header\nCREATE TABLE a (x INT);\n\n  -- note\nCREATE TABLE b (y INT);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE TABLE b (y INT)"}, got)
}
