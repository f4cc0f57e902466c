package database

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MemoryRunsMigrations(t *testing.T) {
	db, err := Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'load_events'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "load_events", name)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")

	db, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening applies no new migrations and keeps the schema.
	db, err = Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM load_events`).Scan(&n))
	assert.Zero(t, n)
}

func TestIsMemory(t *testing.T) {
	assert.True(t, isMemory(":memory:"))
	assert.True(t, isMemory("file:events?mode=memory&cache=shared"))
	assert.False(t, isMemory("events.db"))
}
