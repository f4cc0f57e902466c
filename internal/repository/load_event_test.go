package repository

import (
	"context"
	"testing"
	"time"

	"progress-tracker/internal/database"
	"progress-tracker/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *LoadEventRepository {
	t.Helper()
	db, err := database.Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewLoadEventRepository(db, zerolog.Nop())
}

func TestLoadEventRepository_RecordAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, domain.LoadEvent{
		Source:      "data.json",
		Status:      domain.LoadStatusOK,
		RecordCount: 42,
		Duration:    1500 * time.Millisecond,
		LoadedAt:    base,
	}))
	require.NoError(t, repo.Record(ctx, domain.LoadEvent{
		Source:   "https://example.com/data.json",
		Status:   domain.LoadStatusError,
		Error:    "source error: 500",
		Duration: 20 * time.Millisecond,
		LoadedAt: base.Add(time.Minute),
	}))

	events, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	latest := events[0]
	assert.NotEmpty(t, latest.ID)
	assert.Equal(t, domain.LoadStatusError, latest.Status)
	assert.Equal(t, "source error: 500", latest.Error)
	assert.Equal(t, 20*time.Millisecond, latest.Duration)
	assert.True(t, latest.LoadedAt.Equal(base.Add(time.Minute)))

	first := events[1]
	assert.Equal(t, "data.json", first.Source)
	assert.Equal(t, 42, first.RecordCount)
	assert.Equal(t, 1500*time.Millisecond, first.Duration)
	assert.NotEqual(t, latest.ID, first.ID)
}

func TestLoadEventRepository_ListLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, domain.LoadEvent{Source: "data.json", Status: domain.LoadStatusOK}))
	}

	events, err := repo.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestLoadEventRepository_KeepsExplicitID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, domain.LoadEvent{ID: "fixed-id", Source: "data.json", Status: domain.LoadStatusOK}))

	events, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "fixed-id", events[0].ID)
}

func TestLoadEventRepository_EmptyList(t *testing.T) {
	events, err := newTestRepo(t).List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
