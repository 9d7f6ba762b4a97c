package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
)

func TestMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryRecognitionCache(time.Minute, 0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, err := c.Get(ctx, "board")
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)

	want := pattern.Matches{Strategies: []pattern.MatchResult{{Pattern: "居飛車", Side: shogi.First, Confidence: 0.6}}}
	require.NoError(t, c.Set(ctx, "board", want))

	got, err := c.Get(ctx, "board")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	now = now.Add(2 * time.Minute)
	_, err = c.Get(ctx, "board")
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
}

func TestMemoryArchive(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryAnalysisArchive(0)

	_, err := a.Get(ctx, "missing")
	assert.ErrorIs(t, err, appErrors.ErrAnalysisNotFound)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, a.Save(ctx, analysis.Analysis{ID: id}))
	}

	got, err := a.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)

	recent, err := a.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
}

func TestMemoryCacheSweepsExpired(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryRecognitionCache(time.Nanosecond, 0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	for i := range 1000 {
		now = now.Add(time.Microsecond)
		require.NoError(t, c.Set(ctx, fmt.Sprintf("board-%d", i), pattern.Matches{}))
	}
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCacheEvictsWhenFull(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryRecognitionCache(0, 3)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	for _, board := range []string{"a", "b", "c", "d"} {
		now = now.Add(time.Second)
		require.NoError(t, c.Set(ctx, board, pattern.Matches{}))
	}
	assert.Equal(t, 3, c.Len())

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	_, err = c.Get(ctx, "d")
	assert.NoError(t, err)
}

func TestMemoryArchiveDropsOldest(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryAnalysisArchive(3)

	for i := range 10 {
		require.NoError(t, a.Save(ctx, analysis.Analysis{ID: fmt.Sprint(i)}))
	}
	assert.Equal(t, 3, a.Len())

	_, err := a.Get(ctx, "6")
	assert.ErrorIs(t, err, appErrors.ErrAnalysisNotFound)

	recent, err := a.Recent(ctx, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(recent))
	for _, r := range recent {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"9", "8", "7"}, ids)

	// saving a known id updates it in place
	require.NoError(t, a.Save(ctx, analysis.Analysis{ID: "8", Cached: true}))
	assert.Equal(t, 3, a.Len())
	got, err := a.Get(ctx, "8")
	require.NoError(t, err)
	assert.True(t, got.Cached)
}
