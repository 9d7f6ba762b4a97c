package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
	"shogi_insight/internal/metrics"
	"shogi_insight/internal/registry"
	repo "shogi_insight/internal/repository"
	"shogi_insight/internal/usecase/recognition"
)

type failingArchive struct{ *repo.MemoryAnalysisArchive }

func (failingArchive) Save(context.Context, analysis.Analysis) error {
	return errors.New("disk full")
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (pattern.Matches, error) {
	return pattern.Matches{}, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, pattern.Matches) error {
	return errors.New("connection refused")
}

func newUseCase(t *testing.T, cache RecognitionCache, archive AnalysisArchive) (*AnalysisUseCase, *metrics.Metrics) {
	t.Helper()
	log := zap.NewNop().Sugar()
	m := metrics.New(prometheus.NewRegistry())
	rec := recognition.NewRecognizer(registry.Default(), log, 2)
	return NewAnalysisUseCase(rec, cache, archive, m, log), m
}

func TestAnalyzeCachesByBoard(t *testing.T) {
	ctx := context.Background()
	archive := repo.NewMemoryAnalysisArchive(0)
	u, m := newUseCase(t, repo.NewMemoryRecognitionCache(time.Minute, 0), archive)

	first, err := u.Analyze(ctx, shogi.StartSFEN)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, shogi.First, first.Turn)
	assert.NotEmpty(t, first.Strategies)
	require.Len(t, first.KingSafety, 2)
	assert.Equal(t, 92, first.KingSafety[0].SafetyScore)
	assert.Equal(t, "駒の損得なし", first.Material.Description)

	// same board, different move number
	second, err := u.Analyze(ctx, "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 7")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Matches(), second.Matches())
	assert.Equal(t, first.KingSafety, second.KingSafety)
	assert.Equal(t, first.Material, second.Material)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(metrics.CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(metrics.CacheMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Recognitions.WithLabelValues("engine")))

	stored, err := u.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.SFEN, stored.SFEN)
}

func TestAnalyzeRejectsBadSFEN(t *testing.T) {
	u, _ := newUseCase(t, repo.NewMemoryRecognitionCache(0, 0), repo.NewMemoryAnalysisArchive(0))
	_, err := u.Analyze(context.Background(), "not a position")
	assert.ErrorIs(t, err, appErrors.ErrInvalidSFEN)
}

func TestAnalyzeSurvivesBrokenCache(t *testing.T) {
	u, m := newUseCase(t, brokenCache{}, repo.NewMemoryAnalysisArchive(0))

	a, err := u.Analyze(context.Background(), shogi.StartSFEN)
	require.NoError(t, err)
	assert.False(t, a.Cached)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(metrics.CacheError)))
}

func TestAnalyzeArchiveFailure(t *testing.T) {
	u, _ := newUseCase(t, repo.NewMemoryRecognitionCache(0, 0), failingArchive{repo.NewMemoryAnalysisArchive(0)})
	_, err := u.Analyze(context.Background(), shogi.StartSFEN)
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}

func TestAnalyzeBatch(t *testing.T) {
	ctx := context.Background()
	u, _ := newUseCase(t, repo.NewMemoryRecognitionCache(0, 0), repo.NewMemoryAnalysisArchive(0))

	out, err := u.AnalyzeBatch(ctx, []string{shogi.StartSFEN, "4k4/9/9/9/9/9/9/9/4K4 b - 1"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.NotEmpty(t, out[0].Strategies)
	assert.Empty(t, out[1].Formations)
	assert.Zero(t, out[1].Material.SenteScore)
	require.Len(t, out[1].KingSafety, 2)
	assert.Equal(t, "5九", out[1].KingSafety[0].KingSquare.String())
	assert.Zero(t, out[1].KingSafety[1].GoldCount)

	_, err = u.AnalyzeBatch(ctx, []string{shogi.StartSFEN, "bogus"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidSFEN)
	assert.Contains(t, err.Error(), "position 1")

	_, err = u.AnalyzeBatch(ctx, make([]string, MaxBatch+1))
	assert.ErrorIs(t, err, appErrors.ErrBatchTooLarge)
}

func TestExplain(t *testing.T) {
	u, _ := newUseCase(t, repo.NewMemoryRecognitionCache(0, 0), repo.NewMemoryAnalysisArchive(0))
	ctx := context.Background()

	ev, err := u.Explain(ctx, analysis.ExplainRequest{SFEN: shogi.StartSFEN, Family: "strategy", Pattern: "居飛車"})
	require.NoError(t, err)
	assert.Equal(t, shogi.First, ev.Side)
	assert.True(t, ev.Matched)

	ev, err = u.Explain(ctx, analysis.ExplainRequest{SFEN: shogi.StartSFEN, Side: "gote", Family: "strategy", Pattern: "居飛車"})
	require.NoError(t, err)
	assert.Equal(t, shogi.Second, ev.Side)

	_, err = u.Explain(ctx, analysis.ExplainRequest{SFEN: shogi.StartSFEN, Family: "openings", Pattern: "居飛車"})
	assert.ErrorIs(t, err, appErrors.ErrUnknownFamily)

	_, err = u.Explain(ctx, analysis.ExplainRequest{SFEN: shogi.StartSFEN, Side: "north", Family: "strategy", Pattern: "居飛車"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidSide)

	_, err = u.Explain(ctx, analysis.ExplainRequest{SFEN: shogi.StartSFEN, Family: "formation", Pattern: "居飛車"})
	assert.ErrorIs(t, err, appErrors.ErrPatternNotFound)
}

func TestPatterns(t *testing.T) {
	u, _ := newUseCase(t, repo.NewMemoryRecognitionCache(0, 0), repo.NewMemoryAnalysisArchive(0))

	all, err := u.Patterns("", "")
	require.NoError(t, err)
	assert.Len(t, all, 79)

	castles, err := u.Patterns("formation", "振り飛車")
	require.NoError(t, err)
	assert.Len(t, castles, 15)
	for _, s := range castles {
		assert.Equal(t, pattern.FamilyFormation, s.Family)
	}

	surprise, err := u.Patterns("", "奇襲")
	require.NoError(t, err)
	require.Len(t, surprise, 1)
	assert.Equal(t, pattern.FamilyStrategy, surprise[0].Family)

	_, err = u.Patterns("opening", "")
	assert.ErrorIs(t, err, appErrors.ErrUnknownFamily)
}
