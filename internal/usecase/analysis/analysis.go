package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
	"shogi_insight/internal/metrics"
	"shogi_insight/internal/usecase/features"
	"shogi_insight/internal/usecase/recognition"
)

type RecognitionCache interface {
	Get(ctx context.Context, board string) (pattern.Matches, error)
	Set(ctx context.Context, board string, m pattern.Matches) error
}

type AnalysisArchive interface {
	Save(ctx context.Context, a analysis.Analysis) error
	Get(ctx context.Context, id string) (analysis.Analysis, error)
	Recent(ctx context.Context, limit int) ([]analysis.Analysis, error)
}

// MaxBatch bounds the positions accepted by one AnalyzeBatch call.
const MaxBatch = 256

type AnalysisUseCase struct {
	recognizer *recognition.Recognizer
	cache      RecognitionCache
	archive    AnalysisArchive
	metrics    *metrics.Metrics
	log        *zap.SugaredLogger
	now        func() time.Time
}

func NewAnalysisUseCase(
	recognizer *recognition.Recognizer,
	cache RecognitionCache,
	archive AnalysisArchive,
	m *metrics.Metrics,
	log *zap.SugaredLogger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		recognizer: recognizer,
		cache:      cache,
		archive:    archive,
		metrics:    m,
		log:        log,
		now:        time.Now,
	}
}

// Analyze recognizes the position in sfen, consulting the cache first, and
// archives the outcome under a fresh id.
func (u *AnalysisUseCase) Analyze(ctx context.Context, sfen string) (analysis.Analysis, error) {
	pos, err := shogi.ParseSFEN(sfen)
	if err != nil {
		return analysis.Analysis{}, err
	}

	board := pos.Snapshot.BoardSFEN()
	matches, cached := u.lookup(ctx, board)
	if !cached {
		start := time.Now()
		matches = u.recognizer.Recognize(pos.Snapshot)
		u.metrics.ObserveRecognition(time.Since(start), matches.All())
		u.store(ctx, board, matches)
	}

	return u.archiveResult(ctx, pos, board, matches, cached)
}

// AnalyzeBatch recognizes every position concurrently. One invalid position
// rejects the whole batch before any work is done.
func (u *AnalysisUseCase) AnalyzeBatch(ctx context.Context, sfens []string) ([]analysis.Analysis, error) {
	if len(sfens) > MaxBatch {
		return nil, fmt.Errorf("%w: %d positions, limit %d", appErrors.ErrBatchTooLarge, len(sfens), MaxBatch)
	}

	positions := make([]shogi.Position, len(sfens))
	snaps := make([]*shogi.Snapshot, len(sfens))
	for i, s := range sfens {
		pos, err := shogi.ParseSFEN(s)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		positions[i] = pos
		snaps[i] = pos.Snapshot
	}

	start := time.Now()
	results, err := u.recognizer.RecognizeBatch(ctx, snaps)
	if err != nil {
		return nil, err
	}
	perPosition := time.Since(start)
	if len(results) > 0 {
		perPosition /= time.Duration(len(results))
	}

	out := make([]analysis.Analysis, 0, len(results))
	for i, matches := range results {
		u.metrics.ObserveRecognition(perPosition, matches.All())
		board := positions[i].Snapshot.BoardSFEN()
		u.store(ctx, board, matches)

		a, err := u.archiveResult(ctx, positions[i], board, matches, false)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (u *AnalysisUseCase) Get(ctx context.Context, id string) (analysis.Analysis, error) {
	return u.archive.Get(ctx, id)
}

func (u *AnalysisUseCase) Recent(ctx context.Context, limit int) ([]analysis.Analysis, error) {
	return u.archive.Recent(ctx, limit)
}

// Explain breaks one pattern down condition by condition. The side defaults
// to the side to move.
func (u *AnalysisUseCase) Explain(_ context.Context, req analysis.ExplainRequest) (recognition.Evaluation, error) {
	pos, err := shogi.ParseSFEN(req.SFEN)
	if err != nil {
		return recognition.Evaluation{}, err
	}

	side := pos.Turn
	if req.Side != "" {
		if side, err = shogi.ParseSide(req.Side); err != nil {
			return recognition.Evaluation{}, err
		}
	}

	family, err := pattern.ParseFamily(req.Family)
	if err != nil {
		return recognition.Evaluation{}, err
	}
	return u.recognizer.Explain(pos.Snapshot, side, family, req.Pattern)
}

// Patterns describes the registry. An empty family lists both families; a
// non-empty category keeps the definitions whose category contains it.
func (u *AnalysisUseCase) Patterns(family, category string) ([]pattern.Summary, error) {
	reg := u.recognizer.Registry()
	if family == "" && category == "" {
		return reg.Summaries(), nil
	}

	families := pattern.Families[:]
	if family != "" {
		f, err := pattern.ParseFamily(family)
		if err != nil {
			return nil, err
		}
		families = []pattern.Family{f}
	}

	out := []pattern.Summary{}
	for _, f := range families {
		for _, d := range reg.ByCategory(f, category) {
			out = append(out, d.Summary())
		}
	}
	return out, nil
}

func (u *AnalysisUseCase) lookup(ctx context.Context, board string) (pattern.Matches, bool) {
	m, err := u.cache.Get(ctx, board)
	switch {
	case err == nil:
		u.metrics.ObserveCache(metrics.CacheHit)
		return m, true
	case errors.Is(err, appErrors.ErrCacheMiss):
		u.metrics.ObserveCache(metrics.CacheMiss)
	default:
		u.metrics.ObserveCache(metrics.CacheError)
		u.log.Warnw("recognition cache unavailable", "error", err)
	}
	return pattern.Matches{}, false
}

func (u *AnalysisUseCase) store(ctx context.Context, board string, m pattern.Matches) {
	if err := u.cache.Set(ctx, board, m); err != nil {
		u.log.Warnw("failed to cache recognition", "error", err)
	}
}

func (u *AnalysisUseCase) archiveResult(ctx context.Context, pos shogi.Position, board string, m pattern.Matches, cached bool) (analysis.Analysis, error) {
	a := analysis.Analysis{
		ID:         uuid.NewString(),
		SFEN:       pos.SFEN(),
		Board:      board,
		Turn:       pos.Turn,
		Formations: m.Formations,
		Strategies: m.Strategies,
		KingSafety: features.KingSafeties(pos.Snapshot),
		Material:   features.Material(pos.Snapshot),
		Cached:     cached,
		CreatedAt:  u.now().UTC(),
	}
	if err := u.archive.Save(ctx, a); err != nil {
		u.log.Errorw("failed to archive analysis", "id", a.ID, "error", err)
		return analysis.Analysis{}, fmt.Errorf("%w: %v", appErrors.ErrInternal, err)
	}
	return a, nil
}
