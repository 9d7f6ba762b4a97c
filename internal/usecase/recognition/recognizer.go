// Package recognition scores board snapshots against the pattern registry.
//
// For each side the snapshot is viewed from that side's frame, every
// formation is evaluated first and then every strategy, so strategies can
// depend on the formations matched in the same call.
package recognition

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	"shogi_insight/internal/geometry"
	"shogi_insight/internal/registry"
)

// Result lists the matches of one snapshot in registry order, first side
// before second side within each family.
type Result = pattern.Matches

// Recognizer is safe for concurrent use: it holds nothing but the read-only
// registry.
type Recognizer struct {
	registry    *registry.Registry
	log         *zap.SugaredLogger
	workerLimit int
}

// NewRecognizer returns a recognizer over reg. workerLimit bounds
// RecognizeBatch; zero or less means GOMAXPROCS.
func NewRecognizer(reg *registry.Registry, log *zap.SugaredLogger, workerLimit int) *Recognizer {
	if workerLimit <= 0 {
		workerLimit = runtime.GOMAXPROCS(0)
	}
	return &Recognizer{registry: reg, log: log, workerLimit: workerLimit}
}

func (r *Recognizer) Registry() *registry.Registry { return r.registry }

func (r *Recognizer) Recognize(snap *shogi.Snapshot) Result {
	var res Result
	for _, side := range shogi.Sides {
		part := r.RecognizeSide(snap, side)
		res.Formations = append(res.Formations, part.Formations...)
		res.Strategies = append(res.Strategies, part.Strategies...)
	}
	return res
}

func (r *Recognizer) RecognizeSide(snap *shogi.Snapshot, side shogi.Side) Result {
	view := geometry.Perspective(snap, side)

	var res Result
	castles := castleSet{}
	for _, def := range r.registry.Formations() {
		if ev := r.evaluate(def, view, side, nil); ev.Matched {
			res.Formations = append(res.Formations, ev.Result())
			castles[def.Name()] = struct{}{}
		}
	}
	for _, def := range r.registry.Strategies() {
		if ev := r.evaluate(def, view, side, castles); ev.Matched {
			res.Strategies = append(res.Strategies, ev.Result())
		}
	}
	return res
}

// Explain returns the condition-by-condition breakdown of one definition for
// side, whether or not it matched.
func (r *Recognizer) Explain(snap *shogi.Snapshot, side shogi.Side, family pattern.Family, name string) (Evaluation, error) {
	def, err := r.registry.Lookup(family, name)
	if err != nil {
		return Evaluation{}, err
	}

	view := geometry.Perspective(snap, side)
	var castles castleSet
	if family == pattern.FamilyStrategy {
		castles = castleSet{}
		for _, f := range r.registry.Formations() {
			if r.evaluate(f, view, side, nil).Matched {
				castles[f.Name()] = struct{}{}
			}
		}
	}
	return r.evaluate(def, view, side, castles), nil
}

// RecognizeBatch recognizes independent snapshots concurrently. Results keep
// the input order. Cancelling ctx stops snapshots that have not started.
func (r *Recognizer) RecognizeBatch(ctx context.Context, snaps []*shogi.Snapshot) ([]Result, error) {
	results := make([]Result, len(snaps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workerLimit)
	for i, snap := range snaps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.Recognize(snap)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
