package recognition

import (
	"fmt"

	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
	"shogi_insight/internal/geometry"
)

// distancePenalty is the score lost per unit of rounded distance.
const distancePenalty = 0.1

// assignment tracks the pieces already won by earlier distance-scored
// conditions. It lives for one (definition, side) pass only.
type assignment struct {
	view     *shogi.Snapshot
	consumed [shogi.NumSquares]bool
}

func newAssignment(view *shogi.Snapshot) *assignment {
	return &assignment{view: view}
}

func (a *assignment) candidates(side shogi.Side, kind shogi.PieceKind) []shogi.Square {
	var out []shogi.Square
	for _, sq := range a.view.Squares(side, kind) {
		if !a.consumed[sq] {
			out = append(out, sq)
		}
	}
	return out
}

// resolve picks the winning piece for p and marks it consumed. The winner is
// the unconsumed candidate with the smallest rounded distance to any target;
// ties go to the earlier target, then to the lower square index of the
// evaluated side's own frame. For the second side that is the mirrored index,
// so a position and its mirror image always resolve identically.
func (a *assignment) resolve(p pattern.PieceOnSquares, weight float64) (ConditionScore, error) {
	side := p.Owner.Side()
	cs := ConditionScore{}

	pool := a.candidates(side, p.Piece)
	if len(pool) == 0 {
		if p.Piece == shogi.King && a.view.Count(side, shogi.King) == 0 {
			return cs, fmt.Errorf("%w: no %s for %s", appErrors.ErrMissingPiece, p.Piece, p.Owner)
		}
		return cs, nil
	}

	if p.Strict {
		for _, target := range p.Squares {
			for _, c := range pool {
				if c == target {
					a.consumed[c] = true
					return a.won(cs, c, 0, weight), nil
				}
			}
		}
		return cs, nil
	}

	best, bestDist := shogi.Square(-1), 0.0
	for _, target := range p.Squares {
		for _, c := range pool {
			d := geometry.ScoringDistance(c, target)
			if best < 0 || d < bestDist {
				best, bestDist = c, d
			}
		}
	}
	a.consumed[best] = true
	return a.won(cs, best, bestDist, max(0, weight-bestDist*distancePenalty)), nil
}

func (a *assignment) won(cs ConditionScore, sq shogi.Square, dist, score float64) ConditionScore {
	cs.Square = &sq
	cs.Distance = &dist
	cs.Score = score
	cs.Satisfied = score > 0 || dist == 0
	return cs
}
