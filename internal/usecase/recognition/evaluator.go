package recognition

import (
	"fmt"
	"math"
	"slices"

	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
	"shogi_insight/internal/geometry"
)

// thresholdTolerance absorbs float error so that a confidence equal to
// min_confidence on paper is accepted.
const thresholdTolerance = 1e-9

// ConditionScore is the outcome of one condition. Square and Distance are
// set for distance-scored conditions that won a piece; Square is in the
// board's own frame.
type ConditionScore struct {
	Index     int                   `json:"index"`
	Kind      pattern.ConditionKind `json:"kind"`
	Condition string                `json:"condition"`
	Required  bool                  `json:"required"`
	Weight    float64               `json:"weight"`
	Score     float64               `json:"score"`
	Satisfied bool                  `json:"satisfied"`
	Square    *shogi.Square         `json:"square,omitempty"`
	Distance  *float64              `json:"distance,omitempty"`
	Note      string                `json:"note,omitempty"`
}

// Evaluation is the full breakdown of one definition against one side.
type Evaluation struct {
	Pattern       string           `json:"pattern"`
	Family        pattern.Family   `json:"family"`
	Category      string           `json:"category"`
	Side          shogi.Side       `json:"side"`
	Confidence    float64          `json:"confidence"`
	MinConfidence float64          `json:"min_confidence"`
	Matched       bool             `json:"matched"`
	Disqualified  bool             `json:"disqualified"`
	Scores        []ConditionScore `json:"scores"`

	raw float64
}

// Result converts a matched evaluation into its reported form.
func (e Evaluation) Result() pattern.MatchResult {
	return pattern.MatchResult{
		Pattern:    e.Pattern,
		Family:     e.Family,
		Category:   e.Category,
		Side:       e.Side,
		Confidence: e.Confidence,
	}
}

// castleSet holds the formation names one side matched earlier in the call.
type castleSet map[string]struct{}

func (c castleSet) any(names []string) bool {
	for _, n := range names {
		if _, ok := c[n]; ok {
			return true
		}
	}
	return false
}

// evaluate scores def against view, the snapshot as seen from side, in
// which side plays first.
func (r *Recognizer) evaluate(def pattern.Definition, view *shogi.Snapshot, side shogi.Side, castles castleSet) Evaluation {
	ev := Evaluation{
		Pattern:       def.Name(),
		Family:        def.Family(),
		Category:      def.Category(),
		Side:          side,
		MinConfidence: def.MinConfidence(),
		Scores:        make([]ConditionScore, 0, def.Len()),
	}

	pieces := newAssignment(view)
	for i := range def.Len() {
		c := def.Condition(i)
		cs, err := evaluateCondition(c, view, pieces, castles)
		if err != nil {
			// a missing piece is a legal board state
			r.log.Debugw("condition scored zero", "pattern", def.Name(), "side", side, "condition", i, "error", err)
			cs = ConditionScore{Note: err.Error()}
		}
		cs.Index = i
		cs.Kind = c.Kind()
		cs.Condition = c.String()
		cs.Required = c.Required
		cs.Weight = c.Weight
		if cs.Square != nil && side == shogi.Second {
			sq := geometry.Mirror(*cs.Square)
			cs.Square = &sq
		}
		ev.Scores = append(ev.Scores, cs)
	}

	aggregate(&ev, def.TotalWeight())
	return ev
}

func evaluateCondition(c pattern.Condition, view *shogi.Snapshot, pieces *assignment, castles castleSet) (ConditionScore, error) {
	switch p := c.Params.(type) {
	case pattern.PieceOnSquares:
		return pieces.resolve(p, c.Weight)

	case pattern.PieceOnFiles:
		side := p.Owner.Side()
		squares := view.Squares(side, p.Piece)
		if len(squares) == 0 && p.Piece == shogi.King {
			return ConditionScore{}, fmt.Errorf("%w: no %s for %s", appErrors.ErrMissingPiece, p.Piece, p.Owner)
		}
		return boolean(slices.ContainsFunc(squares, func(sq shogi.Square) bool {
			return slices.Contains(p.Files, sq.File())
		}), c.Weight), nil

	case pattern.PieceNotMoved:
		if view.Count(shogi.First, p.Piece) == 0 {
			return ConditionScore{}, fmt.Errorf("%w: no %s on board", appErrors.ErrMissingPiece, p.Piece)
		}
		homes := p.Squares
		if len(homes) == 0 {
			homes = shogi.StartingSquares(p.Piece)
		}
		want := shogi.Piece{Kind: p.Piece, Side: shogi.First}
		return boolean(slices.ContainsFunc(homes, func(sq shogi.Square) bool {
			got, ok := view.At(sq)
			return ok && got == want
		}), c.Weight), nil

	case pattern.FileControl:
		return boolean(!slices.ContainsFunc(view.Squares(shogi.Second, p.Piece), func(sq shogi.Square) bool {
			return sq.File() == p.File
		}), c.Weight), nil

	case pattern.CastleMatched:
		return boolean(castles.any(p.Names), c.Weight), nil

	case pattern.PieceInHand:
		return boolean(view.Hand(p.Owner.Side(), p.Piece) >= p.Count, c.Weight), nil

	case pattern.PieceAbsent:
		unwanted := shogi.Piece{Kind: p.Piece, Side: p.Owner.Side()}
		return boolean(!slices.ContainsFunc(p.Squares, func(sq shogi.Square) bool {
			got, ok := view.At(sq)
			return ok && got == unwanted
		}), c.Weight), nil
	}
	return ConditionScore{}, fmt.Errorf("%w: unhandled condition %T", appErrors.ErrInternal, c.Params)
}

func boolean(ok bool, weight float64) ConditionScore {
	if !ok {
		return ConditionScore{}
	}
	return ConditionScore{Score: weight, Satisfied: true}
}

// aggregate fills in confidence and the match decision. A required
// condition that scored exactly zero forces confidence to zero; the
// threshold test still applies to that zero.
func aggregate(ev *Evaluation, totalWeight float64) {
	sum := 0.0
	for _, s := range ev.Scores {
		sum += s.Score
		if s.Required && s.Score == 0 {
			ev.Disqualified = true
		}
	}

	if totalWeight > 0 && !ev.Disqualified {
		ev.raw = sum / totalWeight
	}
	ev.Confidence = round2(ev.raw)
	ev.Matched = ev.raw >= ev.MinConfidence-thresholdTolerance
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
