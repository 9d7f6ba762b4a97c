package pattern

import (
	"fmt"
	"strings"

	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
)

// ConditionKind is the closed set of condition vocabularies.
type ConditionKind int8

const (
	KindPieceOnSquares ConditionKind = iota + 1
	KindPieceOnFiles
	KindPieceNotMoved
	KindFileControl
	KindCastleMatched
	KindPieceInHand
	KindPieceAbsent
)

var conditionKindNames = map[ConditionKind]string{
	KindPieceOnSquares: "piece-on-squares",
	KindPieceOnFiles:   "piece-on-files",
	KindPieceNotMoved:  "piece-not-moved",
	KindFileControl:    "file-control",
	KindCastleMatched:  "castle-already-matched",
	KindPieceInHand:    "piece-in-hand",
	KindPieceAbsent:    "piece-absent",
}

func (k ConditionKind) String() string {
	if name, ok := conditionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ConditionKind(%d)", int8(k))
}

func (k ConditionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ConditionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseConditionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseConditionKind accepts the dashed names and their snake_case spellings.
func ParseConditionKind(text string) (ConditionKind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), "_", "-")
	switch norm {
	case "piece-on", "":
		// an omitted kind means piece-on-squares
		return KindPieceOnSquares, nil
	case "negated":
		return KindPieceAbsent, nil
	}
	for k, name := range conditionKindNames {
		if name == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", appErrors.ErrUnknownConditionKind, text)
}

// Owner says whose pieces a condition inspects, relative to the evaluated side.
type Owner int8

const (
	OwnerSelf Owner = iota
	OwnerOpponent
)

// Side maps the owner into the evaluated side's frame, in which the evaluated
// side always plays first.
func (o Owner) Side() shogi.Side {
	if o == OwnerOpponent {
		return shogi.Second
	}
	return shogi.First
}

func (o Owner) String() string {
	if o == OwnerOpponent {
		return "opponent"
	}
	return "self"
}

func ParseOwner(text string) (Owner, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "self", "sente", "own":
		return OwnerSelf, nil
	case "opponent", "gote", "enemy":
		return OwnerOpponent, nil
	}
	return 0, fmt.Errorf("%w: owner %q", appErrors.ErrMalformedParams, text)
}

// Params is the kind-specific payload of a condition. The set of
// implementations is closed: each carries its own ConditionKind.
type Params interface {
	Kind() ConditionKind
	params()
}

// PieceOnSquares is satisfied by a piece near (or, when Strict, exactly on)
// one of Squares. It is distance-scored and resolved by greedy assignment.
type PieceOnSquares struct {
	Piece   shogi.PieceKind
	Squares []shogi.Square
	Owner   Owner
	Strict  bool
}

// PieceOnFiles is satisfied when a piece stands anywhere on one of Files.
type PieceOnFiles struct {
	Piece shogi.PieceKind
	Files []int
	Owner Owner
}

// PieceNotMoved is satisfied when a piece still stands on one of its starting
// squares. Empty Squares means any starting square of Piece.
type PieceNotMoved struct {
	Piece   shogi.PieceKind
	Squares []shogi.Square
}

// FileControl is satisfied when no enemy Piece stands on File.
type FileControl struct {
	Piece shogi.PieceKind
	File  int
}

// CastleMatched is satisfied when the side already matched one of the named
// formations in the same recognition call.
type CastleMatched struct {
	Names []string
}

// PieceInHand is satisfied when the owner holds at least Count of Piece.
type PieceInHand struct {
	Piece shogi.PieceKind
	Owner Owner
	Count int
}

// PieceAbsent is satisfied when none of Squares holds the owner's Piece.
type PieceAbsent struct {
	Piece   shogi.PieceKind
	Squares []shogi.Square
	Owner   Owner
}

func (PieceOnSquares) Kind() ConditionKind { return KindPieceOnSquares }
func (PieceOnFiles) Kind() ConditionKind   { return KindPieceOnFiles }
func (PieceNotMoved) Kind() ConditionKind  { return KindPieceNotMoved }
func (FileControl) Kind() ConditionKind    { return KindFileControl }
func (CastleMatched) Kind() ConditionKind  { return KindCastleMatched }
func (PieceInHand) Kind() ConditionKind    { return KindPieceInHand }
func (PieceAbsent) Kind() ConditionKind    { return KindPieceAbsent }

func (PieceOnSquares) params() {}
func (PieceOnFiles) params()   {}
func (PieceNotMoved) params()  {}
func (FileControl) params()    {}
func (CastleMatched) params()  {}
func (PieceInHand) params()    {}
func (PieceAbsent) params()    {}

// Condition is one weighted, possibly required, predicate of a definition.
type Condition struct {
	Params   Params
	Required bool
	Weight   float64
}

func (c Condition) Kind() ConditionKind { return c.Params.Kind() }

// DistanceScored reports whether the condition goes through greedy assignment.
func (c Condition) DistanceScored() bool {
	_, ok := c.Params.(PieceOnSquares)
	return ok
}

func (c Condition) String() string {
	var sb strings.Builder
	switch p := c.Params.(type) {
	case PieceOnSquares:
		fmt.Fprintf(&sb, "%s%s on %s", ownerPrefix(p.Owner), p.Piece, joinSquares(p.Squares))
		if p.Strict {
			sb.WriteString(" (exact)")
		}
	case PieceOnFiles:
		fmt.Fprintf(&sb, "%s%s on file %s", ownerPrefix(p.Owner), p.Piece, joinInts(p.Files))
	case PieceNotMoved:
		fmt.Fprintf(&sb, "%s not moved", p.Piece)
		if len(p.Squares) > 0 {
			fmt.Fprintf(&sb, " from %s", joinSquares(p.Squares))
		}
	case FileControl:
		fmt.Fprintf(&sb, "no enemy %s on file %d", p.Piece, p.File)
	case CastleMatched:
		fmt.Fprintf(&sb, "castle in %s", strings.Join(p.Names, "|"))
	case PieceInHand:
		fmt.Fprintf(&sb, "%s%s in hand x%d", ownerPrefix(p.Owner), p.Piece, p.Count)
	case PieceAbsent:
		fmt.Fprintf(&sb, "%sno %s on %s", ownerPrefix(p.Owner), p.Piece, joinSquares(p.Squares))
	default:
		fmt.Fprintf(&sb, "%T", c.Params)
	}
	fmt.Fprintf(&sb, " w=%.2f", c.Weight)
	if !c.Required {
		sb.WriteString(" optional")
	}
	return sb.String()
}

func ownerPrefix(o Owner) string {
	if o == OwnerOpponent {
		return "opponent "
	}
	return ""
}

func joinSquares(squares []shogi.Square) string {
	parts := make([]string, len(squares))
	for i, s := range squares {
		parts[i] = s.String()
	}
	return strings.Join(parts, "|")
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, "|")
}
