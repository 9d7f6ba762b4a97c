package shogi

import (
	"fmt"

	appErrors "shogi_insight/internal/errors"
)

// Snapshot is an immutable view of one board position: the occupant of every
// square and the pieces each side holds off-board. Build one with a Builder.
type Snapshot struct {
	board [NumSquares]Piece
	hands [2][King]int
}

// At returns the piece on sq and whether the square is occupied.
func (s *Snapshot) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := s.board[sq]
	return p, !p.Empty()
}

// Hand returns how many pieces of kind the side holds off-board.
func (s *Snapshot) Hand(side Side, kind PieceKind) int {
	if !kind.Handable() {
		return 0
	}
	return s.hands[side][kind]
}

// Squares lists, in index order, the squares holding kind owned by side.
func (s *Snapshot) Squares(side Side, kind PieceKind) []Square {
	var out []Square
	for i, p := range s.board {
		if p.Kind == kind && p.Side == side {
			out = append(out, Square(i))
		}
	}
	return out
}

// Count returns the number of on-board pieces of kind owned by side.
func (s *Snapshot) Count(side Side, kind PieceKind) int {
	n := 0
	for _, p := range s.board {
		if p.Kind == kind && p.Side == side {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied square in index order.
func (s *Snapshot) Each(fn func(Square, Piece)) {
	for i, p := range s.board {
		if !p.Empty() {
			fn(Square(i), p)
		}
	}
}

// Transform builds a new snapshot with every square passed through mapSquare
// and, when swapSides is set, every piece and hand handed to the other side.
func (s *Snapshot) Transform(mapSquare func(Square) Square, swapSides bool) *Snapshot {
	out := &Snapshot{}
	for i, p := range s.board {
		if p.Empty() {
			continue
		}
		if swapSides {
			p.Side = p.Side.Opponent()
		}
		out.board[mapSquare(Square(i))] = p
	}
	out.hands = s.hands
	if swapSides {
		out.hands[First], out.hands[Second] = s.hands[Second], s.hands[First]
	}
	return out
}

// Builder assembles a Snapshot. The zero value is an empty board.
type Builder struct {
	snap Snapshot
	err  error
}

func NewBuilder() *Builder { return &Builder{} }

// Place puts a piece on sq, replacing any occupant.
func (b *Builder) Place(sq Square, side Side, kind PieceKind) *Builder {
	if b.err != nil {
		return b
	}
	if !sq.Valid() {
		b.err = fmt.Errorf("%w: %d", appErrors.ErrInvalidSquare, int8(sq))
		return b
	}
	if !kind.Valid() {
		b.err = fmt.Errorf("%w: %d", appErrors.ErrInvalidPiece, int8(kind))
		return b
	}
	b.snap.board[sq] = Piece{Kind: kind, Side: side}
	return b
}

// PlaceAt is Place with textual square and piece, e.g. PlaceAt("7八", First, "金").
func (b *Builder) PlaceAt(square string, side Side, piece string) *Builder {
	if b.err != nil {
		return b
	}
	sq, err := ParseSquare(square)
	if err != nil {
		b.err = err
		return b
	}
	kind, err := ParsePieceKind(piece)
	if err != nil {
		b.err = err
		return b
	}
	return b.Place(sq, side, kind)
}

// Remove empties sq.
func (b *Builder) Remove(sq Square) *Builder {
	if sq.Valid() {
		b.snap.board[sq] = Piece{}
	}
	return b
}

// SetHand sets the off-board count of kind for side.
func (b *Builder) SetHand(side Side, kind PieceKind, count int) *Builder {
	if b.err != nil {
		return b
	}
	if !kind.Handable() || count < 0 {
		b.err = fmt.Errorf("%w: %d x %s in hand", appErrors.ErrInvalidPiece, count, kind)
		return b
	}
	b.snap.hands[side][kind] = count
	return b
}

// Build returns the snapshot, or the first error recorded while building.
func (b *Builder) Build() (*Snapshot, error) {
	if b.err != nil {
		return nil, b.err
	}
	out := b.snap
	return &out, nil
}

// MustBuild is Build for fixtures; it panics on error.
func (b *Builder) MustBuild() *Snapshot {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
