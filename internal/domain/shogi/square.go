package shogi

import (
	"fmt"
	"strings"
	"unicode/utf8"

	appErrors "shogi_insight/internal/errors"
)

const (
	BoardSize  = 9
	NumSquares = BoardSize * BoardSize
)

// Square indexes the 9x9 board as (file-1)*9 + (rank-1).
// File 1 is the first side's right edge, rank 1 is the second side's back rank.
type Square int8

var rankKanji = [BoardSize]string{"一", "二", "三", "四", "五", "六", "七", "八", "九"}

// NewSquare returns the square at file/rank (both 1..9).
func NewSquare(file, rank int) (Square, bool) {
	if file < 1 || file > BoardSize || rank < 1 || rank > BoardSize {
		return 0, false
	}
	return Square((file-1)*BoardSize + (rank - 1)), true
}

// MustSquare is NewSquare for literal coordinates; it panics on out-of-range input.
func MustSquare(file, rank int) Square {
	sq, ok := NewSquare(file, rank)
	if !ok {
		panic(fmt.Sprintf("shogi: square %d,%d out of range", file, rank))
	}
	return sq
}

func (s Square) Valid() bool { return s >= 0 && int(s) < NumSquares }

func (s Square) File() int { return int(s)/BoardSize + 1 }

func (s Square) Rank() int { return int(s)%BoardSize + 1 }

// String renders the square in Japanese notation, e.g. "7七".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Square(%d)", int8(s))
	}
	return fmt.Sprintf("%d%s", s.File(), rankKanji[s.Rank()-1])
}

// USI renders the square in USI notation, e.g. "7g".
func (s Square) USI() string {
	return fmt.Sprintf("%d%c", s.File(), 'a'+rune(s.Rank()-1))
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", appErrors.ErrInvalidSquare, int8(s))
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// ParseSquare accepts "7七", "77" and USI "7g".
func ParseSquare(text string) (Square, error) {
	text = strings.TrimSpace(text)
	fileRune, size := utf8.DecodeRuneInString(text)
	if fileRune < '1' || fileRune > '9' {
		return 0, fmt.Errorf("%w: %q", appErrors.ErrInvalidSquare, text)
	}
	file := int(fileRune - '0')
	rest := text[size:]

	rank := 0
	switch {
	case len(rest) == 1 && rest[0] >= '1' && rest[0] <= '9':
		rank = int(rest[0] - '0')
	case len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'i':
		rank = int(rest[0]-'a') + 1
	default:
		for i, k := range rankKanji {
			if rest == k {
				rank = i + 1
				break
			}
		}
	}
	if rank == 0 {
		return 0, fmt.Errorf("%w: %q", appErrors.ErrInvalidSquare, text)
	}
	return MustSquare(file, rank), nil
}

// AllSquares lists every square in index order.
func AllSquares() []Square {
	out := make([]Square, NumSquares)
	for i := range out {
		out[i] = Square(i)
	}
	return out
}
