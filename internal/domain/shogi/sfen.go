package shogi

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	appErrors "shogi_insight/internal/errors"
)

const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// handOrder is the canonical SFEN hand ordering.
var handOrder = [...]PieceKind{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

// Position is a parsed SFEN record.
type Position struct {
	Snapshot   *Snapshot
	Turn       Side
	MoveNumber int
}

// ParseSFEN parses "<board> <turn> <hands> [<move number>]". A leading
// "sfen " or "position sfen " prefix is tolerated.
func ParseSFEN(text string) (Position, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "position ")
	text = strings.TrimPrefix(text, "sfen ")
	fields := strings.Fields(text)
	if len(fields) < 3 || len(fields) > 4 {
		return Position{}, fmt.Errorf("%w: want 3 or 4 fields, got %d", appErrors.ErrInvalidSFEN, len(fields))
	}

	b := NewBuilder()
	if err := parseBoard(b, fields[0]); err != nil {
		return Position{}, err
	}

	var turn Side
	switch fields[1] {
	case "b":
		turn = First
	case "w":
		turn = Second
	default:
		return Position{}, fmt.Errorf("%w: turn %q", appErrors.ErrInvalidSFEN, fields[1])
	}

	if err := parseHands(b, fields[2]); err != nil {
		return Position{}, err
	}

	moveNumber := 1
	if len(fields) == 4 {
		n, err := strconv.Atoi(fields[3])
		if err != nil || n < 1 {
			return Position{}, fmt.Errorf("%w: move number %q", appErrors.ErrInvalidSFEN, fields[3])
		}
		moveNumber = n
	}

	snap, err := b.Build()
	if err != nil {
		return Position{}, fmt.Errorf("%w: %v", appErrors.ErrInvalidSFEN, err)
	}
	return Position{Snapshot: snap, Turn: turn, MoveNumber: moveNumber}, nil
}

func parseBoard(b *Builder, board string) error {
	rows := strings.Split(board, "/")
	if len(rows) != BoardSize {
		return fmt.Errorf("%w: want %d ranks, got %d", appErrors.ErrInvalidSFEN, BoardSize, len(rows))
	}
	for r, row := range rows {
		rank := r + 1
		file := BoardSize
		promoted := false
		for _, c := range row {
			switch {
			case c == '+':
				promoted = true
				continue
			case c >= '1' && c <= '9':
				if promoted {
					return fmt.Errorf("%w: dangling '+' in rank %d", appErrors.ErrInvalidSFEN, rank)
				}
				file -= int(c - '0')
				continue
			}
			if file < 1 {
				return fmt.Errorf("%w: rank %d overflows", appErrors.ErrInvalidSFEN, rank)
			}
			kind, err := ParsePieceKind(string(unicode.ToUpper(c)))
			if err != nil || kind == NoKind {
				return fmt.Errorf("%w: piece %q", appErrors.ErrInvalidSFEN, c)
			}
			if promoted {
				if kind.Promote() == kind {
					return fmt.Errorf("%w: %q cannot promote", appErrors.ErrInvalidSFEN, c)
				}
				kind = kind.Promote()
				promoted = false
			}
			side := First
			if unicode.IsLower(c) {
				side = Second
			}
			b.Place(MustSquare(file, rank), side, kind)
			file--
		}
		if file != 0 || promoted {
			return fmt.Errorf("%w: rank %d has wrong width", appErrors.ErrInvalidSFEN, rank)
		}
	}
	return nil
}

func parseHands(b *Builder, hands string) error {
	if hands == "-" {
		return nil
	}
	count := 0
	for _, c := range hands {
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			continue
		}
		kind, err := ParsePieceKind(string(unicode.ToUpper(c)))
		if err != nil || !kind.Handable() {
			return fmt.Errorf("%w: hand piece %q", appErrors.ErrInvalidSFEN, c)
		}
		if count == 0 {
			count = 1
		}
		side := First
		if unicode.IsLower(c) {
			side = Second
		}
		b.SetHand(side, kind, count)
		count = 0
	}
	if count != 0 {
		return fmt.Errorf("%w: dangling hand count", appErrors.ErrInvalidSFEN)
	}
	return nil
}

// SFEN renders the position as a full SFEN record.
func (p Position) SFEN() string {
	turn := "b"
	if p.Turn == Second {
		turn = "w"
	}
	n := p.MoveNumber
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%s %s %s %d", p.Snapshot.boardField(), turn, p.Snapshot.handField(), n)
}

// BoardSFEN renders board and hands (no turn, no move number). Two snapshots
// with equal BoardSFEN are equal.
func (s *Snapshot) BoardSFEN() string {
	return s.boardField() + " " + s.handField()
}

func (s *Snapshot) boardField() string {
	var sb strings.Builder
	for rank := 1; rank <= BoardSize; rank++ {
		if rank > 1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := BoardSize; file >= 1; file-- {
			p, ok := s.At(MustSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(sfenLetter(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

func (s *Snapshot) handField() string {
	var sb strings.Builder
	for _, side := range Sides {
		for _, kind := range handOrder {
			n := s.Hand(side, kind)
			if n == 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteString(sfenLetter(Piece{Kind: kind, Side: side}))
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func sfenLetter(p Piece) string {
	letter := p.Kind.USI()
	if p.Side == Second {
		letter = strings.ToLower(letter)
	}
	return letter
}
