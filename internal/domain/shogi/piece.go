package shogi

import (
	"fmt"
	"strings"

	appErrors "shogi_insight/internal/errors"
)

// Side is one of the two players. First moves first (sente, black).
type Side int8

const (
	First Side = iota
	Second
)

// Sides lists both sides in evaluation order.
var Sides = [2]Side{First, Second}

func (s Side) Opponent() Side { return 1 - s }

func (s Side) String() string {
	if s == Second {
		return "gote"
	}
	return "sente"
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// ParseSide accepts sente/gote, first/second, black/white, b/w and 先手/後手.
func ParseSide(text string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "sente", "first", "black", "b", "先手", "▲":
		return First, nil
	case "gote", "second", "white", "w", "後手", "△":
		return Second, nil
	}
	return 0, fmt.Errorf("%w: %q", appErrors.ErrInvalidSide, text)
}

// PieceKind is the closed set of shogi piece types. The zero value means no piece.
type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	Horse
	Dragon
)

type kindNames struct {
	japanese string
	usi      string
}

var pieceKindNames = [...]kindNames{
	NoKind:    {"", ""},
	Pawn:      {"歩", "P"},
	Lance:     {"香", "L"},
	Knight:    {"桂", "N"},
	Silver:    {"銀", "S"},
	Gold:      {"金", "G"},
	Bishop:    {"角", "B"},
	Rook:      {"飛", "R"},
	King:      {"玉", "K"},
	ProPawn:   {"と", "+P"},
	ProLance:  {"成香", "+L"},
	ProKnight: {"成桂", "+N"},
	ProSilver: {"成銀", "+S"},
	Horse:     {"馬", "+B"},
	Dragon:    {"龍", "+R"},
}

var kindAliases = map[string]PieceKind{
	"王": King,
	"竜": Dragon,
	"杏": ProLance,
	"圭": ProKnight,
	"全": ProSilver,
}

func (k PieceKind) Valid() bool { return k > NoKind && k <= Dragon }

func (k PieceKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PieceKind(%d)", int8(k))
	}
	return pieceKindNames[k].japanese
}

// USI returns the upper-case USI letter(s), e.g. "+R".
func (k PieceKind) USI() string {
	if !k.Valid() {
		return ""
	}
	return pieceKindNames[k].usi
}

func (k PieceKind) Promoted() bool { return k >= ProPawn && k <= Dragon }

// Promote returns the promoted form, or k itself when k cannot promote.
func (k PieceKind) Promote() PieceKind {
	switch k {
	case Pawn:
		return ProPawn
	case Lance:
		return ProLance
	case Knight:
		return ProKnight
	case Silver:
		return ProSilver
	case Bishop:
		return Horse
	case Rook:
		return Dragon
	}
	return k
}

// Base returns the unpromoted form.
func (k PieceKind) Base() PieceKind {
	switch k {
	case ProPawn:
		return Pawn
	case ProLance:
		return Lance
	case ProKnight:
		return Knight
	case ProSilver:
		return Silver
	case Horse:
		return Bishop
	case Dragon:
		return Rook
	}
	return k
}

// Handable reports whether the kind can be held off-board.
func (k PieceKind) Handable() bool { return k >= Pawn && k <= Rook }

func (k PieceKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", appErrors.ErrInvalidPiece, int8(k))
	}
	return []byte(k.String()), nil
}

func (k *PieceKind) UnmarshalText(text []byte) error {
	kind, err := ParsePieceKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParsePieceKind accepts Japanese names (歩, 成銀, 龍 ...) and USI letters (P, +S, r ...).
func ParsePieceKind(text string) (PieceKind, error) {
	text = strings.TrimSpace(text)
	if k, ok := kindAliases[text]; ok {
		return k, nil
	}
	upper := strings.ToUpper(text)
	for k := Pawn; k <= Dragon; k++ {
		if text == pieceKindNames[k].japanese || upper == pieceKindNames[k].usi {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("%w: %q", appErrors.ErrInvalidPiece, text)
}

// Piece is a piece type owned by a side.
type Piece struct {
	Kind PieceKind `json:"kind"`
	Side Side      `json:"side"`
}

func (p Piece) Empty() bool { return p.Kind == NoKind }

func (p Piece) String() string {
	if p.Empty() {
		return "・"
	}
	if p.Side == Second {
		return "v" + p.Kind.String()
	}
	return p.Kind.String()
}
