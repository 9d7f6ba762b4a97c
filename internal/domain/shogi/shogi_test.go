package shogi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "shogi_insight/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		file int
		rank int
	}{
		{"7七", 7, 7},
		{"77", 7, 7},
		{"7g", 7, 7},
		{"1一", 1, 1},
		{"9i", 9, 9},
		{" 5五 ", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sq, err := ParseSquare(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.file, sq.File())
			assert.Equal(t, tt.rank, sq.Rank())
		})
	}

	for _, bad := range []string{"", "0一", "7十", "7j", "77七", "a1"} {
		_, err := ParseSquare(bad)
		assert.Truef(t, errors.Is(err, appErrors.ErrInvalidSquare), "input %q", bad)
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for _, sq := range AllSquares() {
		parsed, err := ParseSquare(sq.String())
		require.NoError(t, err)
		assert.Equal(t, sq, parsed)

		parsed, err = ParseSquare(sq.USI())
		require.NoError(t, err)
		assert.Equal(t, sq, parsed)
	}
}

func TestParsePieceKind(t *testing.T) {
	cases := map[string]PieceKind{
		"歩": Pawn, "P": Pawn, "p": Pawn,
		"玉": King, "王": King,
		"龍": Dragon, "竜": Dragon, "+R": Dragon,
		"成銀": ProSilver, "+s": ProSilver,
		"馬": Horse,
	}
	for in, want := range cases {
		got, err := ParsePieceKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePieceKind("X")
	assert.ErrorIs(t, err, appErrors.ErrInvalidPiece)
}

func TestPromoteBase(t *testing.T) {
	assert.Equal(t, Dragon, Rook.Promote())
	assert.Equal(t, Gold, Gold.Promote())
	assert.Equal(t, Silver, ProSilver.Base())
	assert.True(t, Horse.Promoted())
	assert.False(t, King.Handable())
}

func TestInitialPosition(t *testing.T) {
	s := Initial()

	p, ok := s.At(MustSquare(5, 9))
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: King, Side: First}, p)

	p, ok = s.At(MustSquare(8, 2))
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Rook, Side: Second}, p)

	assert.Equal(t, 9, s.Count(First, Pawn))
	assert.Equal(t, 2, s.Count(Second, Gold))
	assert.Equal(t, []Square{MustSquare(4, 9), MustSquare(6, 9)}, s.Squares(First, Gold))

	assert.Equal(t, StartSFEN, Position{Snapshot: s, Turn: First, MoveNumber: 1}.SFEN())
}

func TestStartingSquares(t *testing.T) {
	assert.Equal(t, []Square{MustSquare(6, 9), MustSquare(4, 9)}, StartingSquares(Gold))
	assert.True(t, IsStartingSquare(Rook, MustSquare(2, 8)))
	assert.False(t, IsStartingSquare(Rook, MustSquare(8, 8)))
	assert.Empty(t, StartingSquares(Dragon))
}

func TestParseSFEN(t *testing.T) {
	pos, err := ParseSFEN("sfen lnsgkgsnl/1r5b1/ppppppppp/9/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL w 2Pb 2")
	require.NoError(t, err)

	assert.Equal(t, Second, pos.Turn)
	assert.Equal(t, 2, pos.MoveNumber)
	assert.Equal(t, 2, pos.Snapshot.Hand(First, Pawn))
	assert.Equal(t, 1, pos.Snapshot.Hand(Second, Bishop))

	p, ok := pos.Snapshot.At(MustSquare(7, 6))
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Pawn, Side: First}, p)

	assert.Equal(t, "lnsgkgsnl/1r5b1/ppppppppp/9/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL w 2Pb 2", pos.SFEN())
}

func TestParseSFENPromoted(t *testing.T) {
	pos, err := ParseSFEN("4k4/9/9/9/9/9/9/9/+R3K3+b b - 1")
	require.NoError(t, err)

	p, ok := pos.Snapshot.At(MustSquare(9, 9))
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Dragon, Side: First}, p)

	p, ok = pos.Snapshot.At(MustSquare(1, 9))
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Horse, Side: Second}, p)
}

func TestParseSFENErrors(t *testing.T) {
	for _, bad := range []string{
		"",
		"9/9/9 b -",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL x - 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSN b - 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b 2K 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/+KNSGKGSNL b - 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 0",
	} {
		_, err := ParseSFEN(bad)
		assert.ErrorIsf(t, err, appErrors.ErrInvalidSFEN, "input %q", bad)
	}
}

func TestTransformSwapsSides(t *testing.T) {
	s := NewBuilder().
		PlaceAt("7八", First, "金").
		PlaceAt("3二", Second, "銀").
		SetHand(Second, Pawn, 3).
		MustBuild()

	flipped := s.Transform(mirror, true)

	p, ok := flipped.At(MustSquare(3, 2))
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Gold, Side: Second}, p)

	p, ok = flipped.At(MustSquare(7, 8))
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Silver, Side: First}, p)

	assert.Equal(t, 3, flipped.Hand(First, Pawn))
	assert.Equal(t, 0, flipped.Hand(Second, Pawn))

	// the source is untouched
	_, ok = s.At(MustSquare(3, 2))
	assert.True(t, ok)
}

func TestBuilderErrors(t *testing.T) {
	_, err := NewBuilder().PlaceAt("0一", First, "金").Build()
	assert.ErrorIs(t, err, appErrors.ErrInvalidSquare)

	_, err = NewBuilder().SetHand(First, King, 1).Build()
	assert.ErrorIs(t, err, appErrors.ErrInvalidPiece)
}
