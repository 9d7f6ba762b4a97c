// Package geometry holds the board coordinate arithmetic used by pattern
// recognition and king safety: distances between squares, king-step
// neighbourhoods and the mirror transform that maps the second side's frame
// onto the first side's.
package geometry

import (
	"math"

	"shogi_insight/internal/domain/shogi"
)

// Distance is the Euclidean distance between a and b over (file, rank).
func Distance(a, b shogi.Square) float64 {
	df := float64(a.File() - b.File())
	dr := float64(a.Rank() - b.Rank())
	return math.Sqrt(df*df + dr*dr)
}

// ScoringDistance is Distance rounded to one decimal place, the form used by
// distance-scored conditions.
func ScoringDistance(a, b shogi.Square) float64 {
	return Round1(Distance(a, b))
}

// Round1 rounds x to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Chebyshev is the king-move distance between a and b.
func Chebyshev(a, b shogi.Square) int {
	return max(abs(a.File()-b.File()), abs(a.Rank()-b.Rank()))
}

// Adjacent reports whether a and b are distinct and one king step apart.
func Adjacent(a, b shogi.Square) bool {
	return Chebyshev(a, b) == 1
}

// Within lists, in index order, the squares other than s at most radius king
// steps away.
func Within(s shogi.Square, radius int) []shogi.Square {
	var out []shogi.Square
	for df := -radius; df <= radius; df++ {
		for dr := -radius; dr <= radius; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if n, ok := shogi.NewSquare(s.File()+df, s.Rank()+dr); ok {
				out = append(out, n)
			}
		}
	}
	return out
}

// Mirror maps file -> 10-file and rank -> 10-rank. Mirror(Mirror(s)) == s.
func Mirror(s shogi.Square) shogi.Square {
	return shogi.MustSquare(MirrorFile(s.File()), shogi.BoardSize+1-s.Rank())
}

// MirrorFile maps a file number to the other side's frame.
func MirrorFile(file int) int {
	return shogi.BoardSize + 1 - file
}

// Perspective re-expresses snap from side's point of view: for the first side
// it is snap itself, for the second side every square is mirrored and the
// sides are swapped, so that side's pieces appear as first-side pieces.
func Perspective(snap *shogi.Snapshot, side shogi.Side) *shogi.Snapshot {
	if side == shogi.First {
		return snap
	}
	return snap.Transform(Mirror, true)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
