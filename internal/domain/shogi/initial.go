package shogi

// backRank lists the first side's rank-9 pieces from file 9 down to file 1.
var backRank = [BoardSize]PieceKind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}

var startingSquares = func() map[PieceKind][]Square {
	m := make(map[PieceKind][]Square)
	for i, k := range backRank {
		file := BoardSize - i
		m[k] = append(m[k], MustSquare(file, 9))
	}
	m[Rook] = []Square{MustSquare(2, 8)}
	m[Bishop] = []Square{MustSquare(8, 8)}
	for file := BoardSize; file >= 1; file-- {
		m[Pawn] = append(m[Pawn], MustSquare(file, 7))
	}
	return m
}()

// StartingSquares returns the first side's initial squares for kind, in file
// order 9..1. Promoted kinds have none. The second side's squares are the
// mirror images.
func StartingSquares(kind PieceKind) []Square {
	src := startingSquares[kind]
	out := make([]Square, len(src))
	copy(out, src)
	return out
}

// IsStartingSquare reports whether sq is one of kind's first-side starting squares.
func IsStartingSquare(kind PieceKind, sq Square) bool {
	for _, s := range startingSquares[kind] {
		if s == sq {
			return true
		}
	}
	return false
}

// Initial returns the standard even-game starting position.
func Initial() *Snapshot {
	b := NewBuilder()
	for kind, squares := range startingSquares {
		for _, sq := range squares {
			b.Place(sq, First, kind)
			b.Place(mirror(sq), Second, kind)
		}
	}
	return b.MustBuild()
}

func mirror(sq Square) Square {
	return Square(NumSquares - 1 - int(sq))
}
