package features

import (
	"strconv"
	"strings"

	"shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/shogi"
)

var pieceValues = map[shogi.PieceKind]int{
	shogi.Pawn:      100,
	shogi.Lance:     300,
	shogi.Knight:    400,
	shogi.Silver:    500,
	shogi.Gold:      600,
	shogi.Bishop:    800,
	shogi.Rook:      1000,
	shogi.ProPawn:   700,
	shogi.ProLance:  600,
	shogi.ProKnight: 600,
	shogi.ProSilver: 600,
	shogi.Horse:     1000,
	shogi.Dragon:    1200,
}

// Each side's unpromoted piece count at the start of the game, king excluded.
var initialCounts = map[shogi.PieceKind]int{
	shogi.Pawn:   9,
	shogi.Lance:  2,
	shogi.Knight: 2,
	shogi.Silver: 2,
	shogi.Gold:   2,
	shogi.Bishop: 1,
	shogi.Rook:   1,
}

var (
	handOrder    = []shogi.PieceKind{shogi.Pawn, shogi.Lance, shogi.Knight, shogi.Silver, shogi.Gold, shogi.Bishop, shogi.Rook}
	displayOrder = []shogi.PieceKind{shogi.Rook, shogi.Bishop, shogi.Gold, shogi.Silver, shogi.Knight, shogi.Lance, shogi.Pawn}
)

const noExchange = "駒の損得なし"

// Material sums board and hand piece values for both sides and describes the
// exchange relative to the starting material, e.g. "先手の角得" or
// "銀と金の交換".
func Material(snap *shogi.Snapshot) analysis.Material {
	var scores [2]int
	var counts [2]map[shogi.PieceKind]int
	for _, side := range shogi.Sides {
		counts[side] = make(map[shogi.PieceKind]int, len(handOrder))
	}

	for _, sq := range shogi.AllSquares() {
		p, ok := snap.At(sq)
		if !ok || p.Kind == shogi.King {
			continue
		}
		scores[p.Side] += pieceValues[p.Kind]
		counts[p.Side][p.Kind.Base()]++
	}

	hands := [2]map[string]int{}
	for _, side := range shogi.Sides {
		hands[side] = make(map[string]int, len(handOrder))
		for _, kind := range handOrder {
			n := snap.Hand(side, kind)
			hands[side][kind.String()] = n
			scores[side] += n * pieceValues[kind]
			counts[side][kind] += n
		}
	}

	return analysis.Material{
		SenteScore:  scores[shogi.First],
		GoteScore:   scores[shogi.Second],
		Advantage:   scores[shogi.First] - scores[shogi.Second],
		Description: describeExchange(counts[shogi.First], counts[shogi.Second]),
		SenteHand:   hands[shogi.First],
		GoteHand:    hands[shogi.Second],
	}
}

func describeExchange(sente, gote map[shogi.PieceKind]int) string {
	senteGained := gained(sente)
	goteGained := gained(gote)
	if len(senteGained) == 0 && len(goteGained) == 0 {
		return noExchange
	}

	// Pawns only count when nothing bigger changed hands.
	if hasNonPawn(senteGained) || hasNonPawn(goteGained) {
		delete(senteGained, shogi.Pawn)
		delete(goteGained, shogi.Pawn)
	}

	switch {
	case len(senteGained) == 0 && len(goteGained) == 0:
		return noExchange
	case len(goteGained) == 0:
		return "先手の" + pawnsOr(senteGained) + "得"
	case len(senteGained) == 0:
		return "先手の" + pawnsOr(goteGained) + "損"
	}
	return formatPieces(goteGained) + "と" + formatPieces(senteGained) + "の交換"
}

func gained(counts map[shogi.PieceKind]int) map[shogi.PieceKind]int {
	out := make(map[shogi.PieceKind]int)
	for _, kind := range handOrder {
		if diff := counts[kind] - initialCounts[kind]; diff > 0 {
			out[kind] = diff
		}
	}
	return out
}

func hasNonPawn(pieces map[shogi.PieceKind]int) bool {
	for kind := range pieces {
		if kind != shogi.Pawn {
			return true
		}
	}
	return false
}

// pawnsOr renders a pawn-only gain as "歩" or "二歩", anything else through
// formatPieces.
func pawnsOr(pieces map[shogi.PieceKind]int) string {
	if n, ok := pieces[shogi.Pawn]; ok && len(pieces) == 1 {
		if n == 1 {
			return shogi.Pawn.String()
		}
		return kanjiNumber(n) + shogi.Pawn.String()
	}
	return formatPieces(pieces)
}

func formatPieces(pieces map[shogi.PieceKind]int) string {
	var b strings.Builder
	for _, kind := range displayOrder {
		n, ok := pieces[kind]
		if !ok {
			continue
		}
		b.WriteString(kind.String())
		if n > 1 {
			b.WriteString(kanjiNumber(n))
			b.WriteString("枚")
		}
	}
	return b.String()
}

var kanjiDigits = []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

func kanjiNumber(n int) string {
	if n > 0 && n < len(kanjiDigits) {
		return kanjiDigits[n]
	}
	return strconv.Itoa(n)
}
