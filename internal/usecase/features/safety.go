// Package features computes the static, snapshot-only position features that
// accompany pattern recognition: king safety per side and material balance.
package features

import (
	"math"

	"shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/shogi"
	"shogi_insight/internal/geometry"
)

const (
	safetyRadius  = 2
	goldWeight    = 10
	densityWeight = 50
)

// KingSafety measures the defence around side's king over the squares within
// two king steps:
//
//	gold_count   = 2 per own gold/silver adjacent + 1 per own gold/silver two
//	               steps away - 1 per enemy piece in range
//	density      = own pieces in range / squares in range
//	safety_score = trunc(gold_count*10 + density*50)
func KingSafety(snap *shogi.Snapshot, side shogi.Side) analysis.KingSafety {
	ks := analysis.KingSafety{Side: side}

	kings := snap.Squares(side, shogi.King)
	if len(kings) == 0 {
		return ks
	}
	king := kings[0]
	ks.KingSquare = &king

	area := geometry.Within(king, safetyRadius)
	own := 0
	for _, sq := range area {
		p, ok := snap.At(sq)
		if !ok {
			continue
		}
		if p.Side != side {
			ks.GoldCount--
			continue
		}
		own++
		if p.Kind == shogi.Gold || p.Kind == shogi.Silver {
			if geometry.Adjacent(king, sq) {
				ks.GoldCount += 2
			} else {
				ks.GoldCount++
			}
		}
	}

	density := 0.0
	if len(area) > 0 {
		density = float64(own) / float64(len(area))
	}
	ks.Density = math.Round(density*100) / 100
	ks.SafetyScore = int(float64(ks.GoldCount*goldWeight) + density*densityWeight)
	return ks
}

// KingSafeties returns KingSafety for both sides, first side first.
func KingSafeties(snap *shogi.Snapshot) []analysis.KingSafety {
	out := make([]analysis.KingSafety, 0, len(shogi.Sides))
	for _, side := range shogi.Sides {
		out = append(out, KingSafety(snap, side))
	}
	return out
}
