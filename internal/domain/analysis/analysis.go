package analysis

import (
	"time"

	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
)

// Analysis is one archived recognition of a position.
type Analysis struct {
	ID         string                `json:"id" bson:"_id"`
	SFEN       string                `json:"sfen" bson:"sfen"`
	Board      string                `json:"board" bson:"board"`
	Turn       shogi.Side            `json:"turn" bson:"turn"`
	Formations []pattern.MatchResult `json:"formations" bson:"formations"`
	Strategies []pattern.MatchResult `json:"strategies" bson:"strategies"`
	KingSafety []KingSafety          `json:"king_safety" bson:"king_safety"`
	Material   Material              `json:"material" bson:"material"`
	Cached     bool                  `json:"cached" bson:"cached"`
	CreatedAt  time.Time             `json:"created_at" bson:"created_at"`
}

// KingSafety scores the defence around one side's king. KingSquare is nil
// when that side has no king on the board.
type KingSafety struct {
	Side        shogi.Side    `json:"side" bson:"side"`
	KingSquare  *shogi.Square `json:"king_square,omitempty" bson:"king_square,omitempty"`
	GoldCount   int           `json:"gold_count" bson:"gold_count"`
	Density     float64       `json:"density" bson:"density"`
	SafetyScore int           `json:"safety_score" bson:"safety_score"`
}

// Material is the piece-value balance of a position, kings excluded.
// Advantage is from the first side's point of view.
type Material struct {
	SenteScore  int            `json:"sente_score" bson:"sente_score"`
	GoteScore   int            `json:"gote_score" bson:"gote_score"`
	Advantage   int            `json:"advantage" bson:"advantage"`
	Description string         `json:"description" bson:"description"`
	SenteHand   map[string]int `json:"sente_hand" bson:"sente_hand"`
	GoteHand    map[string]int `json:"gote_hand" bson:"gote_hand"`
}

func (a Analysis) Matches() pattern.Matches {
	return pattern.Matches{Formations: a.Formations, Strategies: a.Strategies}
}

type RecognizeRequest struct {
	SFEN string `json:"sfen"`
}

type BatchRequest struct {
	Positions []string `json:"positions"`
}

type BatchResponse struct {
	Analyses []Analysis `json:"analyses"`
}

type ExplainRequest struct {
	SFEN    string `json:"sfen"`
	Side    string `json:"side"`
	Family  string `json:"family"`
	Pattern string `json:"pattern"`
}
