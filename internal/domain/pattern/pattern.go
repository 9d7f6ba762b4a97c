// Package pattern defines the data model for named board patterns: formation
// (castle) and strategy definitions built from weighted conditions, and the
// match results produced by recognition.
package pattern

import (
	"fmt"
	"strings"

	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
)

// Family separates king-safety formations from opening strategies.
type Family string

const (
	FamilyFormation Family = "formation"
	FamilyStrategy  Family = "strategy"
)

// Families lists both families in evaluation order.
var Families = [2]Family{FamilyFormation, FamilyStrategy}

func ParseFamily(text string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "formation", "formations", "castle", "castles":
		return FamilyFormation, nil
	case "strategy", "strategies":
		return FamilyStrategy, nil
	}
	return "", fmt.Errorf("%w: %q", appErrors.ErrUnknownFamily, text)
}

// Definition is one named pattern. It is immutable once built; accessors hand
// out copies.
type Definition struct {
	name          string
	category      string
	description   string
	family        Family
	conditions    []Condition
	minConfidence float64
}

// NewDefinition assembles a definition. Validation is the registry's job.
func NewDefinition(family Family, name, category, description string, minConfidence float64, conditions []Condition) Definition {
	cs := make([]Condition, len(conditions))
	copy(cs, conditions)
	return Definition{
		name:          name,
		category:      category,
		description:   description,
		family:        family,
		conditions:    cs,
		minConfidence: minConfidence,
	}
}

func (d Definition) Name() string           { return d.name }
func (d Definition) Category() string       { return d.category }
func (d Definition) Description() string    { return d.description }
func (d Definition) Family() Family         { return d.family }
func (d Definition) MinConfidence() float64 { return d.minConfidence }
func (d Definition) Len() int               { return len(d.conditions) }

// Condition returns the i-th condition in authored order.
func (d Definition) Condition(i int) Condition { return d.conditions[i] }

// Conditions returns a copy of the conditions in authored order.
func (d Definition) Conditions() []Condition {
	out := make([]Condition, len(d.conditions))
	copy(out, d.conditions)
	return out
}

// TotalWeight sums every condition weight, required and optional alike.
func (d Definition) TotalWeight() float64 {
	total := 0.0
	for _, c := range d.conditions {
		total += c.Weight
	}
	return total
}

// Summary is the serialisable description of a definition.
type Summary struct {
	Name          string   `json:"name"`
	Family        Family   `json:"family"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	MinConfidence float64  `json:"min_confidence"`
	Conditions    []string `json:"conditions"`
}

func (d Definition) Summary() Summary {
	conds := make([]string, len(d.conditions))
	for i, c := range d.conditions {
		conds[i] = c.String()
	}
	return Summary{
		Name:          d.name,
		Family:        d.family,
		Category:      d.category,
		Description:   d.description,
		MinConfidence: d.minConfidence,
		Conditions:    conds,
	}
}

// MatchResult reports that side's position matches a definition with the
// given confidence.
type MatchResult struct {
	Pattern    string     `json:"pattern" bson:"pattern"`
	Family     Family     `json:"family" bson:"family"`
	Category   string     `json:"category" bson:"category"`
	Side       shogi.Side `json:"side" bson:"side"`
	Confidence float64    `json:"confidence" bson:"confidence"`
}

// Matches groups the results of one snapshot by family.
type Matches struct {
	Formations []MatchResult `json:"formations" bson:"formations"`
	Strategies []MatchResult `json:"strategies" bson:"strategies"`
}

// All returns formations followed by strategies.
func (m Matches) All() []MatchResult {
	out := make([]MatchResult, 0, len(m.Formations)+len(m.Strategies))
	out = append(out, m.Formations...)
	return append(out, m.Strategies...)
}

func (m Matches) Empty() bool { return len(m.Formations) == 0 && len(m.Strategies) == 0 }
