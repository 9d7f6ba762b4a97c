package registry

import (
	"fmt"

	"shogi_insight/internal/domain/pattern"
)

// RawCondition is the authored form of a condition. Which fields matter
// depends on Kind; the rest are ignored.
type RawCondition struct {
	Kind     string   `mapstructure:"kind" json:"kind,omitempty"`
	Piece    string   `mapstructure:"piece" json:"piece,omitempty"`
	Squares  []string `mapstructure:"squares" json:"squares,omitempty"`
	Files    []int    `mapstructure:"files" json:"files,omitempty"`
	File     int      `mapstructure:"file" json:"file,omitempty"`
	Owner    string   `mapstructure:"owner" json:"owner,omitempty"`
	Strict   bool     `mapstructure:"strict" json:"strict,omitempty"`
	Count    int      `mapstructure:"count" json:"count,omitempty"`
	Names    []string `mapstructure:"names" json:"names,omitempty"`
	Required *bool    `mapstructure:"required" json:"required,omitempty"`
	Weight   float64  `mapstructure:"weight" json:"weight"`
}

// RawDefinition is the authored form of a formation or strategy.
type RawDefinition struct {
	Name          string         `mapstructure:"name" json:"name"`
	Category      string         `mapstructure:"category" json:"category"`
	Description   string         `mapstructure:"description" json:"description,omitempty"`
	MinConfidence float64        `mapstructure:"min_confidence" json:"min_confidence"`
	Conditions    []RawCondition `mapstructure:"conditions" json:"conditions"`
}

// ConfigError locates a problem in authored definitions. Condition is -1 when
// the problem concerns the definition as a whole.
type ConfigError struct {
	Family     pattern.Family
	Definition string
	Condition  int
	Err        error
}

func (e *ConfigError) Error() string {
	if e.Condition < 0 {
		return fmt.Sprintf("%s %q: %v", e.Family, e.Definition, e.Err)
	}
	return fmt.Sprintf("%s %q condition %d: %v", e.Family, e.Definition, e.Condition, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Merge returns base with every override applied: an override replaces the
// base entry of the same name in place, new names are appended in order.
func Merge(base, overrides []RawDefinition) []RawDefinition {
	out := make([]RawDefinition, len(base))
	copy(out, base)

	pos := make(map[string]int, len(out))
	for i, d := range out {
		pos[d.Name] = i
	}
	for _, d := range overrides {
		if i, ok := pos[d.Name]; ok {
			out[i] = d
			continue
		}
		pos[d.Name] = len(out)
		out = append(out, d)
	}
	return out
}

// builtin table helpers

func on(piece string, weight float64, squares ...string) RawCondition {
	return RawCondition{Kind: "piece-on-squares", Piece: piece, Squares: squares, Weight: weight}
}

func exact(piece string, weight float64, squares ...string) RawCondition {
	c := on(piece, weight, squares...)
	c.Strict = true
	return c
}

func theirs(piece string, weight float64, squares ...string) RawCondition {
	c := on(piece, weight, squares...)
	c.Owner = "opponent"
	return c
}

func theirsExact(piece string, weight float64, squares ...string) RawCondition {
	c := theirs(piece, weight, squares...)
	c.Strict = true
	return c
}

func absent(piece string, weight float64, squares ...string) RawCondition {
	return RawCondition{Kind: "piece-absent", Piece: piece, Squares: squares, Weight: weight}
}

func onFiles(piece string, weight float64, files ...int) RawCondition {
	return RawCondition{Kind: "piece-on-files", Piece: piece, Files: files, Weight: weight}
}

func theirsOnFiles(piece string, weight float64, files ...int) RawCondition {
	c := onFiles(piece, weight, files...)
	c.Owner = "opponent"
	return c
}

func inHand(piece string, weight float64) RawCondition {
	return RawCondition{Kind: "piece-in-hand", Piece: piece, Weight: weight, Count: 1}
}

func optional(c RawCondition) RawCondition {
	no := false
	c.Required = &no
	return c
}
