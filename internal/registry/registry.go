// Package registry owns the immutable set of formation and strategy
// definitions. Definitions are authored as raw data, compiled and validated
// once, and shared read-only by every recognition call afterwards.
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"

	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
)

type Registry struct {
	formations []pattern.Definition
	strategies []pattern.Definition
	index      map[pattern.Family]map[string]int
}

// New compiles and validates both families. All problems found are returned
// together as ConfigErrors inside a multierror.
func New(formations, strategies []RawDefinition) (*Registry, error) {
	var errs error

	r := &Registry{
		index: map[pattern.Family]map[string]int{
			pattern.FamilyFormation: {},
			pattern.FamilyStrategy:  {},
		},
	}

	r.formations = r.compileFamily(pattern.FamilyFormation, formations, &errs)
	r.strategies = r.compileFamily(pattern.FamilyStrategy, strategies, &errs)

	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// MustNew is New for tables known to be valid.
func MustNew(formations, strategies []RawDefinition) *Registry {
	r, err := New(formations, strategies)
	if err != nil {
		panic(err)
	}
	return r
}

// Builtin returns copies of the builtin formation and strategy tables.
func Builtin() (formations, strategies []RawDefinition) {
	return slices.Clone(builtinFormations), slices.Clone(builtinStrategies)
}

// Default is the registry built from the builtin tables.
func Default() *Registry {
	return MustNew(builtinFormations, builtinStrategies)
}

func (r *Registry) compileFamily(family pattern.Family, raws []RawDefinition, errs *error) []pattern.Definition {
	out := make([]pattern.Definition, 0, len(raws))
	for _, raw := range raws {
		def, ok := r.compileDefinition(family, raw, errs)
		if !ok {
			continue
		}
		r.index[family][def.Name()] = len(out)
		out = append(out, def)
	}
	return out
}

func (r *Registry) compileDefinition(family pattern.Family, raw RawDefinition, errs *error) (pattern.Definition, bool) {
	fail := func(cond int, err error) {
		*errs = multierror.Append(*errs, &ConfigError{Family: family, Definition: raw.Name, Condition: cond, Err: err})
	}
	before := errCount(*errs)

	name := strings.TrimSpace(raw.Name)
	switch {
	case name == "":
		fail(-1, appErrors.ErrEmptyName)
	case r.has(family, name):
		fail(-1, appErrors.ErrDuplicateName)
	}
	if raw.MinConfidence < 0 || raw.MinConfidence > 1 {
		fail(-1, fmt.Errorf("%w: %v", appErrors.ErrMinConfidenceRange, raw.MinConfidence))
	}

	conditions := make([]pattern.Condition, 0, len(raw.Conditions))
	total := 0.0
	for i, rc := range raw.Conditions {
		c, err := r.compileCondition(family, rc)
		if err != nil {
			fail(i, err)
			continue
		}
		total += c.Weight
		conditions = append(conditions, c)
	}
	if len(conditions) == len(raw.Conditions) && total <= 0 {
		fail(-1, appErrors.ErrNoWeight)
	}

	if errCount(*errs) != before {
		return pattern.Definition{}, false
	}
	return pattern.NewDefinition(family, name, raw.Category, raw.Description, raw.MinConfidence, conditions), true
}

func (r *Registry) compileCondition(family pattern.Family, rc RawCondition) (pattern.Condition, error) {
	kind, err := pattern.ParseConditionKind(rc.Kind)
	if err != nil {
		return pattern.Condition{}, err
	}
	if rc.Weight < 0 {
		return pattern.Condition{}, fmt.Errorf("%w: %v", appErrors.ErrNegativeWeight, rc.Weight)
	}

	c := pattern.Condition{Weight: rc.Weight, Required: true}
	if rc.Required != nil {
		c.Required = *rc.Required
	}

	if kind == pattern.KindCastleMatched {
		if family != pattern.FamilyStrategy {
			return c, fmt.Errorf("%w: %s is only valid for strategies", appErrors.ErrMalformedParams, kind)
		}
		if len(rc.Names) == 0 {
			return c, fmt.Errorf("%w: %s needs names", appErrors.ErrMalformedParams, kind)
		}
		for _, n := range rc.Names {
			if !r.has(pattern.FamilyFormation, n) {
				return c, fmt.Errorf("%w: %q", appErrors.ErrUnknownFormation, n)
			}
		}
		c.Params = pattern.CastleMatched{Names: slices.Clone(rc.Names)}
		return c, nil
	}

	piece, err := shogi.ParsePieceKind(rc.Piece)
	if err != nil {
		return c, fmt.Errorf("%w: %v", appErrors.ErrMalformedParams, err)
	}
	owner, err := pattern.ParseOwner(rc.Owner)
	if err != nil {
		return c, err
	}

	switch kind {
	case pattern.KindPieceOnSquares:
		squares, err := parseSquares(rc.Squares)
		if err != nil {
			return c, err
		}
		c.Params = pattern.PieceOnSquares{Piece: piece, Squares: squares, Owner: owner, Strict: rc.Strict}

	case pattern.KindPieceAbsent:
		squares, err := parseSquares(rc.Squares)
		if err != nil {
			return c, err
		}
		c.Params = pattern.PieceAbsent{Piece: piece, Squares: squares, Owner: owner}

	case pattern.KindPieceOnFiles:
		if len(rc.Files) == 0 {
			return c, fmt.Errorf("%w: no files", appErrors.ErrMalformedParams)
		}
		for _, f := range rc.Files {
			if !validFile(f) {
				return c, fmt.Errorf("%w: file %d", appErrors.ErrMalformedParams, f)
			}
		}
		c.Params = pattern.PieceOnFiles{Piece: piece, Files: slices.Clone(rc.Files), Owner: owner}

	case pattern.KindPieceNotMoved:
		if len(shogi.StartingSquares(piece)) == 0 {
			return c, fmt.Errorf("%w: %s has no starting square", appErrors.ErrMalformedParams, piece)
		}
		var squares []shogi.Square
		if len(rc.Squares) > 0 {
			if squares, err = parseSquares(rc.Squares); err != nil {
				return c, err
			}
			for _, sq := range squares {
				if !shogi.IsStartingSquare(piece, sq) {
					return c, fmt.Errorf("%w: %s is not a starting square of %s", appErrors.ErrMalformedParams, sq, piece)
				}
			}
		}
		c.Params = pattern.PieceNotMoved{Piece: piece, Squares: squares}

	case pattern.KindFileControl:
		if !validFile(rc.File) {
			return c, fmt.Errorf("%w: file %d", appErrors.ErrMalformedParams, rc.File)
		}
		c.Params = pattern.FileControl{Piece: piece, File: rc.File}

	case pattern.KindPieceInHand:
		if !piece.Handable() {
			return c, fmt.Errorf("%w: %s cannot be held", appErrors.ErrMalformedParams, piece)
		}
		count := rc.Count
		if count == 0 {
			count = 1
		}
		if count < 0 {
			return c, fmt.Errorf("%w: count %d", appErrors.ErrMalformedParams, rc.Count)
		}
		c.Params = pattern.PieceInHand{Piece: piece, Owner: owner, Count: count}
	}
	return c, nil
}

func parseSquares(texts []string) ([]shogi.Square, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no squares", appErrors.ErrMalformedParams)
	}
	out := make([]shogi.Square, 0, len(texts))
	for _, t := range texts {
		sq, err := shogi.ParseSquare(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrMalformedParams, err)
		}
		out = append(out, sq)
	}
	return out, nil
}

func validFile(f int) bool { return f >= 1 && f <= shogi.BoardSize }

func errCount(err error) int {
	if me, ok := err.(*multierror.Error); ok {
		return len(me.Errors)
	}
	return 0
}

func (r *Registry) has(family pattern.Family, name string) bool {
	_, ok := r.index[family][name]
	return ok
}

// Formations returns the formation definitions in registry order.
func (r *Registry) Formations() []pattern.Definition { return slices.Clone(r.formations) }

// Strategies returns the strategy definitions in registry order.
func (r *Registry) Strategies() []pattern.Definition { return slices.Clone(r.strategies) }

// Family returns the definitions of one family in registry order.
func (r *Registry) Family(family pattern.Family) []pattern.Definition {
	return slices.Clone(r.family(family))
}

func (r *Registry) family(family pattern.Family) []pattern.Definition {
	if family == pattern.FamilyFormation {
		return r.formations
	}
	return r.strategies
}

func (r *Registry) Lookup(family pattern.Family, name string) (pattern.Definition, error) {
	i, ok := r.index[family][name]
	if !ok {
		return pattern.Definition{}, fmt.Errorf("%w: %s %q", appErrors.ErrPatternNotFound, family, name)
	}
	return r.family(family)[i], nil
}

// ByCategory returns the definitions whose category contains category, so
// "居飛車" also selects "居飛車・振り飛車".
func (r *Registry) ByCategory(family pattern.Family, category string) []pattern.Definition {
	var out []pattern.Definition
	for _, d := range r.family(family) {
		if strings.Contains(d.Category(), category) {
			out = append(out, d)
		}
	}
	return out
}

// Names lists the definition names of a family in sorted order.
func (r *Registry) Names(family pattern.Family) []string {
	names := maps.Keys(r.index[family])
	slices.Sort(names)
	return names
}

// Summaries describes every definition, formations first.
func (r *Registry) Summaries() []pattern.Summary {
	out := make([]pattern.Summary, 0, len(r.formations)+len(r.strategies))
	for _, d := range r.formations {
		out = append(out, d.Summary())
	}
	for _, d := range r.strategies {
		out = append(out, d.Summary())
	}
	return out
}
