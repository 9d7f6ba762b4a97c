package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.Len(t, r.Formations(), 40)
	assert.Len(t, r.Strategies(), 39)

	yagura, err := r.Lookup(pattern.FamilyFormation, "矢倉")
	require.NoError(t, err)
	assert.Equal(t, "居飛車", yagura.Category())
	assert.InDelta(t, 0.7, yagura.MinConfidence(), 1e-9)
	require.Equal(t, 3, yagura.Len())

	first, ok := yagura.Condition(0).Params.(pattern.PieceOnSquares)
	require.True(t, ok)
	assert.Equal(t, shogi.Gold, first.Piece)
	assert.True(t, first.Strict)
	assert.Equal(t, []shogi.Square{shogi.MustSquare(7, 8)}, first.Squares)

	ibisha, err := r.Lookup(pattern.FamilyStrategy, "居飛車")
	require.NoError(t, err)
	require.Equal(t, 2, ibisha.Len())
	assert.True(t, ibisha.Condition(0).Required)
	assert.False(t, ibisha.Condition(1).Required)
	assert.Equal(t, pattern.KindPieceOnFiles, ibisha.Condition(1).Kind())
}

func TestLookupMissing(t *testing.T) {
	_, err := Default().Lookup(pattern.FamilyStrategy, "矢倉")
	assert.ErrorIs(t, err, appErrors.ErrPatternNotFound)
}

func TestNamesAndCategories(t *testing.T) {
	r := Default()

	names := r.Names(pattern.FamilyFormation)
	assert.Len(t, names, 40)
	assert.IsNonDecreasing(t, names)

	var both bool
	for _, d := range r.ByCategory(pattern.FamilyFormation, "振り飛車") {
		assert.Contains(t, d.Category(), "振り飛車")
		if d.Name() == "ビッグ4" {
			both = true
		}
	}
	assert.True(t, both, "mixed categories match either side")

	assert.Len(t, r.Summaries(), 79)
}

func TestConditionsAreCopies(t *testing.T) {
	r := Default()
	d, err := r.Lookup(pattern.FamilyFormation, "美濃囲い")
	require.NoError(t, err)

	cs := d.Conditions()
	cs[0].Weight = 99

	again, _ := r.Lookup(pattern.FamilyFormation, "美濃囲い")
	assert.InDelta(t, 0.35, again.Condition(0).Weight, 1e-9)
}

func TestNewReportsEveryProblem(t *testing.T) {
	formations := []RawDefinition{
		{Name: "", MinConfidence: 0.5, Conditions: []RawCondition{on("金", 1, "7八")}},
		{Name: "a", MinConfidence: 1.5, Conditions: []RawCondition{on("金", 1, "7八")}},
		{Name: "b", MinConfidence: 0.5, Conditions: []RawCondition{on("金", -1, "7八")}},
		{Name: "c", MinConfidence: 0.5, Conditions: []RawCondition{{Kind: "king-safety", Piece: "玉", Weight: 1}}},
		{Name: "d", MinConfidence: 0.5, Conditions: []RawCondition{on("金", 0, "7八")}},
		{Name: "e", MinConfidence: 0.5, Conditions: []RawCondition{{Kind: "castle-already-matched", Names: []string{"e"}, Weight: 1}}},
		{Name: "f", MinConfidence: 0.5, Conditions: []RawCondition{on("金", 1, "0八")}},
		{Name: "ok", MinConfidence: 0.5, Conditions: []RawCondition{on("金", 1, "7八")}},
		{Name: "ok", MinConfidence: 0.5, Conditions: []RawCondition{on("金", 1, "7八")}},
	}
	strategies := []RawDefinition{
		{Name: "s1", MinConfidence: 0.5, Conditions: []RawCondition{{Kind: "castle-already-matched", Names: []string{"nope"}, Weight: 1}}},
		{Name: "s2", MinConfidence: 0.5, Conditions: []RawCondition{{Kind: "piece-not-moved", Piece: "飛", Squares: []string{"8八"}, Weight: 1}}},
	}

	_, err := New(formations, strategies)
	require.Error(t, err)

	for _, want := range []error{
		appErrors.ErrEmptyName,
		appErrors.ErrMinConfidenceRange,
		appErrors.ErrNegativeWeight,
		appErrors.ErrUnknownConditionKind,
		appErrors.ErrNoWeight,
		appErrors.ErrMalformedParams,
		appErrors.ErrDuplicateName,
		appErrors.ErrUnknownFormation,
	} {
		assert.ErrorIs(t, err, want)
	}

	var cfg *ConfigError
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, pattern.FamilyFormation, cfg.Family)
}

func TestConfigErrorLocatesCondition(t *testing.T) {
	_, err := New(nil, []RawDefinition{
		{Name: "s", MinConfidence: 0.5, Conditions: []RawCondition{
			on("飛", 1, "2八"),
			{Kind: "file-control", Piece: "飛", File: 10, Weight: 1},
		}},
	})
	var cfg *ConfigError
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, "s", cfg.Definition)
	assert.Equal(t, 1, cfg.Condition)
	assert.ErrorIs(t, cfg, appErrors.ErrMalformedParams)
	assert.Contains(t, cfg.Error(), `strategy "s" condition 1`)
}

func TestCastleMatchedResolvesFormations(t *testing.T) {
	r, err := New(
		[]RawDefinition{{Name: "美濃囲い", MinConfidence: 0.5, Conditions: []RawCondition{on("玉", 1, "2八")}}},
		[]RawDefinition{{Name: "対抗形", MinConfidence: 0.5, Conditions: []RawCondition{
			{Kind: "castle_already_matched", Names: []string{"美濃囲い"}, Weight: 1},
		}}},
	)
	require.NoError(t, err)

	d, err := r.Lookup(pattern.FamilyStrategy, "対抗形")
	require.NoError(t, err)
	assert.Equal(t, pattern.CastleMatched{Names: []string{"美濃囲い"}}, d.Condition(0).Params)
}

func TestCompileDefaults(t *testing.T) {
	r, err := New(nil, []RawDefinition{{Name: "s", MinConfidence: 0, Conditions: []RawCondition{
		{Kind: "piece-in-hand", Piece: "角", Weight: 1},
		{Kind: "piece-not-moved", Piece: "銀", Weight: 1},
		{Kind: "negated", Piece: "歩", Squares: []string{"2六"}, Owner: "opponent", Weight: 1},
	}}})
	require.NoError(t, err)

	d, _ := r.Lookup(pattern.FamilyStrategy, "s")
	assert.Equal(t, pattern.PieceInHand{Piece: shogi.Bishop, Owner: pattern.OwnerSelf, Count: 1}, d.Condition(0).Params)
	assert.Equal(t, pattern.PieceNotMoved{Piece: shogi.Silver}, d.Condition(1).Params)
	assert.Equal(t, pattern.KindPieceAbsent, d.Condition(2).Kind())
	assert.True(t, d.Condition(2).Required)
}

func TestMerge(t *testing.T) {
	base := []RawDefinition{{Name: "a"}, {Name: "b"}}
	merged := Merge(base, []RawDefinition{{Name: "b", Category: "new"}, {Name: "c"}})

	require.Len(t, merged, 3)
	assert.Equal(t, "new", merged[1].Category)
	assert.Equal(t, "c", merged[2].Name)
	assert.Empty(t, base[1].Category)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := `
formations:
  - name: 矢倉
    category: 居飛車
    min_confidence: 0.6
    conditions:
      - kind: piece-on-squares
        piece: 金
        squares: ["7八"]
        weight: 1
  - name: 端玉
    category: その他
    min_confidence: 0.5
    conditions:
      - piece: 玉
        squares: ["1九"]
        strict: true
        weight: 1
strategies:
  - name: 角交換
    category: 居飛車
    min_confidence: 0.5
    conditions:
      - kind: piece-in-hand
        piece: 角
        weight: 0.5
      - kind: castle-already-matched
        names: ["端玉"]
        required: false
        weight: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := FromFile(path)
	require.NoError(t, err)
	assert.Len(t, r.Formations(), 41)
	assert.Len(t, r.Strategies(), 40)

	yagura, err := r.Lookup(pattern.FamilyFormation, "矢倉")
	require.NoError(t, err)
	assert.Equal(t, 1, yagura.Len())

	kakugawari, err := r.Lookup(pattern.FamilyStrategy, "角交換")
	require.NoError(t, err)
	assert.False(t, kakugawari.Condition(1).Required)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	r, err := FromFile("")
	require.NoError(t, err)
	assert.Len(t, r.Formations(), 40)
}

func TestLoadFileDefaultsMinConfidence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := `
strategies:
  - name: 端歩
    category: その他
    conditions:
      - kind: piece-on-files
        piece: 歩
        files: [1]
        required: false
        weight: 1
  - name: 無条件
    category: その他
    min_confidence: 0
    conditions:
      - kind: piece-absent
        piece: 飛
        squares: ["5五"]
        required: false
        weight: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, strategies, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	assert.InDelta(t, DefaultMinConfidence, strategies[0].MinConfidence, 1e-9)
	assert.Zero(t, strategies[1].MinConfidence)
}
