package schemas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeWireForm(t *testing.T) {
	// Numeric sizes travel as JSON numbers, unit-bearing sizes as strings.
	spec := SkeletonSpec{
		Children: []SkeletonPrimitiveSpec{
			{Key: "a", Shape: ShapeRect, Width: sizePtr(Px(400)), Height: sizePtr(Unit("2rem"))},
		},
		Layout: LayoutStack,
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeSpec(&buf, &spec))
	out := buf.String()
	assert.Contains(t, out, `"width": 400`)
	assert.Contains(t, out, `"height": "2rem"`)

	decoded, err := DecodeSpec(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, decoded.Children, 1)
	got := decoded.Children[0]
	require.NotNil(t, got.Width)
	assert.True(t, got.Width.IsNumeric())
	assert.Equal(t, 400.0, got.Width.Pixels())
	require.NotNil(t, got.Height)
	assert.False(t, got.Height.IsNumeric())
	assert.Equal(t, "2rem", got.Height.Raw())
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "400px", Px(400).String())
	assert.Equal(t, "1.25rem", Unit("1.25rem").String())
	assert.Equal(t, "", Size{}.String())
	assert.False(t, Size{}.IsSet())
}

func TestShapeValid(t *testing.T) {
	assert.True(t, ShapeRect.Valid())
	assert.True(t, ShapeCircle.Valid())
	assert.True(t, ShapeLine.Valid())
	assert.False(t, Shape("blob").Valid())
	assert.False(t, Shape("").Valid())
}

func TestMatchPredicate(t *testing.T) {
	node := &ElementMetadata{TagName: "img", ClassName: "avatar rounded"}

	assert.True(t, MatchPredicate{}.Matches(node), "zero predicate matches everything")
	assert.True(t, MatchPredicate{Tag: "img"}.Matches(node))
	assert.True(t, MatchPredicate{Tag: "IMG"}.Matches(node), "tag match is case-insensitive")
	assert.True(t, MatchPredicate{Tag: "img", ClassContains: "avatar"}.Matches(node))
	assert.False(t, MatchPredicate{Tag: "div", ClassContains: "avatar"}.Matches(node), "conditions AND together")
	assert.False(t, MatchPredicate{ClassContains: "banner"}.Matches(node))
	assert.False(t, MatchPredicate{}.Matches(nil))
}

func TestDecodeRules(t *testing.T) {
	src := `[
		{"match": {"tag": "h1"}, "to": {"shape": "line", "lines": 1}, "priority": 50},
		{"match": {"classContains": "decor"}, "to": {"skip": true}, "priority": 100}
	]`
	rules, err := DecodeRules(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, ShapeLine, rules[0].To.Shape)
	assert.True(t, rules[1].To.Skip)
	assert.Equal(t, 100, rules[1].Priority)
}

func sizePtr(s Size) *Size { return &s }
