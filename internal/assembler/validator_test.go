package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

func TestValidateAcceptsWellFormedSpec(t *testing.T) {
	spec := &schemas.SkeletonSpec{
		Layout: schemas.LayoutStack,
		Children: []schemas.SkeletonPrimitiveSpec{
			{Key: "div[1]", Shape: schemas.ShapeRect},
			{Key: "div[1]/p[1]", Shape: schemas.ShapeLine, Lines: 3},
			{Key: "div[1]/img[1]", Shape: schemas.ShapeCircle},
		},
	}

	result := Validate(spec)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateNilSpec(t *testing.T) {
	result := Validate(nil)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"spec is missing"}, result.Errors)
}

func TestValidateMissingChildrenSequence(t *testing.T) {
	result := Validate(&schemas.SkeletonSpec{Layout: schemas.LayoutStack})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "spec has no children sequence")
}

func TestValidateReportsEveryViolation(t *testing.T) {
	// One child with no key and two children sharing a key: both problems
	// must surface in a single pass.
	spec := &schemas.SkeletonSpec{
		Layout: schemas.LayoutStack,
		Children: []schemas.SkeletonPrimitiveSpec{
			{Key: "", Shape: schemas.ShapeRect},
			{Key: "div[1]", Shape: schemas.ShapeRect},
			{Key: "div[1]", Shape: schemas.ShapeRect},
		},
	}

	result := Validate(spec)
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors, "child 0 is missing a key")
	assert.Contains(t, result.Errors, `duplicate key "div[1]"`)
}

func TestValidateDuplicateReportedOncePerKey(t *testing.T) {
	spec := &schemas.SkeletonSpec{
		Children: []schemas.SkeletonPrimitiveSpec{
			{Key: "a", Shape: schemas.ShapeRect},
			{Key: "a", Shape: schemas.ShapeRect},
			{Key: "a", Shape: schemas.ShapeRect},
		},
	}

	result := Validate(spec)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{`duplicate key "a"`}, result.Errors)
}

func TestValidateUnrecognizedShape(t *testing.T) {
	spec := &schemas.SkeletonSpec{
		Children: []schemas.SkeletonPrimitiveSpec{
			{Key: "a", Shape: "blob"},
		},
	}

	result := Validate(spec)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{`child 0 has unrecognized shape "blob"`}, result.Errors)
}

func TestValidateNegativeLineCount(t *testing.T) {
	spec := &schemas.SkeletonSpec{
		Children: []schemas.SkeletonPrimitiveSpec{
			{Key: "a", Shape: schemas.ShapeLine, Lines: -1},
		},
	}

	result := Validate(spec)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"child 0 has non-positive line count -1"}, result.Errors)
}

func TestValidateAssembledOutput(t *testing.T) {
	spec := Assemble(card(), nil, Options{})
	result := Validate(&spec)
	assert.True(t, result.IsValid, "assembled specs are valid by construction: %v", result.Errors)
}
