package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

// fakeElement is a hand-built tree node for exercising the walk without a
// parser in the loop.
type fakeElement struct {
	tag   string
	class string
	text  string
	box   schemas.BoxDimensions
	style map[string]string
	attrs map[string]string
	kids  []Element
}

func (f *fakeElement) TagName() string                    { return f.tag }
func (f *fakeElement) ClassName() string                  { return f.class }
func (f *fakeElement) OwnText() string                    { return f.text }
func (f *fakeElement) BoundingBox() schemas.BoxDimensions { return f.box }
func (f *fakeElement) ComputedStyle() map[string]string   { return f.style }
func (f *fakeElement) Attributes() map[string]string      { return f.attrs }
func (f *fakeElement) Children() []Element                { return f.kids }

func TestScanNilRoot(t *testing.T) {
	assert.Nil(t, Scan(nil))
}

func TestScanSnapshotsTree(t *testing.T) {
	root := &fakeElement{
		tag:   "DIV",
		class: "card",
		box:   schemas.BoxDimensions{Width: 400, Height: 300},
		style: map[string]string{schemas.StyleDisplay: "block"},
		kids: []Element{
			&fakeElement{tag: "h2", text: "Title"},
			nil,
			&fakeElement{tag: "p", text: "Body"},
		},
	}

	metas := Scan(root)
	require.Len(t, metas, 1)

	meta := metas[0]
	assert.Equal(t, "div", meta.TagName, "tag names are lower-cased")
	assert.Equal(t, "card", meta.ClassName)
	assert.Equal(t, 400.0, meta.Dimensions.Width)

	require.Len(t, meta.Children, 2, "nil children are dropped")
	assert.Equal(t, "h2", meta.Children[0].TagName)
	assert.Equal(t, "p", meta.Children[1].TagName)
}

func TestScanSnapshotDetachesFromSource(t *testing.T) {
	style := map[string]string{schemas.StyleDisplay: "block"}
	root := &fakeElement{tag: "div", style: style}

	metas := Scan(root)
	require.Len(t, metas, 1)

	style[schemas.StyleDisplay] = "none"
	assert.Equal(t, "block", metas[0].ComputedStyle[schemas.StyleDisplay])
}

func TestScanClampsNegativeMeasurements(t *testing.T) {
	root := &fakeElement{
		tag: "div",
		box: schemas.BoxDimensions{Width: -10, Height: 20, X: -5, Y: 3},
	}

	metas := Scan(root)
	require.Len(t, metas, 1)
	assert.Equal(t, 0.0, metas[0].Dimensions.Width)
	assert.Equal(t, 20.0, metas[0].Dimensions.Height)
	assert.Equal(t, 0.0, metas[0].Dimensions.X)
	assert.Equal(t, 3.0, metas[0].Dimensions.Y)
	assert.False(t, metas[0].Dimensions.Measured())
}
