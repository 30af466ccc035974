package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

func parseFragment(t *testing.T, markup string) *HTMLElement {
	t.Helper()
	root, err := ParseHTML(strings.NewReader(markup))
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

func TestParseHTMLPicksFirstBodyElement(t *testing.T) {
	root := parseFragment(t, `<html><body>stray text<div class="card"><p>Hi</p></div></body></html>`)
	assert.Equal(t, "div", root.TagName())
	assert.Equal(t, "card", root.ClassName())
}

func TestParseHTMLFragment(t *testing.T) {
	// The parser wraps bare fragments in html/body on its own.
	root := parseFragment(t, `<section id="hero"><h1>Welcome</h1></section>`)
	assert.Equal(t, "section", root.TagName())
}

func TestParseHTMLEmptyDocument(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("just text, no elements"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no element content")
}

func TestOwnTextCollapsesWhitespace(t *testing.T) {
	root := parseFragment(t, "<p>\n  Hello\t \n  world  <span>ignored</span>\n</p>")
	assert.Equal(t, "Hello world", root.OwnText(), "descendant text is excluded")
}

func TestChildrenDocumentOrder(t *testing.T) {
	root := parseFragment(t, `<div><img src="a.png"><h2>T</h2><p>one</p><p>two</p></div>`)

	kids := root.Children()
	require.Len(t, kids, 4)
	tags := make([]string, len(kids))
	for i, kid := range kids {
		tags[i] = kid.(*HTMLElement).TagName()
	}
	assert.Equal(t, []string{"img", "h2", "p", "p"}, tags)
}

func TestBoundingBoxFromSizeAttributes(t *testing.T) {
	root := parseFragment(t, `<img src="a.png" width="320" height="240">`)
	box := root.BoundingBox()
	assert.Equal(t, 320.0, box.Width)
	assert.Equal(t, 240.0, box.Height)
	assert.True(t, box.Measured())
}

func TestBoundingBoxIgnoresSizeOnUnsizedTags(t *testing.T) {
	// A width attribute on a div is not an intrinsic size.
	root := parseFragment(t, `<div width="320" height="240">x</div>`)
	assert.False(t, root.BoundingBox().Measured())
}

func TestBoundingBoxPartialAttributes(t *testing.T) {
	root := parseFragment(t, `<img src="a.png" width="320">`)
	assert.False(t, root.BoundingBox().Measured())
}

func TestComputedStyleDefaults(t *testing.T) {
	div := parseFragment(t, `<div>x</div>`)
	style := div.ComputedStyle()
	assert.Equal(t, "block", style[schemas.StyleDisplay])
	assert.Equal(t, "16px", style[schemas.StyleFontSize])

	h1 := parseFragment(t, `<h1>x</h1>`)
	assert.Equal(t, "32px", h1.ComputedStyle()[schemas.StyleFontSize])

	button := parseFragment(t, `<button>x</button>`)
	assert.Equal(t, "inline-block", button.ComputedStyle()[schemas.StyleDisplay])

	span := parseFragment(t, `<span>x</span>`)
	assert.Equal(t, "inline", span.ComputedStyle()[schemas.StyleDisplay])
}

func TestComputedStyleInlineWins(t *testing.T) {
	root := parseFragment(t, `<div style="display: flex; width: 50%; color: red">x</div>`)
	style := root.ComputedStyle()
	assert.Equal(t, "flex", style[schemas.StyleDisplay], "inline declaration overrides the tag default")
	assert.Equal(t, "50%", style[schemas.StyleWidth])
	_, hasColor := style["color"]
	assert.False(t, hasColor, "properties outside the reduced subset are dropped")
}

func TestAttributesCuratedSubset(t *testing.T) {
	root := parseFragment(t, `<input type="text" placeholder="Search" data-test="x" class="field">`)
	attrs := root.Attributes()
	assert.Equal(t, "text", attrs["type"])
	assert.Equal(t, "Search", attrs["placeholder"])
	_, hasData := attrs["data-test"]
	assert.False(t, hasData)
	_, hasClass := attrs["class"]
	assert.False(t, hasClass, "class travels on its own field")
}

func TestScanParsedDocument(t *testing.T) {
	root := parseFragment(t, `<div class="card"><img src="a.png" width="48" height="48" class="avatar"><p>Some text</p></div>`)

	metas := Scan(root)
	require.Len(t, metas, 1)
	require.Len(t, metas[0].Children, 2)

	avatar := metas[0].Children[0]
	assert.Equal(t, "img", avatar.TagName)
	assert.Equal(t, "avatar", avatar.ClassName)
	assert.Equal(t, 48.0, avatar.Dimensions.Width)

	text := metas[0].Children[1]
	assert.Equal(t, "Some text", text.TextContent)
}

func TestFromNodeRejectsNonElements(t *testing.T) {
	assert.Nil(t, FromNode(nil))
}
