package scanner

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

// keptAttributes is the curated subset carried into the snapshot. Class is
// excluded; it travels on its own field.
var keptAttributes = map[string]bool{
	"id":          true,
	"src":         true,
	"alt":         true,
	"href":        true,
	"type":        true,
	"role":        true,
	"placeholder": true,
	"title":       true,
	"aria-label":  true,
}

// inlineStyleKeys translates CSS property names from inline style attributes
// to the reduced computed-style subset.
var inlineStyleKeys = map[string]string{
	"display":     schemas.StyleDisplay,
	"position":    schemas.StylePosition,
	"font-size":   schemas.StyleFontSize,
	"flex-grow":   schemas.StyleFlexGrow,
	"grid-column": schemas.StyleGridColumn,
	"width":       schemas.StyleWidth,
	"height":      schemas.StyleHeight,
	"min-width":   schemas.StyleMinWidth,
	"min-height":  schemas.StyleMinHeight,
	"max-width":   schemas.StyleMaxWidth,
	"max-height":  schemas.StyleMaxHeight,
}

// defaultFontSizes approximates the user-agent typography scale for static
// documents, where no real style engine has run.
var defaultFontSizes = map[string]string{
	"h1": "32px",
	"h2": "24px",
	"h3": "18.72px",
	"h4": "16px",
	"h5": "13.28px",
	"h6": "10.72px",
}

var blockTags = map[string]bool{
	"div": true, "p": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "li": true, "form": true,
	"header": true, "footer": true, "section": true, "article": true,
	"nav": true, "main": true, "aside": true, "table": true, "figure": true,
	"blockquote": true, "pre": true,
}

var inlineBlockTags = map[string]bool{
	"button": true, "input": true, "select": true, "textarea": true,
	"img": true, "video": true, "canvas": true,
}

// sizedTags may declare intrinsic dimensions via width/height attributes,
// the only measurement a static document can offer.
var sizedTags = map[string]bool{
	"img": true, "video": true, "canvas": true, "iframe": true, "svg": true,
}

// HTMLElement adapts a parsed html.Node to the Element interface. Static
// markup carries no layout, so bounding boxes read as unmeasured except
// where width/height attributes declare intrinsic sizes.
type HTMLElement struct {
	node *html.Node
}

// FromNode wraps an element node directly. Returns nil for non-element
// nodes so a caller holding a text or comment node gets the "no reference"
// path instead of a broken snapshot.
func FromNode(n *html.Node) *HTMLElement {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &HTMLElement{node: n}
}

// ParseHTML parses a document or fragment and returns the root element to
// scan: the first element under <body>.
func ParseHTML(r io.Reader) (*HTMLElement, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	if body := htmlquery.FindOne(doc, "//body"); body != nil {
		for n := body.FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.ElementNode {
				return &HTMLElement{node: n}, nil
			}
		}
	}
	return nil, fmt.Errorf("document has no element content")
}

func (e *HTMLElement) TagName() string {
	return strings.ToLower(e.node.Data)
}

func (e *HTMLElement) ClassName() string {
	return htmlquery.SelectAttr(e.node, "class")
}

// OwnText concatenates direct text children with collapsed whitespace.
func (e *HTMLElement) OwnText() string {
	var parts []string
	for n := e.node.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.TextNode {
			parts = append(parts, strings.Fields(n.Data)...)
		}
	}
	return strings.Join(parts, " ")
}

func (e *HTMLElement) BoundingBox() schemas.BoxDimensions {
	if !sizedTags[e.TagName()] {
		return schemas.BoxDimensions{}
	}
	w, _ := strconv.ParseFloat(htmlquery.SelectAttr(e.node, "width"), 64)
	h, _ := strconv.ParseFloat(htmlquery.SelectAttr(e.node, "height"), 64)
	if w <= 0 || h <= 0 {
		return schemas.BoxDimensions{}
	}
	return schemas.BoxDimensions{Width: w, Height: h}
}

// ComputedStyle resolves the reduced style subset from tag defaults plus the
// inline style attribute; inline declarations win.
func (e *HTMLElement) ComputedStyle() map[string]string {
	style := map[string]string{
		schemas.StyleDisplay:  e.defaultDisplay(),
		schemas.StyleFontSize: e.defaultFontSize(),
	}
	for prop, value := range parseInlineStyle(htmlquery.SelectAttr(e.node, "style")) {
		style[prop] = value
	}
	return style
}

func (e *HTMLElement) defaultDisplay() string {
	tag := e.TagName()
	switch {
	case blockTags[tag]:
		return "block"
	case inlineBlockTags[tag]:
		return "inline-block"
	default:
		return "inline"
	}
}

func (e *HTMLElement) defaultFontSize() string {
	if size, ok := defaultFontSizes[e.TagName()]; ok {
		return size
	}
	return "16px"
}

func (e *HTMLElement) Attributes() map[string]string {
	var attrs map[string]string
	for _, a := range e.node.Attr {
		name := strings.ToLower(a.Key)
		if !keptAttributes[name] {
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[name] = a.Val
	}
	return attrs
}

func (e *HTMLElement) Children() []Element {
	var kids []Element
	for n := e.node.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			kids = append(kids, &HTMLElement{node: n})
		}
	}
	return kids
}

// parseInlineStyle splits a style="" attribute into the reduced property
// subset. Unknown properties and malformed declarations are dropped.
func parseInlineStyle(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	var style map[string]string
	for _, decl := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key, known := inlineStyleKeys[strings.ToLower(strings.TrimSpace(prop))]
		if !known {
			continue
		}
		if style == nil {
			style = make(map[string]string)
		}
		style[key] = strings.TrimSpace(value)
	}
	return style
}
