// Element-tree scanning: walks a rendered element tree and produces the
// immutable metadata snapshot the mapping and layout engines consume.
package scanner

import (
	"strings"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

// Element is the generic "rendered element tree" abstraction. Concrete
// sources (static HTML documents, a live browser page) adapt their node
// types to this interface; everything downstream only ever sees the
// metadata snapshot.
type Element interface {
	// TagName returns the element kind; the scanner lower-cases it.
	TagName() string
	// ClassName returns the raw class list as written.
	ClassName() string
	// OwnText returns the node's own visible text, excluding descendants.
	OwnText() string
	// BoundingBox returns the measured box. Zero width/height means the
	// element has not been laid out; that is not an error.
	BoundingBox() schemas.BoxDimensions
	// ComputedStyle returns the reduced style subset (schemas.Style* keys).
	ComputedStyle() map[string]string
	// Attributes returns a curated attribute subset.
	Attributes() map[string]string
	// Children returns child elements in document order.
	Children() []Element
}

// Scan snapshots the tree rooted at root into the top-level metadata
// sequence. A nil root yields an empty sequence; the caller decides whether
// that is a "no reference" condition. The walk never fails and never
// mutates the source tree, and the returned snapshot holds no reference
// back into it.
func Scan(root Element) []schemas.ElementMetadata {
	if root == nil {
		return nil
	}
	return []schemas.ElementMetadata{snapshot(root)}
}

func snapshot(el Element) schemas.ElementMetadata {
	meta := schemas.ElementMetadata{
		TagName:       strings.ToLower(el.TagName()),
		ClassName:     el.ClassName(),
		TextContent:   el.OwnText(),
		Dimensions:    clampBox(el.BoundingBox()),
		ComputedStyle: copyStringMap(el.ComputedStyle()),
		Attributes:    copyStringMap(el.Attributes()),
	}

	kids := el.Children()
	if len(kids) > 0 {
		meta.Children = make([]schemas.ElementMetadata, 0, len(kids))
		for _, kid := range kids {
			if kid == nil {
				continue
			}
			meta.Children = append(meta.Children, snapshot(kid))
		}
	}
	return meta
}

// clampBox floors negative measurements at zero so a half-rendered element
// reads as unmeasured rather than poisoning later arithmetic.
func clampBox(box schemas.BoxDimensions) schemas.BoxDimensions {
	if box.Width < 0 {
		box.Width = 0
	}
	if box.Height < 0 {
		box.Height = 0
	}
	if box.X < 0 {
		box.X = 0
	}
	if box.Y < 0 {
		box.Y = 0
	}
	return box
}

func copyStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
