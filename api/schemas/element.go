package schemas

// Reduced computed-style property keys the pipeline cares about. Element
// sources populate ElementMetadata.ComputedStyle with this subset only.
const (
	StyleDisplay    = "display"
	StylePosition   = "position"
	StyleFontSize   = "fontSize"
	StyleFlexGrow   = "flexGrow"
	StyleGridColumn = "gridColumn"
	StyleWidth      = "width"
	StyleHeight     = "height"
	StyleMinWidth   = "minWidth"
	StyleMinHeight  = "minHeight"
	StyleMaxWidth   = "maxWidth"
	StyleMaxHeight  = "maxHeight"
)

// BoxDimensions is a measured bounding box. All values are >= 0; zero
// width/height means the element was never laid out ("unmeasured").
type BoxDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Measured reports whether the box holds a real layout measurement.
func (b BoxDimensions) Measured() bool {
	return b.Width > 0 && b.Height > 0
}

// ElementMetadata is an immutable value snapshot of one rendered node.
// The tree is finite and acyclic and holds no reference back to the source
// element, so it stays safe to retain after the element unmounts.
type ElementMetadata struct {
	TagName       string            `json:"tagName"`
	ClassName     string            `json:"className"`
	TextContent   string            `json:"textContent"`
	Dimensions    BoxDimensions     `json:"dimensions"`
	ComputedStyle map[string]string `json:"computedStyle,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	Children      []ElementMetadata `json:"children,omitempty"`
}

// Style returns a computed-style property, "" when absent.
func (m *ElementMetadata) Style(key string) string {
	if m.ComputedStyle == nil {
		return ""
	}
	return m.ComputedStyle[key]
}
