package layout

import (
	"strings"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

// ContainerContext classifies the layout context an element participates in.
type ContainerContext string

const (
	ContextFlex     ContainerContext = "flex"
	ContextGrid     ContainerContext = "grid"
	ContextAbsolute ContainerContext = "absolute"
	ContextInline   ContainerContext = "inline"
	ContextBlock    ContainerContext = "block"
	ContextUnknown  ContainerContext = "unknown"
)

// ContainerInfo is the result of container analysis: the classified
// context, the flexibility signals, and the recommended dimension strategy.
type ContainerInfo struct {
	Context            ContainerContext
	IsFlexible         bool
	HasFixedDimensions bool
	Recommended        schemas.Strategy
}

// AnalyzeContainerLayout classifies a node's layout context from its own
// and its parent's reduced style and recommends a dimension strategy.
// Preserve is the universal fallback on ambiguity.
func AnalyzeContainerLayout(meta, parent *schemas.ElementMetadata) ContainerInfo {
	if meta == nil {
		return ContainerInfo{Context: ContextUnknown, Recommended: schemas.StrategyPreserve}
	}

	info := ContainerInfo{
		Context:            classifyContext(meta, parent),
		IsFlexible:         isFlexible(meta),
		HasFixedDimensions: hasFixedDimensions(meta),
	}

	switch {
	case info.Context == ContextFlex && info.IsFlexible:
		info.Recommended = schemas.StrategyFlexible
	case info.Context == ContextAbsolute || info.HasFixedDimensions:
		info.Recommended = schemas.StrategyPreserve
	case info.Context == ContextInline:
		info.Recommended = schemas.StrategyMinimal
	default:
		info.Recommended = schemas.StrategyPreserve
	}
	return info
}

func classifyContext(meta, parent *schemas.ElementMetadata) ContainerContext {
	if parent != nil {
		switch parent.Style(schemas.StyleDisplay) {
		case "flex", "inline-flex":
			return ContextFlex
		case "grid", "inline-grid":
			return ContextGrid
		}
	}
	switch meta.Style(schemas.StylePosition) {
	case "absolute", "fixed":
		return ContextAbsolute
	}
	switch meta.Style(schemas.StyleDisplay) {
	case "inline", "inline-block":
		return ContextInline
	}
	return ContextBlock
}

// isFlexible reports whether the element's size follows its container:
// auto or percentage width, a non-zero flex-grow, or a fractional grid
// column.
func isFlexible(meta *schemas.ElementMetadata) bool {
	width := strings.TrimSpace(meta.Style(schemas.StyleWidth))
	if width == "" || width == "auto" || isPercent(width) {
		return true
	}
	if grow := parseCSSSize(meta.Style(schemas.StyleFlexGrow)); grow.IsNumeric() && grow.Pixels() > 0 {
		return true
	}
	return strings.Contains(meta.Style(schemas.StyleGridColumn), "fr")
}

// hasFixedDimensions reports explicit, non-percentage width and height.
func hasFixedDimensions(meta *schemas.ElementMetadata) bool {
	width := parseCSSSize(meta.Style(schemas.StyleWidth))
	height := parseCSSSize(meta.Style(schemas.StyleHeight))
	if !width.IsSet() || !height.IsSet() {
		return false
	}
	return !isPercent(meta.Style(schemas.StyleWidth)) && !isPercent(meta.Style(schemas.StyleHeight))
}
