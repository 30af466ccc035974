// Layout preservation: chooses placeholder dimensions that occupy exactly
// the space the real content will, so the swap-in causes no layout shift.
// Every computation resolves to a value or a deterministic fallback; no
// failure escapes this package.
package layout

import (
	"strconv"
	"unicode/utf8"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

// Measurer is a live element that can still be measured. Element sources
// satisfy it; a nil Measurer means only the snapshot is available.
type Measurer interface {
	BoundingBox() schemas.BoxDimensions
	ComputedStyle() map[string]string
}

// Options steers the dimension decision.
type Options struct {
	// PreserveLayout requests footprint-exact dimensions. When false the
	// engine estimates a best-effort size from content instead.
	PreserveLayout bool
	// Strategy overrides container analysis; empty or auto defers to it.
	Strategy schemas.Strategy
	// Parent supplies the parent snapshot for container analysis.
	Parent *schemas.ElementMetadata
}

// Result pairs the computed dimensions with the policy that produced them.
type Result struct {
	Dimensions schemas.PreservedDimensions
	Strategy   schemas.Strategy
}

// ExtractActualDimensions resolves a node's footprint: the measured box
// when present, else declared CSS width/height (ignoring the auto
// sentinel), else the fallback-by-tag table. Min/max constraints are
// carried when the style reports values other than its own defaults.
func ExtractActualDimensions(meta *schemas.ElementMetadata) schemas.PreservedDimensions {
	var dims schemas.PreservedDimensions
	if meta == nil {
		dims.Width, dims.Height = FallbackDimensions("")
		return dims
	}

	if meta.Dimensions.Measured() {
		dims.Width = schemas.Px(meta.Dimensions.Width)
		dims.Height = schemas.Px(meta.Dimensions.Height)
	} else {
		declaredW := parseCSSSize(meta.Style(schemas.StyleWidth))
		declaredH := parseCSSSize(meta.Style(schemas.StyleHeight))
		fallbackW, fallbackH := FallbackDimensions(meta.TagName)
		if declaredW.IsSet() {
			dims.Width = declaredW
		} else {
			dims.Width = fallbackW
		}
		if declaredH.IsSet() {
			dims.Height = declaredH
		} else {
			dims.Height = fallbackH
		}
	}

	dims.MinWidth = minConstraint(meta.Style(schemas.StyleMinWidth))
	dims.MinHeight = minConstraint(meta.Style(schemas.StyleMinHeight))
	dims.MaxWidth = maxConstraint(meta.Style(schemas.StyleMaxWidth))
	dims.MaxHeight = maxConstraint(meta.Style(schemas.StyleMaxHeight))
	return dims
}

// CalculateContentBasedDimensions estimates a size when layout preservation
// is not requested: the measured box if present, a text estimate for
// text-bearing nodes, the fallback table otherwise.
func CalculateContentBasedDimensions(meta *schemas.ElementMetadata) schemas.PreservedDimensions {
	var dims schemas.PreservedDimensions
	if meta == nil {
		dims.Width, dims.Height = FallbackDimensions("")
		return dims
	}

	if meta.Dimensions.Measured() {
		dims.Width = schemas.Px(meta.Dimensions.Width)
		dims.Height = schemas.Px(meta.Dimensions.Height)
		return dims
	}

	if meta.TextContent != "" {
		fontSize := fontSizeOf(meta)
		width := float64(utf8.RuneCountInString(meta.TextContent)) * fontSize * CharWidthRatio
		if width > MaxEstimatedTextWidth {
			width = MaxEstimatedTextWidth
		}
		dims.Width = schemas.Px(width)
		dims.Height = schemas.Px(fontSize * LineHeightMultiplier)
		return dims
	}

	dims.Width, dims.Height = FallbackDimensions(meta.TagName)
	return dims
}

// GenerateOptimalSkeletonDimensions is the decision function. Layout
// preservation off delegates to the content estimate. With preservation on,
// the strategy (explicit or from container analysis) shapes the extracted
// footprint: flexible forces a full-width placeholder, minimal pins the
// measured width as a minimum behind an auto width, preserve keeps the
// footprint untouched.
func GenerateOptimalSkeletonDimensions(meta *schemas.ElementMetadata, live Measurer, opts Options) Result {
	if !opts.PreserveLayout {
		return Result{
			Dimensions: CalculateContentBasedDimensions(meta),
			Strategy:   schemas.StrategyContentBased,
		}
	}

	measured := meta
	if live != nil {
		measured = overlayLive(meta, live)
	}
	base := ExtractActualDimensions(measured)

	strategy := opts.Strategy
	if strategy == "" || strategy == schemas.StrategyAuto {
		if live != nil {
			strategy = AnalyzeContainerLayout(measured, opts.Parent).Recommended
		} else {
			// Nothing left to analyze without a live box; preserve is the
			// universal fallback.
			strategy = schemas.StrategyPreserve
		}
	}

	switch strategy {
	case schemas.StrategyFlexible:
		return Result{
			Dimensions: schemas.PreservedDimensions{
				Width:  schemas.Unit("100%"),
				Height: base.Height,
			},
			Strategy: schemas.StrategyFlexible,
		}
	case schemas.StrategyMinimal:
		dims := schemas.PreservedDimensions{
			Width:  schemas.Unit("auto"),
			Height: base.Height,
		}
		if base.Width.IsSet() {
			minWidth := base.Width
			dims.MinWidth = &minWidth
		}
		return Result{Dimensions: dims, Strategy: schemas.StrategyMinimal}
	default:
		return Result{Dimensions: base, Strategy: schemas.StrategyPreserve}
	}
}

// overlayLive rebuilds the snapshot's measurement-relevant fields from the
// live element without touching the original snapshot.
func overlayLive(meta *schemas.ElementMetadata, live Measurer) *schemas.ElementMetadata {
	merged := schemas.ElementMetadata{}
	if meta != nil {
		merged = *meta
	}
	merged.Dimensions = live.BoundingBox()

	style := make(map[string]string, len(merged.ComputedStyle))
	for k, v := range merged.ComputedStyle {
		style[k] = v
	}
	for k, v := range live.ComputedStyle() {
		style[k] = v
	}
	merged.ComputedStyle = style
	return &merged
}

// StyleOptions configures placeholder style generation.
type StyleOptions struct {
	// FlexibleWidth renders width as 100% regardless of the computed value.
	FlexibleWidth bool
	// FlexibleHeight renders height as auto.
	FlexibleHeight bool
	// IncludeConstraints copies min/max constraints through.
	IncludeConstraints bool
	// PreserveAspectRatio emits an aspect-ratio when both axes are numeric.
	PreserveAspectRatio bool
}

// CreatePlaceholderStyles renders preserved dimensions as CSS declarations.
// Box sizing is always border-box so borders and padding on the placeholder
// cannot widen the reserved footprint.
func CreatePlaceholderStyles(dims schemas.PreservedDimensions, opts StyleOptions) map[string]string {
	styles := map[string]string{"boxSizing": "border-box"}

	if opts.FlexibleWidth {
		styles["width"] = "100%"
	} else if dims.Width.IsSet() {
		styles["width"] = dims.Width.String()
	}
	if opts.FlexibleHeight {
		styles["height"] = "auto"
	} else if dims.Height.IsSet() {
		styles["height"] = dims.Height.String()
	}

	if opts.IncludeConstraints {
		if dims.MinWidth != nil {
			styles["minWidth"] = dims.MinWidth.String()
		}
		if dims.MinHeight != nil {
			styles["minHeight"] = dims.MinHeight.String()
		}
		if dims.MaxWidth != nil {
			styles["maxWidth"] = dims.MaxWidth.String()
		}
		if dims.MaxHeight != nil {
			styles["maxHeight"] = dims.MaxHeight.String()
		}
	}

	if opts.PreserveAspectRatio && dims.Width.IsNumeric() && dims.Height.IsNumeric() && dims.Height.Pixels() > 0 {
		ratio := dims.Width.Pixels() / dims.Height.Pixels()
		styles["aspectRatio"] = strconv.FormatFloat(ratio, 'f', 4, 64)
	}
	return styles
}
