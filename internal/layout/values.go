package layout

import (
	"strconv"
	"strings"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

const (
	// BaseFontSize is assumed when no font size is reported.
	BaseFontSize = 16.0
	// LineHeightMultiplier approximates 'line-height: normal' for estimated
	// text heights.
	LineHeightMultiplier = 1.4
	// CharWidthRatio approximates average glyph width relative to font size.
	CharWidthRatio = 0.6
	// MaxEstimatedTextWidth caps estimated single-line text widths.
	MaxEstimatedTextWidth = 600.0
)

// parseCSSSize converts a declared CSS length into a Size. The "auto" and
// "none" sentinels and empty values come back unset; bare numbers and px
// values become numeric; everything else keeps its unit verbatim.
func parseCSSSize(v string) schemas.Size {
	v = strings.TrimSpace(v)
	switch v {
	case "", "auto", "none":
		return schemas.Size{}
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return schemas.Px(f)
	}
	if trimmed, ok := strings.CutSuffix(v, "px"); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64); err == nil {
			return schemas.Px(f)
		}
	}
	return schemas.Unit(v)
}

// minConstraint parses a min-width/min-height declaration, dropping the
// style engine's own zero default.
func minConstraint(v string) *schemas.Size {
	size := parseCSSSize(v)
	if !size.IsSet() || (size.IsNumeric() && size.Pixels() == 0) {
		return nil
	}
	return &size
}

// maxConstraint parses a max-width/max-height declaration; "none" (the
// engine default) is already unset after parsing.
func maxConstraint(v string) *schemas.Size {
	size := parseCSSSize(v)
	if !size.IsSet() {
		return nil
	}
	return &size
}

// fontSizeOf reads the node's reported font size in pixels.
func fontSizeOf(meta *schemas.ElementMetadata) float64 {
	if meta == nil {
		return BaseFontSize
	}
	raw := strings.TrimSpace(meta.Style(schemas.StyleFontSize))
	raw = strings.TrimSuffix(raw, "px")
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && f > 0 {
		return f
	}
	return BaseFontSize
}

func isPercent(s string) bool {
	return strings.HasSuffix(strings.TrimSpace(s), "%")
}
