package schemas

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape identifies the abstract placeholder kind a primitive renders as.
type Shape string

const (
	ShapeRect   Shape = "rect"
	ShapeCircle Shape = "circle"
	ShapeLine   Shape = "line"
)

// Valid reports whether the shape is one of the recognized kinds.
func (s Shape) Valid() bool {
	switch s {
	case ShapeRect, ShapeCircle, ShapeLine:
		return true
	}
	return false
}

// Layout describes how a renderer should stack the primitives of a spec.
type Layout string

const (
	LayoutStack Layout = "stack"
	LayoutRow   Layout = "row"
	LayoutGrid  Layout = "grid"
)

// Strategy is a dimension-resolution policy. StrategyAuto defers the choice
// to container analysis; the remaining values are resolved policies as they
// appear on a computed result.
type Strategy string

const (
	StrategyAuto         Strategy = "auto"
	StrategyPreserve     Strategy = "preserve"
	StrategyFlexible     Strategy = "flexible"
	StrategyMinimal      Strategy = "minimal"
	StrategyContentBased Strategy = "content-based"
	StrategyFallback     Strategy = "fallback"
)

// Size is a CSS length. It is either a bare pixel count or a string value
// that carries its own unit ("100%", "2rem", "auto"). The zero value is
// unset, which serializes as null.
type Size struct {
	px      float64
	raw     string
	numeric bool
	set     bool
}

// Px builds a numeric pixel size.
func Px(v float64) Size {
	return Size{px: v, numeric: true, set: true}
}

// Unit builds a unit-bearing size from its raw CSS form.
func Unit(s string) Size {
	return Size{raw: s, set: true}
}

// IsSet reports whether the size holds a value.
func (s Size) IsSet() bool { return s.set }

// IsNumeric reports whether the size is a bare pixel count.
func (s Size) IsNumeric() bool { return s.set && s.numeric }

// Pixels returns the pixel count for numeric sizes, 0 otherwise.
func (s Size) Pixels() float64 {
	if s.numeric {
		return s.px
	}
	return 0
}

// Raw returns the unit-bearing value, or "" for numeric/unset sizes.
func (s Size) Raw() string { return s.raw }

// String renders the size in its CSS form ("400px", "100%", "auto").
func (s Size) String() string {
	if !s.set {
		return ""
	}
	if s.numeric {
		return strconv.FormatFloat(s.px, 'f', -1, 64) + "px"
	}
	return s.raw
}

// MarshalJSON encodes numeric sizes as JSON numbers and unit-bearing sizes
// as strings, matching the dual number-or-string wire form.
func (s Size) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	if s.numeric {
		return []byte(strconv.FormatFloat(s.px, 'f', -1, 64)), nil
	}
	return []byte(strconv.Quote(s.raw)), nil
}

// UnmarshalJSON accepts a number, a string, or null.
func (s *Size) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" || text == "" {
		*s = Size{}
		return nil
	}
	if text[0] == '"' {
		raw, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("invalid size literal %s: %w", text, err)
		}
		// A quoted "12px" is still a pixel count.
		if trimmed, ok := strings.CutSuffix(raw, "px"); ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64); err == nil {
				*s = Px(v)
				return nil
			}
		}
		*s = Unit(raw)
		return nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid size literal %s: %w", text, err)
	}
	*s = Px(v)
	return nil
}

// PreservedDimensions is the output of the layout preservation engine:
// a footprint the placeholder must occupy so the real content can swap in
// without shifting the page. Min/max constraints are carried only when the
// source element declared them.
type PreservedDimensions struct {
	Width     Size  `json:"width"`
	Height    Size  `json:"height"`
	MinWidth  *Size `json:"minWidth,omitempty"`
	MinHeight *Size `json:"minHeight,omitempty"`
	MaxWidth  *Size `json:"maxWidth,omitempty"`
	MaxHeight *Size `json:"maxHeight,omitempty"`
}

// SkeletonPrimitiveSpec describes one placeholder shape. Key is unique
// within the spec it belongs to.
type SkeletonPrimitiveSpec struct {
	Key          string            `json:"key"`
	Shape        Shape             `json:"shape"`
	Width        *Size             `json:"width,omitempty"`
	Height       *Size             `json:"height,omitempty"`
	BorderRadius *Size             `json:"borderRadius,omitempty"`
	Lines        int               `json:"lines,omitempty"`
	ClassName    string            `json:"className,omitempty"`
	Style        map[string]string `json:"style,omitempty"`
}

// SkeletonSpec is the pipeline's final artifact: a flat ordered sequence of
// primitives plus layout metadata. It is a plain serializable value with no
// live references, so it can be cached or generated ahead of time.
type SkeletonSpec struct {
	Children []SkeletonPrimitiveSpec `json:"children"`
	Layout   Layout                  `json:"layout,omitempty"`
	Gap      *Size                   `json:"gap,omitempty"`
}

// ValidationResult aggregates every violation found in a spec. IsValid is
// all-or-nothing: a single violation invalidates the whole spec.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors,omitempty"`
}
