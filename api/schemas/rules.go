package schemas

import "strings"

// MatchPredicate selects elements for a mapping rule. Conditions are
// combined with logical AND; an unset condition always holds, so the zero
// predicate matches every element.
type MatchPredicate struct {
	// Tag matches the element's tag name exactly (case-insensitive).
	Tag string `json:"tag,omitempty"`
	// ClassContains matches when the element's class string contains the
	// value as a substring.
	ClassContains string `json:"classContains,omitempty"`
}

// Matches evaluates the predicate against a metadata node.
func (p MatchPredicate) Matches(meta *ElementMetadata) bool {
	if meta == nil {
		return false
	}
	if p.Tag != "" && !strings.EqualFold(p.Tag, meta.TagName) {
		return false
	}
	if p.ClassContains != "" && !strings.Contains(meta.ClassName, p.ClassContains) {
		return false
	}
	return true
}

// RuleTarget is the tagged outcome of a mapping rule: either an explicit
// skip instruction or a placeholder shape with optional sizing. Skip and
// Shape are mutually exclusive; Skip wins when set.
type RuleTarget struct {
	Skip         bool              `json:"skip,omitempty"`
	Shape        Shape             `json:"shape,omitempty"`
	Width        *Size             `json:"width,omitempty"`
	Height       *Size             `json:"height,omitempty"`
	BorderRadius *Size             `json:"borderRadius,omitempty"`
	Lines        int               `json:"lines,omitempty"`
	ClassName    string            `json:"className,omitempty"`
	Style        map[string]string `json:"style,omitempty"`
}

// SkipTarget builds the skip instruction: the matched node emits no
// primitive of its own, but its children are still processed.
func SkipTarget() RuleTarget {
	return RuleTarget{Skip: true}
}

// ShapeOf builds a plain shape target.
func ShapeOf(shape Shape) RuleTarget {
	return RuleTarget{Shape: shape}
}

// MappingRule maps a match condition to a placeholder outcome. Higher
// priority rules are evaluated first; the first match wins.
type MappingRule struct {
	Match    MatchPredicate `json:"match"`
	To       RuleTarget     `json:"to"`
	Priority int            `json:"priority"`
}
