// Mapping rule engine: resolves which placeholder shape each scanned node
// becomes, using a priority-ordered rule set of caller-supplied rules merged
// with the builtin catalog.
package rules

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
	"github.com/xkilldash9x/skelgen-cli/internal/layout"
)

// MatchResult is the tagged outcome of rule application: either an explicit
// skip (no primitive for this node, children still processed) or a
// primitive.
type MatchResult struct {
	Skip      bool
	Primitive schemas.SkeletonPrimitiveSpec
}

// Merge validates custom rules, drops invalid ones with a diagnostic, and
// combines the survivors with the builtin catalog, ordered by descending
// priority. The sort is stable over a custom-first list, so at equal
// priority a caller-supplied rule is evaluated before a builtin. The
// observed reference behavior never pins this tie-break down; treating
// explicit caller intent as the winner is a documented assumption.
func Merge(logger *zap.Logger, custom []schemas.MappingRule) []schemas.MappingRule {
	merged := make([]schemas.MappingRule, 0, len(custom)+len(builtinCatalog))
	for i, rule := range custom {
		if err := validateRule(rule); err != nil {
			logger.Warn("Dropping invalid mapping rule",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		merged = append(merged, rule)
	}
	merged = append(merged, builtinCatalog...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Priority > merged[j].Priority
	})
	return merged
}

// validateRule checks a custom rule's target payload.
func validateRule(rule schemas.MappingRule) error {
	target := rule.To
	if target.Skip {
		return nil
	}
	if !target.Shape.Valid() {
		return fmt.Errorf("unrecognized shape %q", target.Shape)
	}
	if target.Lines < 0 {
		return fmt.Errorf("line count %d is negative", target.Lines)
	}
	if target.Lines > 0 && target.Shape != schemas.ShapeLine {
		return fmt.Errorf("line count set on %q shape", target.Shape)
	}
	for name, size := range map[string]*schemas.Size{
		"width":        target.Width,
		"height":       target.Height,
		"borderRadius": target.BorderRadius,
	} {
		if size == nil {
			continue
		}
		if size.IsNumeric() && size.Pixels() < 0 {
			return fmt.Errorf("%s is negative", name)
		}
	}
	return nil
}

// Apply evaluates rules in order; the first satisfied predicate wins. A
// skip target yields a tagged skip; a shape target yields a primitive with
// unspecified dimensions filled from the fallback-by-tag table; no match at
// all yields the generic default primitive.
func Apply(meta *schemas.ElementMetadata, key string, merged []schemas.MappingRule) MatchResult {
	if meta == nil {
		return MatchResult{Skip: true}
	}
	for _, rule := range merged {
		if !rule.Match.Matches(meta) {
			continue
		}
		if rule.To.Skip {
			return MatchResult{Skip: true}
		}
		return MatchResult{Primitive: buildPrimitive(meta, key, rule.To)}
	}
	return MatchResult{Primitive: defaultPrimitive(meta, key)}
}

func buildPrimitive(meta *schemas.ElementMetadata, key string, target schemas.RuleTarget) schemas.SkeletonPrimitiveSpec {
	prim := schemas.SkeletonPrimitiveSpec{
		Key:       key,
		Shape:     target.Shape,
		ClassName: target.ClassName,
	}
	if len(target.Style) > 0 {
		prim.Style = make(map[string]string, len(target.Style))
		for k, v := range target.Style {
			prim.Style[k] = v
		}
	}

	fallbackW, fallbackH := layout.FallbackDimensions(meta.TagName)
	prim.Width = cloneSize(target.Width)
	if prim.Width == nil {
		prim.Width = &fallbackW
	}
	prim.Height = cloneSize(target.Height)
	if prim.Height == nil {
		prim.Height = &fallbackH
	}
	prim.BorderRadius = cloneSize(target.BorderRadius)

	if target.Shape == schemas.ShapeLine {
		prim.Lines = target.Lines
		if prim.Lines == 0 {
			prim.Lines = 1
		}
	}
	return prim
}

// defaultPrimitive is the generic rect used when no rule matches.
func defaultPrimitive(meta *schemas.ElementMetadata, key string) schemas.SkeletonPrimitiveSpec {
	fallbackW, fallbackH := layout.FallbackDimensions(meta.TagName)
	return schemas.SkeletonPrimitiveSpec{
		Key:    key,
		Shape:  schemas.ShapeRect,
		Width:  &fallbackW,
		Height: &fallbackH,
	}
}

// PathKey extends a parent key with a tag[index] segment. Keys mirror the
// node's position in the scanned tree, so repeated scans of the same tree
// produce identical keys. Index is 1-based among same-tag siblings.
func PathKey(parent, tag string, index int) string {
	segment := fmt.Sprintf("%s[%d]", tag, index)
	if parent == "" {
		return segment
	}
	return parent + "/" + segment
}

func cloneSize(s *schemas.Size) *schemas.Size {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}
