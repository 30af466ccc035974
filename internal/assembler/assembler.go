// Spec assembly: flattens the mapped, dimensioned tree into the ordered
// SkeletonSpec handed to the renderer.
package assembler

import (
	"github.com/xkilldash9x/skelgen-cli/api/schemas"
	"github.com/xkilldash9x/skelgen-cli/internal/layout"
	"github.com/xkilldash9x/skelgen-cli/internal/rules"
)

// Options configures assembly.
type Options struct {
	// PreserveLayout computes footprint-exact dimensions per node and
	// merges them under each primitive's own style.
	PreserveLayout bool
	// Strategy overrides container analysis during layout preservation.
	Strategy schemas.Strategy
	// StyleOptions passes through to placeholder style generation.
	StyleOptions layout.StyleOptions
	// Layout is the spec's layout hint; defaults to stack.
	Layout schemas.Layout
	// Gap is an optional spacing hint for the renderer.
	Gap *schemas.Size
}

// Assemble runs the mapping engine over every node depth-first and emits
// the flat primitive sequence: a node's primitive first, then its
// descendants' primitives in document order. A skip outcome drops the
// node's own primitive and splices its children in place.
func Assemble(elements []schemas.ElementMetadata, merged []schemas.MappingRule, opts Options) schemas.SkeletonSpec {
	spec := schemas.SkeletonSpec{
		Children: []schemas.SkeletonPrimitiveSpec{},
		Layout:   opts.Layout,
		Gap:      opts.Gap,
	}
	if spec.Layout == "" {
		spec.Layout = schemas.LayoutStack
	}

	counts := make(map[string]int, len(elements))
	for i := range elements {
		el := &elements[i]
		counts[el.TagName]++
		key := rules.PathKey("", el.TagName, counts[el.TagName])
		spec.Children = append(spec.Children, flatten(el, nil, key, merged, opts)...)
	}
	return spec
}

func flatten(meta, parent *schemas.ElementMetadata, key string, merged []schemas.MappingRule, opts Options) []schemas.SkeletonPrimitiveSpec {
	result := rules.Apply(meta, key, merged)

	var out []schemas.SkeletonPrimitiveSpec
	if !result.Skip {
		prim := result.Primitive
		if opts.PreserveLayout {
			computed := layout.GenerateOptimalSkeletonDimensions(meta, measurerFor(meta), layout.Options{
				PreserveLayout: true,
				Strategy:       opts.Strategy,
				Parent:         parent,
			})
			styles := layout.CreatePlaceholderStyles(computed.Dimensions, opts.StyleOptions)
			prim.Style = mergeStyles(styles, prim.Style)
		}
		out = append(out, prim)
	}

	counts := make(map[string]int, len(meta.Children))
	for i := range meta.Children {
		child := &meta.Children[i]
		counts[child.TagName]++
		childKey := rules.PathKey(key, child.TagName, counts[child.TagName])
		out = append(out, flatten(child, meta, childKey, merged, opts)...)
	}
	return out
}

// snapshotMeasurer lets a measured snapshot stand in for its live element;
// the scan already captured the live box and style.
type snapshotMeasurer struct {
	meta *schemas.ElementMetadata
}

func (s snapshotMeasurer) BoundingBox() schemas.BoxDimensions { return s.meta.Dimensions }
func (s snapshotMeasurer) ComputedStyle() map[string]string   { return s.meta.ComputedStyle }

// measurerFor returns a Measurer only when the snapshot carries a real
// measurement; unmeasured nodes take the fallback path.
func measurerFor(meta *schemas.ElementMetadata) layout.Measurer {
	if meta.Dimensions.Measured() {
		return snapshotMeasurer{meta: meta}
	}
	return nil
}

// mergeStyles lays computed placeholder styles under the primitive's own
// style; per property, the mapped primitive's explicit value wins.
func mergeStyles(defaults, own map[string]string) map[string]string {
	if len(defaults) == 0 {
		return own
	}
	merged := make(map[string]string, len(defaults)+len(own))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range own {
		merged[k] = v
	}
	return merged
}
