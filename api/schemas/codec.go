package schemas

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeSpec writes a spec as indented JSON, the on-disk form used for
// build-time generated specs.
func EncodeSpec(w io.Writer, spec *SkeletonSpec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encoding skeleton spec: %w", err)
	}
	return nil
}

// DecodeSpec reads a spec produced by EncodeSpec (or any compatible
// producer). The result is not validated; callers gate it through the
// validator before use.
func DecodeSpec(r io.Reader) (*SkeletonSpec, error) {
	var spec SkeletonSpec
	if err := json.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("decoding skeleton spec: %w", err)
	}
	return &spec, nil
}

// DecodeRules reads a caller-supplied mapping rule list from JSON. Invalid
// rules are not rejected here; the rule engine drops them with diagnostics
// during merging.
func DecodeRules(r io.Reader) ([]MappingRule, error) {
	var rules []MappingRule
	if err := json.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("decoding mapping rules: %w", err)
	}
	return rules, nil
}
