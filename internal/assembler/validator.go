package assembler

import (
	"fmt"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

// Validate checks a spec (generated or externally supplied) in a single
// pass and reports every violation it finds, not just the first. Any
// violation invalidates the whole spec; no partial spec reaches the
// renderer.
func Validate(spec *schemas.SkeletonSpec) schemas.ValidationResult {
	var errs []string

	if spec == nil {
		return schemas.ValidationResult{Errors: []string{"spec is missing"}}
	}
	if spec.Children == nil {
		errs = append(errs, "spec has no children sequence")
	}

	seen := make(map[string]bool, len(spec.Children))
	reported := make(map[string]bool)
	for i, child := range spec.Children {
		if child.Key == "" {
			errs = append(errs, fmt.Sprintf("child %d is missing a key", i))
		} else if seen[child.Key] {
			if !reported[child.Key] {
				errs = append(errs, fmt.Sprintf("duplicate key %q", child.Key))
				reported[child.Key] = true
			}
		} else {
			seen[child.Key] = true
		}

		if !child.Shape.Valid() {
			errs = append(errs, fmt.Sprintf("child %d has unrecognized shape %q", i, child.Shape))
		}
		if child.Shape == schemas.ShapeLine && child.Lines < 0 {
			errs = append(errs, fmt.Sprintf("child %d has non-positive line count %d", i, child.Lines))
		}
	}

	return schemas.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
