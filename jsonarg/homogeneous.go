package jsonarg

import (
	"github.com/valyala/fastjson"
)

// IsHomogeneous reports whether every array inside v, at every depth, holds
// elements of a single shape class. All elements found at the same depth
// must share one class, so [[1],[2]] passes while [[1],["a"]] fails.
// Null and objects fail anywhere; scalars and empty arrays pass.
func IsHomogeneous(v *fastjson.Value) bool {
	level := []*fastjson.Value{v}

	for len(level) > 0 {
		var (
			next      []*fastjson.Value
			levelKind Kind
			seeded    bool
		)

		for _, curr := range level {
			kind, ok := kindOf(curr)
			if !ok {
				return false
			}

			if kind == KindArray {
				items, _ := curr.Array()
				next = append(next, items...)
			}

			if !seeded {
				levelKind, seeded = kind, true
			} else if levelKind != kind {
				return false
			}
		}

		level = next
	}

	return true
}

// isHomogeneousValue applies the same check to an already converted value
func isHomogeneousValue(v *Value) bool {
	level := []*Value{v}

	for len(level) > 0 {
		var next []*Value

		levelKind := level[0].kind

		for _, curr := range level {
			if curr.kind != levelKind {
				return false
			}

			if curr.kind == KindArray {
				next = append(next, curr.elems...)
			}
		}

		level = next
	}

	return true
}
