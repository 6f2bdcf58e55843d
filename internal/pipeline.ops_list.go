package internal

import (
	"sort"
	"strings"
)

// applySort implements sort(dir, ci) (spec §4.5 plus SPEC_FULL §4.14's
// case-insensitive modifier): stable lexicographic byte-order sort of a
// List, ascending or descending, optionally comparing case-folded while
// preserving each item's original casing in the output.
func applySort(op Operation, v Value) (Value, error) {
	if !v.IsList() {
		return Value{}, NewWrongTypeError(OpSort, "list", v.TypeName(), "use split first to produce a list")
	}
	items := append([]string(nil), v.AsList()...)

	less := func(i, j int) bool {
		a, b := items[i], items[j]
		if op.CaseFold {
			a, b = strings.ToLower(a), strings.ToLower(b)
		}
		if op.Dir == SortDesc {
			return a > b
		}
		return a < b
	}
	sort.SliceStable(items, less)
	return List(items), nil
}

// applyUnique implements unique (spec §4.5): first-occurrence dedup,
// preserving the order items first appeared in.
func applyUnique(v Value) (Value, error) {
	if !v.IsList() {
		return Value{}, NewWrongTypeError(OpUnique, "list", v.TypeName(), "use split first to produce a list")
	}
	seen := make(map[string]bool, len(v.AsList()))
	var out []string
	for _, item := range v.AsList() {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return List(out), nil
}
