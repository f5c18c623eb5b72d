package patch

import (
	"maps"
	"slices"

	"github.com/signadot/espatch/debug"
)

// MergeToOperations flattens a merge-style partial document into patch
// operations: a null value removes the key, a nested map recurses with the
// key prefixed onto every child path, anything else adds the value as-is.
// Keys are visited in sorted order at every level so the result is
// deterministic; Go maps carry no document order to preserve.
func MergeToOperations(doc map[string]any) []Operation {
	ops := make([]Operation, 0, len(doc))
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		switch value := doc[key].(type) {
		case nil:
			ops = append(ops, Operation{Op: Remove, Path: key})
		case map[string]any:
			for _, nested := range MergeToOperations(value) {
				nested.Path = key + "." + nested.Path
				ops = append(ops, nested)
			}
		default:
			ops = append(ops, Operation{Op: Add, Path: key, Value: value})
		}
	}
	if debug.Merge() {
		debug.Logf("merge: %d keys -> %d ops\n", len(doc), len(ops))
	}
	return ops
}
