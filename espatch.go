// Package espatch compiles JSON-Patch style operations into painless
// update scripts, giving partial-document updates to stores whose only
// mutation primitive is a server-side script.
//
// The compiler is pure and total: every patch-validity condition becomes a
// guard inside the generated script, so a bad patch aborts in the store
// with the document untouched and a message naming what went wrong.
package espatch

import (
	"github.com/signadot/espatch/patch"
	"github.com/signadot/espatch/script"
)

// Compile translates a patch operation list into one update script.
func Compile(ops []patch.Operation) (*script.Script, error) {
	return script.Compile(ops)
}

// CompileMerge normalizes a merge-style partial document and compiles the
// resulting operations. Null values remove keys, nested maps recurse,
// anything else is added verbatim.
func CompileMerge(doc map[string]any) (*script.Script, error) {
	return script.Compile(patch.MergeToOperations(doc))
}
