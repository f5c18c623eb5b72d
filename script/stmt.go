// Package script compiles patch operations into a painless update script.
// Patch-validity checks are not performed client-side: they are emitted
// into the script as guards, so a bad patch aborts inside the store with
// the document untouched.
package script

import (
	"fmt"
	"strings"
)

// docRoot is the painless expression addressing the document being
// updated.
const docRoot = "ctx._source"

// Stmt is one statement of the generated script. Rendering is pure: equal
// statements render to the same text, which is what Commands deduplicates
// on.
type Stmt interface {
	Render() string
}

// Guard aborts the script with an explanation when its failure condition
// holds.
type Guard struct {
	Cond    string
	Explain string
}

func (g Guard) Render() string {
	return fmt.Sprintf("if (%s){Debug.explain('%s');}", g.Cond, g.Explain)
}

// Remove takes the value at Key or Index out of the container addressed by
// Container and binds it to Var for possible reuse by a later Assign.
type Remove struct {
	Var       string
	Container string
	Key       string
	Index     *int
}

func (r Remove) Render() string {
	if r.Index != nil {
		return fmt.Sprintf("def %s = %s%s.remove(%d);", r.Var, docRoot, r.Container, *r.Index)
	}
	return fmt.Sprintf("def %s = %s%s.remove('%s');", r.Var, docRoot, r.Container, r.Key)
}

// Assign writes Value at the location addressed by Full. When Index is set
// and the container at Container is array-like, the write is positional:
// an insert for add and move, an overwrite for replace and copy. A
// non-array container falls back to assignment at the full path; whether
// that fallback should instead be guarded is left as the store sees it.
type Assign struct {
	Full      string
	Value     string
	Container string
	Index     *int
	Insert    bool
}

func (a Assign) Render() string {
	if a.Index == nil {
		return fmt.Sprintf("%s%s = %s;", docRoot, a.Full, a.Value)
	}
	verb := "set"
	if a.Insert {
		verb = "add"
	}
	loc := docRoot + a.Container
	return fmt.Sprintf("if (%s instanceof ArrayList){%s.%s(%d, %s)}else{%s%s = %s}",
		loc, loc, verb, *a.Index, a.Value, docRoot, a.Full, a.Value)
}

// Test aborts the script unless the value at Full equals the bound
// parameter Param. Display is the expected value's display form for the
// failure explanation.
type Test struct {
	Full    string
	Param   string
	Path    string
	Display string
}

func (t Test) Render() string {
	return fmt.Sprintf("if (%s%s != params.%s){Debug.explain('Test failed `%s` | %s != ' + %s%s);}",
		docRoot, t.Full, t.Param, t.Path, escapeExplain(t.Display), docRoot, t.Full)
}

func escapeExplain(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
