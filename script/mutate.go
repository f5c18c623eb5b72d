package script

import (
	"github.com/signadot/espatch/espath"
	"github.com/signadot/espatch/patch"
)

// removeCommands emits the statement removing the value at p, bound to the
// path's scratch variable so a move can reuse it.
func removeCommands(cmds *Commands, p *espath.Path) {
	if p.Index != nil {
		cmds.Add(Remove{Var: p.ScratchVar, Container: p.LocationAccessor, Index: p.Index})
		return
	}
	cmds.Add(Remove{Var: p.ScratchVar, Container: p.NestAccessor, Key: p.Key})
}

// addCommands emits the statement writing a value at p for add, replace,
// copy and move. The value source depends on the operation: a move reads
// the scratch variable its remove bound, a copy reads the source location
// live, anything else binds the operation's literal value as a parameter.
// Literals never appear in the script text itself.
func addCommands(cmds *Commands, op patch.Operation, p, from *espath.Path, params map[string]any) {
	var value string
	switch {
	case from != nil && op.Op == patch.Move:
		value = from.ScratchVar
	case from != nil:
		value = docRoot + from.FullAccessor
	default:
		value = "params." + p.ParamKey
		params[p.ParamKey] = op.Value
	}

	if p.Index != nil {
		cmds.Add(Assign{
			Full:      p.FullAccessor,
			Value:     value,
			Container: p.LocationAccessor,
			Index:     p.Index,
			Insert:    op.Op == patch.Add || op.Op == patch.Move,
		})
		return
	}
	cmds.Add(Assign{Full: p.FullAccessor, Value: value})
}

// testCommands binds the expected value as a parameter and emits the guard
// comparing the current value at p against it.
func testCommands(cmds *Commands, op patch.Operation, p *espath.Path, params map[string]any) {
	params[p.ParamKey] = op.Value
	cmds.Add(Test{
		Full:    p.FullAccessor,
		Param:   p.ParamKey,
		Path:    p.Path,
		Display: op.DisplayValue(),
	})
}
