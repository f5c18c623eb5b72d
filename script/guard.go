package script

import (
	"fmt"
	"strings"

	"github.com/signadot/espatch/espath"
	"github.com/signadot/espatch/patch"
)

// checkCommands emits the existence guards for one side of an operation.
// Only an unconditional add may create structure; everything else must
// find its target already present, and fails inside the store with a
// message naming what is missing.
//
// fromSide marks the source path of a move or copy, which must exist even
// for ops that would otherwise tolerate absence.
func checkCommands(cmds *Commands, op patch.Op, p *espath.Path, fromSide bool) {
	if p.Nest != "" {
		// An indexed nest cannot be probed with containsKey; a null check
		// covers both a missing element and a missing parent.
		if strings.Contains(p.NestAccessor, "[") {
			cmds.Add(Guard{
				Cond:    fmt.Sprintf("%s%s == null", docRoot, p.NestAccessor),
				Explain: fmt.Sprintf("%s does not exist", p.Nest),
			})
		} else {
			cmds.Add(Guard{
				Cond:    fmt.Sprintf("!%s.containsKey('%s')", docRoot, p.Nest),
				Explain: fmt.Sprintf("%s does not exist", p.Nest),
			})
		}
	}

	// Key is empty when the path ends in back-to-back indexes; the slot is
	// then addressed as a list and a key guard would probe the empty key.
	if p.Key != "" && (p.Index != nil || op == patch.Remove || op == patch.Replace || op == patch.Test || fromSide) {
		cmds.Add(Guard{
			Cond:    fmt.Sprintf("!%s%s.containsKey('%s')", docRoot, p.NestAccessor, p.Key),
			Explain: fmt.Sprintf("%s does not exist in %s", p.Key, p.Nest),
		})
	}

	// A source-side index may be positional (array) or a numeric map key;
	// one combined guard covers both readings of the same slot.
	if fromSide && p.Index != nil {
		loc := docRoot + p.LocationAccessor
		cmds.Add(Guard{
			Cond: fmt.Sprintf(
				"(%s instanceof ArrayList && %s.size() < %d) || (!(%s instanceof ArrayList) && !%s.containsKey('%d'))",
				loc, loc, *p.Index, loc, loc, *p.Index),
			Explain: fmt.Sprintf("%s does not exist", p.Path),
		})
	}
}
