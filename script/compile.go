package script

import (
	"fmt"

	"github.com/signadot/espatch/debug"
	"github.com/signadot/espatch/espath"
	"github.com/signadot/espatch/patch"
)

// Lang is the scripting dialect of every compiled Script.
const Lang = "painless"

// Script is the compiled artifact submitted to the store's update API.
// Params carries the operation literals keyed by the param tokens the
// source references; keeping them out of the source both avoids injection
// and lets the store reuse a cached compilation across parameter values.
type Script struct {
	Source string         `json:"source"`
	Lang   string         `json:"lang"`
	Params map[string]any `json:"params"`
}

// Compile translates operations, in input order, into one update script.
// The input list is not modified and the returned Script shares no state
// with later calls. For each operation guards precede its mutation, and a
// move's remove precedes its add so the scratch variable is bound before
// it is read.
func Compile(ops []patch.Operation) (*Script, error) {
	cmds := newCommands()
	params := map[string]any{}
	resolver := espath.NewResolver()

	for i, op := range ops {
		p, err := resolver.Resolve(op.Path)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		var from *espath.Path
		if op.From != "" {
			from, err = resolver.Resolve(op.From)
			if err != nil {
				return nil, fmt.Errorf("operation %d: %w", i, err)
			}
		}

		checkCommands(cmds, op.Op, p, false)
		if from != nil {
			checkCommands(cmds, op.Op, from, true)
		}

		if op.Op == patch.Remove || op.Op == patch.Move {
			removePath := p
			if from != nil {
				removePath = from
			}
			removeCommands(cmds, removePath)
		}

		switch op.Op {
		case patch.Add, patch.Replace, patch.Copy, patch.Move:
			addCommands(cmds, op, p, from, params)
		case patch.Test:
			testCommands(cmds, op, p, params)
		case patch.Remove:
		default:
			return nil, fmt.Errorf("operation %d: unsupported op %q", i, op.Op)
		}
	}

	if debug.Compile() {
		debug.Logf("compile: %d ops -> %d statements, %d params\n",
			len(ops), cmds.Len(), len(params))
	}
	return &Script{Source: cmds.Source(), Lang: Lang, Params: params}, nil
}
