package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/espatch/patch"
	"github.com/signadot/espatch/refresh"
	"github.com/signadot/espatch/script"
)

type CompileConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat input as a merge document'"`
	Wire  bool `cli:"name=wire desc='output the artifact as json'"`

	Filter  string
	Refresh string

	Compile *cli.Command
}

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "filter",
			Description: "expr expression selecting operations, e.g. 'op != \"test\"'",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, v string) (any, error) {
				cfg.Filter = v
				return v, nil
			}, "(expr)"),
		},
		&cli.Opt{
			Name:        "refresh",
			Description: "also normalize a refresh value for the update request",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, v string) (any, error) {
				cfg.Refresh = v
				return v, nil
			}, "(value)"),
		})

	cmd := cli.NewCommand("compile").
		WithAliases("c").
		WithSynopsis("compile [-merge] [-filter expr] [-refresh val] [file]").
		WithDescription("compile patch operations to a painless update script").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runCompile(cfg, cc, args)
		})
	cfg.Compile = cmd
	return cmd
}

func runCompile(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		return err
	}
	data, name, err := readInput(args)
	if err != nil {
		return err
	}
	ops, err := decodeOps(cfg, name, data)
	if err != nil {
		return err
	}
	if cfg.Filter != "" {
		ops, err = filterOps(ops, cfg.Filter)
		if err != nil {
			return fmt.Errorf("bad -filter: %w", err)
		}
	}
	s, err := script.Compile(ops)
	if err != nil {
		return err
	}

	refreshMode := ""
	if cfg.Refresh != "" {
		refreshMode = refresh.New(cfg.Logger()).Normalize(cfg.Refresh)
	}
	if cfg.Wire {
		return writeWire(cc.Out, s, refreshMode)
	}
	return writeScript(cc.Out, s, refreshMode, cfg.useColor())
}

func decodeOps(cfg *CompileConfig, name string, data []byte) ([]patch.Operation, error) {
	if cfg.Merge {
		doc := map[string]any{}
		if cfg.yamlIn(name) {
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("error decoding %s: %w", name, err)
			}
		} else if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", name, err)
		}
		return patch.MergeToOperations(doc), nil
	}
	if cfg.yamlIn(name) {
		var ops []patch.Operation
		if err := yaml.Unmarshal(data, &ops); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", name, err)
		}
		return ops, nil
	}
	ops, err := patch.DecodeOperations(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return ops, nil
}

// filterOps keeps the operations for which the expr program returns true.
// The expression sees op, path and from as strings.
func filterOps(ops []patch.Operation, expression string) ([]patch.Operation, error) {
	prg, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, err
	}
	res := make([]patch.Operation, 0, len(ops))
	for _, op := range ops {
		keep, err := runFilter(prg, op)
		if err != nil {
			return nil, err
		}
		if keep {
			res = append(res, op)
		}
	}
	return res, nil
}

func runFilter(prg *vm.Program, op patch.Operation) (bool, error) {
	out, err := expr.Run(prg, map[string]any{
		"op":   string(op.Op),
		"path": op.Path,
		"from": op.From,
	})
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T, want bool", out)
	}
	return b, nil
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", err
	}
	if len(args) > 1 {
		return nil, "", fmt.Errorf("%w: expected one input file", cli.ErrUsage)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("could not read %q: %w", args[0], err)
	}
	return data, args[0], nil
}

type wireUpdate struct {
	Script  *script.Script `json:"script"`
	Refresh string         `json:"refresh,omitempty"`
}

func writeWire(w io.Writer, s *script.Script, refreshMode string) error {
	d, err := json.MarshalIndent(wireUpdate{Script: s, Refresh: refreshMode}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}

func writeScript(w io.Writer, s *script.Script, refreshMode string, useColor bool) error {
	head := color.New(color.FgCyan)
	key := color.New(color.FgGreen)
	if !useColor {
		head.DisableColor()
		key.DisableColor()
	}
	head.Fprintf(w, "lang: ")
	fmt.Fprintf(w, "%s\n", s.Lang)
	if refreshMode != "" {
		head.Fprintf(w, "refresh: ")
		fmt.Fprintf(w, "%s\n", refreshMode)
	}
	head.Fprintf(w, "source: ")
	fmt.Fprintf(w, "%s\n", s.Source)
	head.Fprintf(w, "params:\n")
	for _, k := range slices.Sorted(maps.Keys(s.Params)) {
		d, err := json.Marshal(s.Params[k])
		if err != nil {
			return err
		}
		key.Fprintf(w, "  %s: ", k)
		fmt.Fprintf(w, "%s\n", d)
	}
	return nil
}
