package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/espatch/script"
)

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat inputs as merge documents'"`

	Diff *cli.Command
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <patchfile> <patchfile>").
		WithDescription("compile two patch files and diff the generated sources").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected two input files", cli.ErrUsage)
	}
	a, err := compileFile(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := compileFile(cfg, args[1])
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a.Source, b.Source, false)
	return writeDiffs(cc.Out, diffs, cfg.useColor())
}

func compileFile(cfg *DiffConfig, name string) (*script.Script, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}
	ccfg := &CompileConfig{MainConfig: cfg.MainConfig, Merge: cfg.Merge}
	ops, err := decodeOps(ccfg, name, data)
	if err != nil {
		return nil, err
	}
	return script.Compile(ops)
}

func writeDiffs(w io.Writer, diffs []diffmatchpatch.Diff, useColor bool) error {
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed, color.CrossedOut)
	if !useColor {
		ins.DisableColor()
		del.DisableColor()
	}
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			_, err = ins.Fprintf(w, "%s", d.Text)
		case diffmatchpatch.DiffDelete:
			_, err = del.Fprintf(w, "%s", d.Text)
		default:
			_, err = fmt.Fprintf(w, "%s", d.Text)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
