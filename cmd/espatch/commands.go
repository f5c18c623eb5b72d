package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "log",
		Description: "log file (default stderr)",
		Type: cli.NamedFuncOpt(func(_ *cli.Context, v string) (any, error) {
			cfg.LogFile = v
			return v, nil
		}, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "espatch").
		WithSynopsis("espatch [opts] command [opts]").
		WithDescription("espatch compiles patch operations into painless update scripts.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if _, err := cfg.Main.Parse(cc, args); err != nil {
				return err
			}
			return fmt.Errorf("%w: expected a command", cli.ErrUsage)
		}).
		WithSubs(
			CompileCommand(cfg),
			DiffCommand(cfg))
}
