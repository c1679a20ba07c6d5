package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "wbx").
		WithSynopsis("wbx [opts] command [opts]").
		WithDescription("wbx is a tool for inspecting binary tag streams.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wbxMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			DiffCommand(cfg),
			PagesCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("decode tag streams and print them as indented trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <a> <b>").
		WithDescription("decode two tag streams and diff their renderings").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PagesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PagesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("pages").
		WithAliases("p").
		WithSynopsis("pages [-tags] [page...]").
		WithDescription("list the builtin code pages").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPages(cfg, cc, args)
		})
	cfg.Pages = cmd
	return cmd
}
