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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"fmt"},
			Description: "output format: sexp/s, tree/t, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sexpr").
		WithSynopsis("sexpr [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sexprMain(cfg, cc, args)
		}).
		WithSubs(
			ReadCommand(cfg),
			GetCommand(cfg),
			AtCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			CheckCommand(cfg),
			GenCommand(cfg))
}

const mainDescription = `sexpr reads s-expression like notations.

The notation is given by a grammar description file (-g) in yaml, toml or
json, optionally extended by a json patch (-patch).  Without -g, plain
s-expressions with a ' (QUOTE) prefix operator are read.

Inputs are files named on the command line, or standard input.`

func ReadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Read, "read").
		WithAliases("r").
		WithSynopsis("read [opts] [files]").
		WithDescription("read trees and print them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return read(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the subtree at a path such as [0][2] or 0.2").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func AtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.At, "at").
		WithSynopsis("at <start>[:<end>] [files]").
		WithDescription("print the path and subtree of the innermost node enclosing a byte range").
		WithRun(func(cc *cli.Context, args []string) error {
			return at(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] a b").
		WithDescription("diff the trees read from two files, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [opts] <expr> [files]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `print the nodes for which expr is true.

expr is evaluated at each node with the variables
  tag kind text token depth start end children leaf path parent
and the functions
  hasChild(tag) within(start, end) getenv(name)

for example
  sexpr query 'kind == "Operator" && depth > 0' file`

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [opts]").
		WithDescription("validate the grammar and describe it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Pkg: "grammar", Func: "Grammar"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Gen, "gen").
		WithSynopsis("gen [opts]").
		WithDescription("generate Go source building the grammar").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}
