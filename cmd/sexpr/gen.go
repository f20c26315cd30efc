package main

import (
	"github.com/signadot/sexpr/codegen"

	"github.com/scott-cotton/cli"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	g, err := cfg.graph()
	if err != nil {
		return err
	}
	src, err := codegen.Generate(g, &codegen.Config{
		Package: cfg.Pkg,
		Func:    cfg.Func,
		Source:  cfg.grammarName(),
	})
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(src)
	return err
}
