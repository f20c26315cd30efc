package main

import (
	"fmt"

	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/encode"
	"github.com/signadot/sexpr/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := document.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	g, err := cfg.graph()
	if err != nil {
		return err
	}
	ins, err := inputs(cc, args[1:])
	if err != nil {
		return err
	}
	for _, in := range ins {
		doc, err := document.FromParser(parse.New(g, in.src))
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		node, err := doc.Subtree(path)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
