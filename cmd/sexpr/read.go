package main

import (
	"errors"
	"fmt"

	"github.com/signadot/sexpr/encode"
	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/parse"

	"github.com/scott-cotton/cli"
)

func read(cfg *ReadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Read.Parse(cc, args)
	if err != nil {
		return err
	}
	g, err := cfg.graph()
	if err != nil {
		return err
	}
	ins, err := inputs(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	var errs []error
	for _, in := range ins {
		var trees []*ir.Node
		for node, err := range parse.New(g, in.src).All() {
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", in.name, err))
				if !cfg.Keep {
					break
				}
				continue
			}
			trees = append(trees, node)
		}
		if err := encode.EncodeAll(trees, cc.Out, opts...); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
