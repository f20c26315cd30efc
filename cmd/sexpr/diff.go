package main

import (
	"fmt"

	"github.com/signadot/sexpr/libdiff"
	"github.com/signadot/sexpr/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	g, err := cfg.graph()
	if err != nil {
		return err
	}
	a, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	b, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	from, err := parse.Parse(g, a.src)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", a.name, err)
	}
	to, err := parse.Parse(g, b.src)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", b.name, err)
	}
	d, err := libdiff.Trees(from, to, libdiff.WithSpans(cfg.Spans))
	if err != nil {
		return err
	}
	if d.Equal() {
		return nil
	}
	if !cfg.Quiet {
		var colors *libdiff.Colors
		if cfg.useColor(cc.Out) {
			colors = libdiff.NewColors()
		}
		if err := d.Write(cc.Out, colors); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
