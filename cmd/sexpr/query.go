package main

import (
	"fmt"

	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/encode"
	"github.com/signadot/sexpr/eval"
	"github.com/signadot/sexpr/parse"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := eval.Compile(args[0])
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
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(encode.SexpFormat))
	for _, in := range ins {
		doc, err := document.FromParser(parse.New(g, in.src))
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		paths, err := q.Select(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		prefix := ""
		if len(ins) > 1 {
			prefix = in.name + ":"
		}
		if cfg.Count {
			if _, err := fmt.Fprintf(cc.Out, "%s%d\n", prefix, len(paths)); err != nil {
				return err
			}
			continue
		}
		for _, p := range paths {
			node, err := doc.Subtree(p)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(cc.Out, "%s%s\t%s\n", prefix, p, encode.MustString(node, opts...)); err != nil {
				return err
			}
		}
	}
	return nil
}
