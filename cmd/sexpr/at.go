package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/encode"
	"github.com/signadot/sexpr/parse"
	"github.com/signadot/sexpr/token"

	"github.com/scott-cotton/cli"
)

func at(cfg *AtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.At.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: at requires one argument, a range", cli.ErrUsage)
	}
	r, err := parseRange(args[0])
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
	found := false
	for _, in := range ins {
		doc, err := document.FromParser(parse.New(g, in.src))
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		path := doc.InnermostEnclosingPath(r)
		if len(path) == 0 {
			continue
		}
		found = true
		node, err := doc.Subtree(path)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", path); err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	if !found {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// parseRange parses "start" or "start:end".
func parseRange(s string) (token.Span, error) {
	a, b, ok := strings.Cut(s, ":")
	start, err := strconv.Atoi(a)
	if err != nil {
		return token.Span{}, fmt.Errorf("bad range start %q", a)
	}
	end := start
	if ok {
		end, err = strconv.Atoi(b)
		if err != nil {
			return token.Span{}, fmt.Errorf("bad range end %q", b)
		}
	}
	if start < 0 || end < start {
		return token.Span{}, fmt.Errorf("bad range %q", s)
	}
	return token.Span{Start: start, End: end}, nil
}
