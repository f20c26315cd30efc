package main

import (
	"fmt"

	"github.com/signadot/sexpr/langdef"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	desc, err := cfg.description()
	if err != nil {
		return err
	}
	if cfg.Print != "" {
		f, err := langdef.ParseFormat(cfg.Print)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		d, err := desc.Marshal(f)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	g, err := desc.Graph()
	if err != nil {
		return fmt.Errorf("grammar %s: %w", cfg.grammarName(), err)
	}
	if cfg.Print != "" {
		return nil
	}
	return g.Describe(cc.Out)
}
