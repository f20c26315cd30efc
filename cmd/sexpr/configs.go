package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/sexpr/encode"
	"github.com/signadot/sexpr/langdef"
	"github.com/signadot/sexpr/syntax"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Grammar string `cli:"name=g aliases=grammar desc='grammar description file'"`
	Patch   string `cli:"name=patch desc='json patch file applied to the grammar description'"`
	Color   bool   `cli:"name=color desc='output with color'"`
	Spans   bool   `cli:"name=spans desc='output source spans'"`
	Tokens  bool   `cli:"name=tokens desc='output sexps with the grammar tokens'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &f
		return f, nil
	})
}

func (cfg *MainConfig) description() (*langdef.Description, error) {
	return langdef.LoadWithPatchFile(cfg.Grammar, cfg.Patch)
}

func (cfg *MainConfig) graph() (*syntax.Graph, error) {
	desc, err := cfg.description()
	if err != nil {
		return nil, err
	}
	g, err := desc.Graph()
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", cfg.grammarName(), err)
	}
	return g, nil
}

func (cfg *MainConfig) grammarName() string {
	if cfg.Grammar == "" {
		return "(builtin)"
	}
	return cfg.Grammar
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := encode.SexpFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeSpans(cfg.Spans),
		encode.EncodeTokens(cfg.Tokens),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor is true with -color, or when -color is not given and w is a
// terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ReadConfig struct {
	*MainConfig

	Keep bool `cli:"name=k desc='keep reading after errors from which the reader recovers'"`

	Read *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type AtConfig struct {
	*MainConfig

	At *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report through the exit code'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Count bool `cli:"name=c desc='print only the number of matches'"`

	Query *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Print string `cli:"name=p desc='print the resolved description as yaml, json or toml'"`

	Check *cli.Command
}

type GenConfig struct {
	*MainConfig

	Pkg  string `cli:"name=pkg desc='package of the generated file'"`
	Func string `cli:"name=func desc='name of the generated function'"`

	Gen *cli.Command
}
