package parse

import (
	"log/slog"

	"github.com/signadot/sexpr/debug"
)

type parseOpts struct {
	log *slog.Logger
}

type ParseOption func(*parseOpts)

// WithLogger traces scope opening and closing at debug level.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = l }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	if debug.Parse() {
		pOpts.log = debug.Logger()
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
