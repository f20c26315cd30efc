package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/sexpr/debug"
	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Query is a compiled node filter.
type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func (q *Query) String() string { return q.src }

// Match evaluates q against env.
func (q *Query) Match(env *Env) (bool, error) {
	res, err := expr.Run(q.prg, *env)
	if err != nil {
		return false, fmt.Errorf("%w: %s at %s: %w", ErrQuery, q.src, env.Path, err)
	}
	return res.(bool), nil
}

// Select returns the paths of the nodes of doc matching q in pre-order.
func (q *Query) Select(doc *document.Document) ([]document.Path, error) {
	var (
		res []document.Path
		err error
	)
	doc.Walk(func(p document.Path, n *ir.Node) bool {
		var ok bool
		ok, err = q.Match(NewEnv(p, n))
		if err != nil {
			return false
		}
		if ok {
			res = append(res, p)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %s matched %d nodes\n", q.src, len(res))
	}
	return res, nil
}
