// Package codegen generates Go source which rebuilds a grammar with the
// syntax builder, so that a grammar description need not be loaded at run
// time.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strconv"

	"github.com/signadot/sexpr/syntax"

	"golang.org/x/tools/imports"
)

var ErrBadName = errors.New("bad identifier")

type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Func names the generated function.
	Func string
	// Source, if set, is mentioned in the generated header.
	Source string
}

// Generate returns a formatted Go file declaring
//
//	func <Func>() (*syntax.Graph, error)
//
// which builds a grammar equivalent to g.
func Generate(g *syntax.Graph, cfg *Config) ([]byte, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("%w: package %q", ErrBadName, cfg.Package)
	}
	if !token.IsIdentifier(cfg.Func) {
		return nil, fmt.Errorf("%w: func %q", ErrBadName, cfg.Func)
	}
	buf := bytes.NewBuffer(nil)
	from := ""
	if cfg.Source != "" {
		from = " from " + cfg.Source
	}
	fmt.Fprintf(buf, "// Code generated by sexpr gen%s. DO NOT EDIT.\n\n", from)
	fmt.Fprintf(buf, "package %s\n\n", cfg.Package)
	fmt.Fprintf(buf, "import %q\n\n", "github.com/signadot/sexpr/syntax")
	fmt.Fprintf(buf, "func %s() (*syntax.Graph, error) {\n", cfg.Func)
	fmt.Fprintf(buf, "return syntax.NewBuilder(%s).\n", strconv.Quote(string(g.Root().Name())))
	for _, e := range g.Elements() {
		tag := strconv.Quote(string(e.Tag()))
		ctx := strconv.Quote(string(e.ChildContext()))
		switch e := e.(type) {
		case *syntax.Encloser:
			fmt.Fprintf(buf, "Encloser(%s, %q, %q, %s).\n", tag, e.Opener(), e.Closer(), ctx)
		case *syntax.SymmetricEncloser:
			fmt.Fprintf(buf, "SymmetricEncloser(%s, %q, %s).\n", tag, e.Opener(), ctx)
		case *syntax.Operator:
			fmt.Fprintf(buf, "Operator(%s, %q, %d, %d, %s).\n", tag, e.Opener(), e.Left(), e.Right(), ctx)
		}
	}
	for _, c := range g.Contexts() {
		fmt.Fprintf(buf, "Context(syntax.ContextDef{\n")
		fmt.Fprintf(buf, "Name: %q,\n", string(c.Name()))
		fmt.Fprintf(buf, "Tags: []syntax.Tag{")
		for i, t := range c.Tags() {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(strconv.Quote(string(t)))
		}
		buf.WriteString("},\n")
		fmt.Fprintf(buf, "Whitespace: %q,\n", c.Whitespace())
		if r, ok := c.Escape(); ok {
			fmt.Fprintf(buf, "Escape: %q,\n", r)
		}
		buf.WriteString("}).\n")
	}
	buf.WriteString("Build()\n}\n")
	return imports.Process(cfg.Func+".go", buf.Bytes(), nil)
}
