package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/syntax"
)

type EncState struct {
	format Format
	spans  bool
	tokens bool
	indent int

	w     io.Writer
	depth int
	err   error

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(w io.Writer, opts []EncodeOption) *EncState {
	es := &EncState{indent: 2, w: w}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(w, opts)
	if es.format == JSONFormat {
		return es.json(node)
	}
	es.encode(node)
	return es.err
}

// EncodeAll writes each of nodes to w.  In JSON format the nodes are
// written as a single array.
func EncodeAll(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(w, opts)
	if es.format == JSONFormat {
		if nodes == nil {
			nodes = []*ir.Node{}
		}
		return es.json(nodes)
	}
	for _, node := range nodes {
		es.encode(node)
		if es.err != nil {
			return es.err
		}
	}
	return nil
}

func (es *EncState) encode(node *ir.Node) {
	switch es.format {
	case SexpFormat:
		es.sexp(node)
		es.write("\n")
	case TreeFormat:
		es.depth = 0
		es.tree(node)
	default:
		es.err = fmt.Errorf("%w: %d", ErrBadFormat, es.format)
	}
}

func (es *EncState) json(v any) error {
	d, err := json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = es.w.Write(d)
	return err
}

func (es *EncState) write(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) span(node *ir.Node) string {
	return es.color(node.Type, SpanColor, "@"+node.Span.String())
}

func (es *EncState) sexp(node *ir.Node) {
	if node.IsLeaf() {
		es.write(es.color(node.Type, ValueColor, node.String))
		if es.spans {
			es.write(es.span(node))
		}
		return
	}
	if es.tokens {
		es.tokenSexp(node)
		return
	}
	es.write(es.color(node.Type, SepColor, "("))
	sep := false
	if node.Tag != "" {
		es.write(es.color(node.Type, TagColor, string(node.Tag)))
		sep = true
	}
	if es.spans {
		es.write(es.span(node))
		sep = true
	}
	for _, c := range node.Values {
		if sep {
			es.write(" ")
		}
		es.sexp(c)
		sep = true
	}
	es.write(es.color(node.Type, SepColor, ")"))
}

func (es *EncState) tokenSexp(node *ir.Node) {
	tok := func(s string) {
		es.write(es.color(node.Type, TokenColor, s))
	}
	op, ok := node.Element.(*syntax.Operator)
	if !ok {
		tok(node.Element.Opener())
		for i, c := range node.Values {
			if i > 0 {
				es.write(" ")
			}
			es.sexp(c)
		}
		tok(node.Element.Closer())
		return
	}
	left := min(op.Left(), len(node.Values))
	for _, c := range node.Values[:left] {
		es.sexp(c)
		es.write(" ")
	}
	tok(op.Opener())
	for i, c := range node.Values[left:] {
		if i > 0 || left > 0 {
			es.write(" ")
		}
		es.sexp(c)
	}
}

func (es *EncState) tree(node *ir.Node) {
	es.write(strings.Repeat(" ", es.depth*es.indent))
	es.write(es.color(node.Type, TagColor, node.Type.String()))
	es.write(" ")
	if node.IsLeaf() {
		es.write(es.color(node.Type, ValueColor, strconv.Quote(node.String)))
	} else {
		tag := string(node.Tag)
		if tag == "" {
			tag = `""`
		}
		es.write(es.color(node.Type, TagColor, tag))
		es.write(" ")
		toks := strconv.Quote(node.Element.Opener())
		if c := node.Element.Closer(); c != "" {
			toks += " " + strconv.Quote(c)
		}
		es.write(es.color(node.Type, TokenColor, toks))
	}
	if es.spans {
		es.write(" ")
		es.write(es.color(node.Type, SpanColor, node.Span.String()))
	}
	es.write("\n")
	es.depth++
	for _, c := range node.Values {
		es.tree(c)
	}
	es.depth--
}
