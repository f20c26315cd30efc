package parse

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/syntax"
	"github.com/signadot/sexpr/token"
)

const ws = " \n\t\r"

type enc struct {
	tag         syntax.Tag
	open, close string
}

type op struct {
	tag         syntax.Tag
	tok         string
	left, right int
}

// contextless builds a grammar with a single context permitting every
// element.
func contextless(t *testing.T, esc rune, encs []enc, ops []op) *syntax.Graph {
	t.Helper()
	b := syntax.NewBuilder("root")
	var tags []syntax.Tag
	for _, e := range encs {
		if e.open == e.close {
			b.SymmetricEncloser(e.tag, e.open, "root")
		} else {
			b.Encloser(e.tag, e.open, e.close, "root")
		}
		tags = append(tags, e.tag)
	}
	for _, o := range ops {
		b.Operator(o.tag, o.tok, o.left, o.right, "root")
		tags = append(tags, o.tag)
	}
	b.Context(syntax.ContextDef{Name: "root", Tags: tags, Whitespace: ws, Escape: esc})
	g, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func sexpGraph(t *testing.T) *syntax.Graph {
	return contextless(t, '\\', []enc{{"", "(", ")"}}, nil)
}

func plusGraph(t *testing.T) *syntax.Graph {
	return contextless(t, '\\', []enc{{"", "(", ")"}}, []op{{"PLUS", "+", 1, 1}})
}

// arityGraph mixes operators with more than one operand on either side.
func arityGraph(t *testing.T) *syntax.Graph {
	return contextless(t, 0, []enc{{"", "(", ")"}}, []op{
		{"PLUS", "+", 1, 1},
		{"TIMES", "*", 1, 1},
		{"TERN", "?", 2, 1},
		{"COMMA", ",", 1, 2},
	})
}

func pipeGraph(t *testing.T) *syntax.Graph {
	return contextless(t, 0, []enc{{"", "(", ")"}, {"PIPE", "|", "|"}}, nil)
}

func quoteGraph(t *testing.T) *syntax.Graph {
	return contextless(t, 0, []enc{{"", "(", ")"}}, []op{{"QUOTE", "'", 0, 1}})
}

func multiBracketGraph(t *testing.T) *syntax.Graph {
	return contextless(t, 0, []enc{
		{"", "(", ")"},
		{":SQUARE", "[", "]"},
		{":CURLY", "{", "}"},
		{":HASH_CURLY", "#{", "}"},
	}, nil)
}

func stringGraph(t *testing.T) *syntax.Graph {
	t.Helper()
	g, err := syntax.NewBuilder("root").
		Context(syntax.ContextDef{Name: "root", Tags: []syntax.Tag{"", "STRING"}, Whitespace: ws}).
		Context(syntax.ContextDef{Name: "string", Escape: '\\'}).
		Encloser("", "(", ")", "root").
		Encloser("STRING", `"`, `"`, "string").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func readOne(t *testing.T, g *syntax.Graph, src string) *ir.Node {
	t.Helper()
	n, err := New(g, src).ReadNext()
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	return n
}

func TestReadNext(t *testing.T) {
	cases := []struct {
		name  string
		graph func(*testing.T) *syntax.Graph
		in    string
		out   string
	}{
		{"terminal", sexpGraph, "hello!", "hello!"},
		{"whitespaced list", sexpGraph, " ( + 1 2 ) ", "(+ 1 2)"},
		{"list", sexpGraph, "(+ 1 2)", "(+ 1 2)"},
		{"terminal into opener", sexpGraph, "(a(b))", "(a (b))"},
		{"nested list", sexpGraph, "(* (+ 1 2) 3)", "(* (+ 1 2) 3)"},
		{"square bracket", multiBracketGraph, "[1 2]", "(:SQUARE 1 2)"},
		{"nested brackets", multiBracketGraph, "([{#{hello!}}])", "((:SQUARE (:CURLY (:HASH_CURLY hello!))))"},
		{"stray hashes", multiBracketGraph, "([{####{hello!}}])", "((:SQUARE (:CURLY ### (:HASH_CURLY hello!))))"},
		{"prefix op", quoteGraph, "'hello!", "(QUOTE hello!)"},
		{"prefix op in list", quoteGraph, "('hello! 'world!)", "((QUOTE hello!) (QUOTE world!))"},
		{"top level infix", plusGraph, "1+2", "(PLUS 1 2)"},
		{"spaced top level infix", plusGraph, "1 + 2", "(PLUS 1 2)"},
		{"solo infix in list", plusGraph, "(1+2)", "((PLUS 1 2))"},
		{"chained infix", plusGraph, "(1+2+3)", "((PLUS (PLUS 1 2) 3))"},
		{"terminals after infix", plusGraph, "(1+2 3)", "((PLUS 1 2) 3)"},
		{"infix after call", plusGraph, "(inc 1 + 2)", "(inc (PLUS 1 2))"},
		{"infix on list", plusGraph, "(a) + b", "(PLUS (a) b)"},
		{"two left operands", arityGraph, "(a b ? c)", "((TERN a b c))"},
		{"two right operands", arityGraph, "(a , b c)", "((COMMA a b c))"},
		{"completed infix as operand", arityGraph, "(1+2*3)", "((TIMES (PLUS 1 2) 3))"},
		{"ternary into comma", arityGraph, "(a b ? c , d e)", "((COMMA (TERN a b c) d e))"},
		{"list as pending right operand", arityGraph, "(a , (b c ? d) e)", "((COMMA a ((TERN b c d)) e))"},
		{"symmetric", pipeGraph, "|+ 1 2|", "(PIPE + 1 2)"},
		{"symmetric in list", pipeGraph, "(|+ 1 2| |a|)", "((PIPE + 1 2) (PIPE a))"},
		{"nested symmetric", pipeGraph, "|(|a|)|", "(PIPE ((PIPE a)))"},
		{"symmetric pair", pipeGraph, "|a|", "(PIPE a)"},
		{"escaped closer", sexpGraph, `(\))`, `(\))`},
		{"escaped opener", sexpGraph, `(\()`, `(\()`},
		{"escaped operator", plusGraph, `(\+)`, `(\+)`},
		{"escaped whitespace", sexpGraph, `(a\ b)`, `(a\ b)`},
		{"contextful whitespace", stringGraph, `(before string " inside string!!! " after string)`,
			`(before string (STRING  inside string!!! ) after string)`},
		{"contextful escape", stringGraph, `"\""`, `(STRING \")`},
		{"closer inert in string", stringGraph, `"(a)"`, `(STRING (a))`},
		{"utf8 leaves", sexpGraph, "(λ x→y)", "(λ x→y)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := readOne(t, c.graph(t), c.in)
			if got := n.Sexp(); got != c.out {
				t.Errorf("got %q expected %q", got, c.out)
			}
			checkSpans(t, c.in, n)
		})
	}
}

func TestContextfulBrackets(t *testing.T) {
	g, err := syntax.NewBuilder("root").
		Context(syntax.ContextDef{Name: "root", Tags: []syntax.Tag{"", "SQUARE"}, Whitespace: ws}).
		Context(syntax.ContextDef{Name: "include_angle", Tags: []syntax.Tag{"", "SQUARE", "ANGLE"}, Whitespace: ws}).
		Encloser("", "(", ")", "root").
		Encloser("SQUARE", "[", "]", "include_angle").
		Encloser("ANGLE", "<", ">", "include_angle").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	n := readOne(t, g, "(> < [<>])")
	if got, expected := n.Sexp(), "(> < (SQUARE (ANGLE)))"; got != expected {
		t.Errorf("got %q expected %q", got, expected)
	}
}

func TestContextfulOperator(t *testing.T) {
	g, err := syntax.NewBuilder("root").
		Context(syntax.ContextDef{Name: "root", Tags: []syntax.Tag{"", "COLON"}, Whitespace: ws}).
		Context(syntax.ContextDef{Name: "include_angle", Tags: []syntax.Tag{"", "ANGLE", "COLON"}, Whitespace: ws}).
		Encloser("", "(", ")", "root").
		Encloser("ANGLE", "<", ">", "include_angle").
		Operator("COLON", ":", 1, 1, "include_angle").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	n := readOne(t, g, "((> 1 0) : <Bool>)")
	if got, expected := n.Sexp(), "((COLON (> 1 0) (ANGLE Bool)))"; got != expected {
		t.Errorf("got %q expected %q", got, expected)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name  string
		graph func(*testing.T) *syntax.Graph
		in    string
		err   error
		tok   string
		off   int
	}{
		{"unclosed list", sexpGraph, "(+ 1 2", ErrOpenEncloser, "(", 0},
		{"innermost unclosed", multiBracketGraph, "(a [b", ErrOpenEncloser, "[", 3},
		{"mismatched brackets", multiBracketGraph, "([)]", ErrUnexpectedCloser, ")", 2},
		{"unopened closer", sexpGraph, ")", ErrUnexpectedCloser, ")", 0},
		{"missing left", plusGraph, "(+2)", ErrMissingLeftArgument, "+", 1},
		{"one of two left operands", arityGraph, "(a ? c)", ErrMissingLeftArgument, "?", 3},
		{"infix after pending infix", arityGraph, "1+*2", ErrMissingLeftArgument, "*", 2},
		{"doubled infix", arityGraph, "(1++2)", ErrMissingLeftArgument, "+", 3},
		{"held operand not shared", arityGraph, "(a , b ? c d e)", ErrMissingLeftArgument, "?", 7},
		{"unfinished infix", plusGraph, "(1+)", ErrMissingRightArgument, "+", 2},
		{"unfinished top level infix", plusGraph, "1+", ErrMissingRightArgument, "+", 1},
		{"unfinished prefix", quoteGraph, "(a ')", ErrMissingRightArgument, "'", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.graph(t), c.in).ReadNext()
			if !errors.Is(err, c.err) {
				t.Fatalf("expected %v, got %v", c.err, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Token != c.tok || pe.Pos.I != c.off {
				t.Errorf("got token %q at %d, expected %q at %d", pe.Token, pe.Pos.I, c.tok, c.off)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := New(sexpGraph(t), "(a\n (b").ReadNext()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, `end of text with open encloser "(" at `) || !strings.Contains(msg, "line=1, col=1") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestTerminalErrorSticks(t *testing.T) {
	p := New(multiBracketGraph(t), "([)] (ok)")
	_, err1 := p.ReadNext()
	_, err2 := p.ReadNext()
	if err1 == nil || err1 != err2 {
		t.Errorf("expected the same terminal error twice, got %v then %v", err1, err2)
	}
}

func TestResumeAfterMissingArgument(t *testing.T) {
	p := New(plusGraph(t), "+ 1 (2 3)")
	if _, err := p.ReadNext(); !errors.Is(err, ErrMissingLeftArgument) {
		t.Fatalf("expected missing left argument, got %v", err)
	}
	var got []string
	for n, err := range p.All() {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, n.Sexp())
	}
	if diff := cmp.Diff([]string{"1", "(2 3)"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadTwo(t *testing.T) {
	p := New(sexpGraph(t), "(+ 1 2) (* 3 4)")
	for _, expected := range []string{"(+ 1 2)", "(* 3 4)"} {
		n, err := p.ReadNext()
		if err != nil {
			t.Fatal(err)
		}
		if n.Sexp() != expected {
			t.Errorf("got %q expected %q", n.Sexp(), expected)
		}
	}
	if _, err := p.ReadNext(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
	if _, err := p.ReadNext(); err != io.EOF {
		t.Errorf("expected EOF again, got %v", err)
	}
}

func TestReadAll(t *testing.T) {
	res := New(sexpGraph(t), "(+ 1 2) (* 3 4)").ReadAll()
	if len(res) != 2 || res[0].Err != nil || res[1].Err != nil {
		t.Fatalf("unexpected %v", res)
	}
	if res[1].Node.Sexp() != "(* 3 4)" {
		t.Errorf("got %q", res[1].Node.Sexp())
	}

	res = New(sexpGraph(t), "(+ 1 2) (* 3 4").ReadAll()
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if res[0].Err != nil || res[0].Node.Sexp() != "(+ 1 2)" {
		t.Errorf("unexpected first result %v", res[0])
	}
	var pe *ParseError
	if !errors.As(res[1].Err, &pe) || !errors.Is(pe, ErrOpenEncloser) || pe.Token != "(" {
		t.Errorf("unexpected second result %v", res[1].Err)
	}

	if res := New(sexpGraph(t), "  \n").ReadAll(); len(res) != 0 {
		t.Errorf("expected nothing from whitespace, got %v", res)
	}
}

func TestTopLevelSplits(t *testing.T) {
	got, err := Parse(plusGraph(t), "a (b) 1 + 2 3 hello(world)")
	if err != nil {
		t.Fatal(err)
	}
	var sexps []string
	for _, n := range got {
		sexps = append(sexps, n.Sexp())
	}
	expected := []string{"a", "(b)", "(PLUS 1 2)", "3", "hello", "(world)"}
	if diff := cmp.Diff(expected, sexps); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type spanned struct {
	Type ir.Type
	Text string
	Span token.Span
	Kids []spanned
}

func toSpanned(n *ir.Node) spanned {
	s := spanned{Type: n.Type, Text: n.String, Span: n.Span}
	if !n.IsLeaf() {
		s.Text = string(n.Tag)
	}
	for _, c := range n.Values {
		s.Kids = append(s.Kids, toSpanned(c))
	}
	return s
}

func leaf(text string, start, end int) spanned {
	return spanned{Type: ir.LeafType, Text: text, Span: token.Span{Start: start, End: end}}
}

func inner(typ ir.Type, tag string, start, end int, kids ...spanned) spanned {
	return spanned{Type: typ, Text: tag, Span: token.Span{Start: start, End: end}, Kids: kids}
}

func TestSpans(t *testing.T) {
	cases := []struct {
		name  string
		graph func(*testing.T) *syntax.Graph
		in    string
		out   spanned
	}{
		{
			name:  "solo",
			graph: sexpGraph,
			in:    "(+ 1 2)",
			out: inner(ir.EncloserType, "", 0, 7,
				leaf("+", 1, 2), leaf("1", 3, 4), leaf("2", 5, 6)),
		},
		{
			name:  "nested",
			graph: sexpGraph,
			in:    "(* (+ 1 2) 3)",
			out: inner(ir.EncloserType, "", 0, 13,
				leaf("*", 1, 2),
				inner(ir.EncloserType, "", 3, 10,
					leaf("+", 4, 5), leaf("1", 6, 7), leaf("2", 8, 9)),
				leaf("3", 11, 12)),
		},
		{
			name:  "multi bracket",
			graph: multiBracketGraph,
			in:    "(union #{1 20} #{})",
			out: inner(ir.EncloserType, "", 0, 19,
				leaf("union", 1, 6),
				inner(ir.EncloserType, ":HASH_CURLY", 7, 14, leaf("1", 9, 10), leaf("20", 11, 13)),
				inner(ir.EncloserType, ":HASH_CURLY", 15, 18)),
		},
		{
			name:  "infix",
			graph: plusGraph,
			in:    "(1+2)",
			out: inner(ir.EncloserType, "", 0, 5,
				inner(ir.OperatorType, "PLUS", 1, 4, leaf("1", 1, 2), leaf("2", 3, 4))),
		},
		{
			name:  "prefix",
			graph: quoteGraph,
			in:    "'hello!",
			out:   inner(ir.OperatorType, "QUOTE", 0, 7, leaf("hello!", 1, 7)),
		},
		{
			name:  "symmetric",
			graph: pipeGraph,
			in:    " |a| ",
			out:   inner(ir.SymmetricType, "PIPE", 1, 4, leaf("a", 2, 3)),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := readOne(t, c.graph(t), c.in)
			if diff := cmp.Diff(c.out, toSpanned(n)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

// checkSpans verifies containment and ordering of spans and that leaf
// text is the source text of the leaf's span.
func renderResults(rs []Result) []string {
	var res []string
	for _, r := range rs {
		if r.Err != nil {
			res = append(res, r.Err.Error())
			continue
		}
		res = append(res, r.Node.Sexp())
	}
	return res
}

func TestSharedGraph(t *testing.T) {
	g := arityGraph(t)
	inputs := []string{"(a b ? c , d e)", "(1+2*3) x", "1+*2", "(a , (b c ? d) e)", "(a ? c) (b"}
	expected := make([][]string, len(inputs))
	for i, in := range inputs {
		expected[i] = renderResults(New(g, in).ReadAll())
	}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				got := renderResults(New(g, in).ReadAll())
				if diff := cmp.Diff(expected[i], got); diff != "" {
					t.Errorf("%q (-want +got):\n%s", in, diff)
				}
			}
		}()
	}
	wg.Wait()
}

func checkSpans(t *testing.T, src string, n *ir.Node) {
	t.Helper()
	if n.IsLeaf() {
		if src[n.Span.Start:n.Span.End] != n.String {
			t.Errorf("leaf %q has span %s covering %q", n.String, n.Span, src[n.Span.Start:n.Span.End])
		}
		return
	}
	prev := n.Span.Start
	for i, c := range n.Values {
		if !n.Span.Contains(c.Span) {
			t.Errorf("%s does not contain child %d %s", n.Span, i, c.Span)
		}
		if c.Span.Start < prev {
			t.Errorf("child %d %s overlaps its predecessor", i, c.Span)
		}
		prev = c.Span.End
		if c.Parent != n || c.ParentIndex != i {
			t.Errorf("bad parent link on child %d", i)
		}
		checkSpans(t, src, c)
	}
}
