package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const ws = " \n\t\r"

func multiBracket(t *testing.T) *Graph {
	t.Helper()
	g, err := NewBuilder("root").
		Context(ContextDef{Name: "root", Tags: []Tag{"", ":SQUARE", ":CURLY", ":HASH_CURLY"}, Whitespace: ws}).
		Encloser("", "(", ")", "root").
		Encloser(":SQUARE", "[", "]", "root").
		Encloser(":CURLY", "{", "}", "root").
		Encloser(":HASH_CURLY", "#{", "}", "root").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuildLookups(t *testing.T) {
	g := multiBracket(t)
	if g.Root().Name() != "root" {
		t.Errorf("root %q", g.Root().Name())
	}
	e, ok := g.Element(":HASH_CURLY")
	if !ok {
		t.Fatal("no :HASH_CURLY")
	}
	if e.Kind() != EncloserKind || e.Opener() != "#{" || e.Closer() != "}" {
		t.Errorf("unexpected element %s", e)
	}
	if g.ContextFor(":CURLY") != g.Root() {
		t.Errorf("expected :CURLY children in root")
	}
	if g.ContextFor("nope") != nil {
		t.Errorf("expected nil context for unknown tag")
	}
	if len(g.Elements()) != 4 || len(g.Contexts()) != 1 {
		t.Errorf("got %d elements %d contexts", len(g.Elements()), len(g.Contexts()))
	}
	if !g.Root().IsWhitespace('\t') || g.Root().IsWhitespace('x') {
		t.Errorf("whitespace")
	}
	if _, ok := g.Root().Escape(); ok {
		t.Errorf("unexpected escape")
	}
}

func TestOpenerOrder(t *testing.T) {
	g := multiBracket(t)
	var got []string
	for _, e := range g.Root().Openers() {
		got = append(got, e.Opener())
	}
	expected := []string{"#{", "{", "[", "("}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("opener order (-want +got):\n%s", diff)
	}
	if e := g.Root().MatchOpener("#{1}"); e == nil || e.Tag() != ":HASH_CURLY" {
		t.Errorf("expected :HASH_CURLY, got %v", e)
	}
	if e := g.Root().MatchOpener("##{"); e != nil {
		t.Errorf("expected no match, got %v", e)
	}
	if c := g.Root().MatchCloser("})"); c == nil || c.Closer() != "}" {
		t.Errorf("expected } closer, got %v", c)
	}
}

func TestSymmetricNotStrayCloser(t *testing.T) {
	g, err := NewBuilder("root").
		Context(ContextDef{Name: "root", Tags: []Tag{"", "PIPE"}, Whitespace: ws}).
		Encloser("", "(", ")", "root").
		SymmetricEncloser("PIPE", "|", "root").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Root().Closers()) != 1 {
		t.Errorf("expected only the paren closer, got %d", len(g.Root().Closers()))
	}
}

func TestSameShapeLaterWins(t *testing.T) {
	g, err := NewBuilder("root").
		Context(ContextDef{Name: "root", Tags: []Tag{"A", "B"}}).
		Encloser("A", "<", ">", "root").
		Encloser("B", "<", ">", "root").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if e := g.Root().MatchOpener("<x>"); e.Tag() != "B" {
		t.Errorf("expected B, got %s", e.Tag())
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		b    *Builder
		err  error
	}{
		{
			name: "duplicate tag",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root"}).
				Encloser("X", "(", ")", "root").
				Encloser("X", "[", "]", "root"),
			err: ErrDuplicateTag,
		},
		{
			name: "duplicate context",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root"}).
				Context(ContextDef{Name: "root"}),
			err: ErrDuplicateContext,
		},
		{
			name: "undeclared root",
			b:    NewBuilder("root"),
			err:  ErrUndeclaredContext,
		},
		{
			name: "undeclared child context",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root", Tags: []Tag{""}}).
				Encloser("", "(", ")", "elsewhere"),
			err: ErrUndeclaredContext,
		},
		{
			name: "undeclared tag",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root", Tags: []Tag{"STRING"}}),
			err: ErrUndeclaredTag,
		},
		{
			name: "encloser opens with its closer",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root"}).
				Encloser("", "|", "|", "root"),
			err: ErrInvalidElement,
		},
		{
			name: "empty token",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root"}).
				SymmetricEncloser("", "", "root"),
			err: ErrInvalidElement,
		},
		{
			name: "nullary operator",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root"}).
				Operator("NOP", "~", 0, 0, "root"),
			err: ErrInvalidElement,
		},
		{
			name: "ambiguous opener",
			b: NewBuilder("root").
				Context(ContextDef{Name: "root", Tags: []Tag{"Q", "N"}}).
				Operator("Q", "'", 0, 1, "root").
				Operator("N", "'", 1, 1, "root"),
			err: ErrAmbiguousToken,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := c.b.Build()
			if g != nil {
				t.Errorf("expected no graph")
			}
			if !errors.Is(err, c.err) {
				t.Errorf("expected %v, got %v", c.err, err)
			}
		})
	}
}

func TestBuildJoinsErrors(t *testing.T) {
	_, err := NewBuilder("root").
		Encloser("", "(", "(", "nowhere").
		Build()
	for _, target := range []error{ErrInvalidElement, ErrUndeclaredContext} {
		if !errors.Is(err, target) {
			t.Errorf("expected %v in %v", target, err)
		}
	}
}

func TestAmbiguityIsPerContext(t *testing.T) {
	_, err := NewBuilder("root").
		Context(ContextDef{Name: "root", Tags: []Tag{"Q"}}).
		Context(ContextDef{Name: "other", Tags: []Tag{"N"}}).
		Operator("Q", "'", 0, 1, "root").
		Operator("N", "'", 1, 1, "other").
		Build()
	if err != nil {
		t.Fatal(err)
	}
}
