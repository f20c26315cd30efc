package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/parse"
	"github.com/signadot/sexpr/syntax"
)

func doc(t *testing.T, src string) *document.Document {
	t.Helper()
	g, err := syntax.NewBuilder("root").
		Encloser("", "(", ")", "root").
		Operator("PLUS", "+", 1, 1, "root").
		Context(syntax.ContextDef{Name: "root", Tags: []syntax.Tag{"", "PLUS"}, Whitespace: " \n"}).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	d, err := document.FromParser(parse.New(g, src))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSelect(t *testing.T) {
	d := doc(t, "(a 1+2) x (b (c))")
	cases := []struct {
		query string
		paths []string
	}{
		{`kind == "Operator"`, []string{"[0][1]"}},
		{`leaf && depth == 0`, []string{"[1]"}},
		{`leaf && text matches "^[0-9]+$"`, []string{"[0][1][0]", "[0][1][1]"}},
		{`parent == "PLUS"`, []string{"[0][1][0]", "[0][1][1]"}},
		{`hasChild("PLUS")`, []string{"[0]"}},
		{`kind == "Encloser" && children == 0`, nil},
		{`!leaf && within(10, 17)`, []string{"[2]", "[2][1]"}},
		{`start == 0 && end == 7`, []string{"[0]"}},
		{`token == "("`, []string{"[0]", "[2]", "[2][1]"}},
		{`path == "[2][1][0]"`, []string{"[2][1][0]"}},
	}
	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			q, err := Compile(c.query)
			if err != nil {
				t.Fatal(err)
			}
			paths, err := q.Select(d)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, p := range paths {
				got = append(got, p.String())
			}
			if diff := cmp.Diff(c.paths, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("SEXPR_TEST_TAG", "PLUS")
	q, err := Compile(`tag == getenv("SEXPR_TEST_TAG")`)
	if err != nil {
		t.Fatal(err)
	}
	paths, err := q.Select(doc(t, "1+2"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0].String() != "[0]" {
		t.Errorf("unexpected %v", paths)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`tag +`, `depth`, `nosuch == 1`} {
		_, err := Compile(src)
		if !errors.Is(err, ErrQuery) {
			t.Errorf("%s: expected ErrQuery, got %v", src, err)
		}
	}
}
