package parse_test

import (
	"fmt"

	"github.com/signadot/sexpr/parse"
	"github.com/signadot/sexpr/syntax"
)

func ExampleParser_ReadAll() {
	g, err := syntax.NewBuilder("root").
		Encloser("", "(", ")", "root").
		Operator("PLUS", "+", 1, 1, "root").
		Context(syntax.ContextDef{Name: "root", Tags: []syntax.Tag{"", "PLUS"}, Whitespace: " "}).
		Build()
	if err != nil {
		panic(err)
	}
	for _, r := range parse.New(g, "+1 (1+2+3) x").ReadAll() {
		if pe, ok := r.Err.(*parse.ParseError); ok {
			fmt.Println("error:", pe.Err, pe.Token)
			continue
		}
		fmt.Println(r.Node.Sexp())
	}
	// Output:
	// error: operator missing left argument +
	// 1
	// ((PLUS (PLUS 1 2) 3))
	// x
}
