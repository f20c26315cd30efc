package document_test

import (
	"fmt"

	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/langdef"
	"github.com/signadot/sexpr/parse"
	"github.com/signadot/sexpr/token"
)

func ExampleDocument_InnermostEnclosingPath() {
	g, err := langdef.Lisp().Graph()
	if err != nil {
		panic(err)
	}
	d, err := document.FromParser(parse.New(g, "(* (+ 1 2) 3)"))
	if err != nil {
		panic(err)
	}
	p := d.InnermostEnclosingPath(token.Span{Start: 6, End: 7})
	n, _ := d.Subtree(p.Parent())
	fmt.Println(p)
	fmt.Println(n.Sexp())
	fmt.Println(len(d.InnermostEnclosingPath(token.Span{Start: 100, End: 200})))
	// Output:
	// [0][1][1]
	// (+ 1 2)
	// 0
}
