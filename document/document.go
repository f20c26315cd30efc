package document

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/signadot/sexpr/debug"
	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/parse"
	"github.com/signadot/sexpr/token"
)

var ErrNoSuchPath = errors.New("no such path")

// Document is an immutable forest of parsed trees.
type Document struct {
	trees []*ir.Node
	index map[*ir.Node]int
	pd    *token.PosDoc
}

type Option func(*Document)

// WithSource records the text the trees were read from, for line and
// column lookups.
func WithSource(src string) Option {
	return func(d *Document) { d.pd = token.NewPosDoc([]byte(src)) }
}

func withPosDoc(pd *token.PosDoc) Option {
	return func(d *Document) { d.pd = pd }
}

// New indexes a copy of trees.  The nodes themselves are shared and must
// not be modified afterwards.
func New(trees []*ir.Node, opts ...Option) *Document {
	d := &Document{
		trees: slices.Clone(trees),
		index: make(map[*ir.Node]int, len(trees)),
	}
	for i, t := range d.trees {
		d.index[t] = i
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// FromParser reads every remaining tree of p.  It fails with the first
// parse error.
func FromParser(p *parse.Parser, opts ...Option) (*Document, error) {
	trees, err := p.Trees()
	if err != nil {
		return nil, err
	}
	return New(trees, append([]Option{withPosDoc(p.PosDoc())}, opts...)...), nil
}

func (d *Document) Trees() []*ir.Node {
	return slices.Clone(d.trees)
}

// PosDoc returns the source position index, or nil if the source is
// unknown.
func (d *Document) PosDoc() *token.PosDoc {
	return d.pd
}

// Subtree returns the node at path.
func (d *Document) Subtree(path Path) (*ir.Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrNoSuchPath)
	}
	kids := d.trees
	var n *ir.Node
	for depth, i := range path {
		if i < 0 || i >= len(kids) {
			return nil, fmt.Errorf("%w: %s: index %d out of range at %s", ErrNoSuchPath, path, i, path[:depth])
		}
		n = kids[i]
		kids = n.Values
	}
	return n, nil
}

// InnermostEnclosingPath returns the path of the deepest node whose span
// contains r, bounds included.  At each level the first containing child
// is taken.  The path is empty when no top level tree contains r.
func (d *Document) InnermostEnclosingPath(r token.Span) Path {
	res := Path{}
	kids := d.trees
	for {
		i := firstContaining(kids, r)
		if i < 0 {
			break
		}
		res = append(res, i)
		kids = kids[i].Values
	}
	if debug.Doc() {
		debug.Logf("enclosing %s -> %s\n", r, res)
	}
	return res
}

// NodeAt is the node at InnermostEnclosingPath(r), or nil.
func (d *Document) NodeAt(r token.Span) *ir.Node {
	p := d.InnermostEnclosingPath(r)
	if len(p) == 0 {
		return nil
	}
	n, _ := d.Subtree(p)
	return n
}

// PathOf returns the path of n, which must belong to one of d's trees.
func (d *Document) PathOf(n *ir.Node) (Path, error) {
	i, ok := d.index[n.Root()]
	if !ok {
		return nil, fmt.Errorf("%w: node is not in the document", ErrNoSuchPath)
	}
	return append(Path{i}, n.Indices()...), nil
}

// Walk visits every node of the document in pre-order with its path.
// Returning false from visit stops the walk.
func (d *Document) Walk(visit func(Path, *ir.Node) bool) {
	for i, t := range d.trees {
		if !walk(Path{i}, t, visit) {
			return
		}
	}
}

func walk(p Path, n *ir.Node, visit func(Path, *ir.Node) bool) bool {
	if !visit(p, n) {
		return false
	}
	for i, c := range n.Values {
		if !walk(append(p[:len(p):len(p)], i), c, visit) {
			return false
		}
	}
	return true
}

// firstContaining returns the index of the first of the ordered nodes
// whose span contains r, or -1.
func firstContaining(nodes []*ir.Node, r token.Span) int {
	i := sort.Search(len(nodes), func(i int) bool {
		return nodes[i].Span.End >= r.Start
	})
	for ; i < len(nodes) && nodes[i].Span.Start <= r.Start; i++ {
		if nodes[i].Span.Contains(r) {
			return i
		}
	}
	return -1
}
