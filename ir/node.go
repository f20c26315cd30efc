package ir

import (
	"iter"
	"strings"

	"github.com/signadot/sexpr/syntax"
	"github.com/signadot/sexpr/token"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	Span token.Span

	// String is the literal text of a leaf.
	String string

	// Tag and Element are set on inner nodes.
	Tag     syntax.Tag
	Element syntax.Element
	Values  []*Node
}

func Leaf(text string, span token.Span) *Node {
	return &Node{Type: LeafType, String: text, Span: span}
}

// Inner creates an inner node for e over span, adopting children.
func Inner(e syntax.Element, span token.Span, children ...*Node) *Node {
	res := &Node{
		Type:    TypeOf(e.Kind()),
		Span:    span,
		Tag:     e.Tag(),
		Element: e,
	}
	res.Adopt(children...)
	return res
}

// Adopt appends children to y and points their parent links at y.
func (y *Node) Adopt(children ...*Node) {
	for _, c := range children {
		c.Parent = y
		c.ParentIndex = len(y.Values)
		y.Values = append(y.Values, c)
	}
}

func (y *Node) IsLeaf() bool {
	return y.Type == LeafType
}

// Token returns the literal opening token of the node's element, or the
// text of a leaf.
func (y *Node) Token() string {
	if y.Element == nil {
		return y.String
	}
	return y.Element.Opener()
}

// Root follows parent links to the top of y's tree.
func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}

// Depth is the number of ancestors of y.
func (y *Node) Depth() int {
	n := 0
	for p := y.Parent; p != nil; p = p.Parent {
		n++
	}
	return n
}

// Indices returns the child indices leading from y's root to y.
func (y *Node) Indices() []int {
	var res []int
	for x := y; x.Parent != nil; x = x.Parent {
		res = append(res, x.ParentIndex)
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// Walk visits y and its descendants in pre-order.
func (y *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		y.walk(yield)
	}
}

func (y *Node) walk(yield func(*Node) bool) bool {
	if !yield(y) {
		return false
	}
	for _, c := range y.Values {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Span = y.Span
	dst.String = y.String
	dst.Tag = y.Tag
	dst.Element = y.Element
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

// Sexp renders y compactly, inner nodes as parenthesized lists headed by
// their tag when it is not empty.
func (y *Node) Sexp() string {
	buf := &strings.Builder{}
	y.sexp(buf)
	return buf.String()
}

func (y *Node) sexp(buf *strings.Builder) {
	if y.IsLeaf() {
		buf.WriteString(y.String)
		return
	}
	buf.WriteByte('(')
	sep := false
	if y.Tag != "" {
		buf.WriteString(string(y.Tag))
		sep = true
	}
	for _, c := range y.Values {
		if sep {
			buf.WriteByte(' ')
		}
		c.sexp(buf)
		sep = true
	}
	buf.WriteByte(')')
}
