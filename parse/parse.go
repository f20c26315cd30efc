package parse

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/syntax"
	"github.com/signadot/sexpr/token"
)

// frame is an open element.
type frame struct {
	elem syntax.Element
	// start is where the node's span will start.
	start int
	// tokStart and tokEnd delimit the opening token.
	tokStart, tokEnd int
	// held counts the left operands the frame took from its parent scope.
	held int
	ctx  *syntax.Context
}

// Parser reads trees from one source.  It must not be used concurrently.
type Parser struct {
	g   *syntax.Graph
	src string
	pd  *token.PosDoc
	log *slog.Logger

	pos    int
	frames []frame
	// acc[i] holds the children read so far in the scope of frames[i-1];
	// acc[0] is the top level.
	acc     [][]*ir.Node
	leaf    int
	escaped bool
	err     error
}

// Result is the outcome of one read.
type Result struct {
	Node *ir.Node
	Err  error
}

func New(g *syntax.Graph, text string, opts ...ParseOption) *Parser {
	pOpts := newParseOpts(opts)
	return &Parser{
		g:    g,
		src:  text,
		pd:   token.NewPosDoc([]byte(text)),
		log:  pOpts.log,
		acc:  [][]*ir.Node{nil},
		leaf: -1,
	}
}

// Parse reads every tree of text, stopping at the first error.
func Parse(g *syntax.Graph, text string, opts ...ParseOption) ([]*ir.Node, error) {
	return New(g, text, opts...).Trees()
}

func (p *Parser) Graph() *syntax.Graph { return p.g }

func (p *Parser) Source() string { return p.src }

// PosDoc maps the parser's offsets to lines and columns.
func (p *Parser) PosDoc() *token.PosDoc { return p.pd }

// ReadNext returns the next top level tree, or io.EOF once the source is
// exhausted.  Other errors are *ParseError.
func (p *Parser) ReadNext() (*ir.Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	for {
		if len(p.frames) == 0 && len(p.acc[0]) > 0 && p.leaf < 0 && !p.extendsTop() {
			return p.yield(), nil
		}
		if p.pos >= len(p.src) {
			return p.eof()
		}
		if err := p.step(); err != nil {
			return nil, err
		}
	}
}

// ReadAll reads until the source is exhausted or a terminal error occurs.
func (p *Parser) ReadAll() []Result {
	var res []Result
	for n, err := range p.All() {
		res = append(res, Result{Node: n, Err: err})
	}
	return res
}

// All iterates over the outcomes of ReadAll.
func (p *Parser) All() iter.Seq2[*ir.Node, error] {
	return func(yield func(*ir.Node, error) bool) {
		for {
			n, err := p.ReadNext()
			if err == io.EOF {
				return
			}
			if !yield(n, err) {
				return
			}
			if pe, ok := err.(*ParseError); ok && pe.Terminal() {
				return
			}
		}
	}
}

// Trees returns all remaining trees, or the first error.
func (p *Parser) Trees() ([]*ir.Node, error) {
	var res []*ir.Node
	for n, err := range p.All() {
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func (p *Parser) context() *syntax.Context {
	if len(p.frames) == 0 {
		return p.g.Root()
	}
	return p.frames[len(p.frames)-1].ctx
}

// innerEncloser returns the index of the innermost open encloser frame,
// or -1.
func (p *Parser) innerEncloser() int {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].elem.Kind() != syntax.OperatorKind {
			return i
		}
	}
	return -1
}

// match resolves the token at s against c's openers and stray closers.
func match(c *syntax.Context, s string) (syntax.Element, *syntax.Encloser) {
	e := c.MatchOpener(s)
	closer := c.MatchCloser(s)
	if closer != nil && (e == nil || len(closer.Closer()) > len(e.Opener())) {
		return nil, closer
	}
	return e, nil
}

func (p *Parser) step() error {
	c := p.context()
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	if p.escaped {
		p.escaped = false
		p.pos += size
		return nil
	}
	if esc, ok := c.Escape(); ok && r == esc {
		if p.leaf < 0 {
			p.leaf = p.pos
		}
		p.escaped = true
		p.pos += size
		return nil
	}
	rest := p.src[p.pos:]
	if fi := p.innerEncloser(); fi >= 0 && strings.HasPrefix(rest, p.frames[fi].elem.Closer()) {
		p.flushLeaf()
		top := &p.frames[len(p.frames)-1]
		if top.elem.Kind() == syntax.OperatorKind {
			err := p.errorAt(ErrMissingRightArgument, top.elem, top.tokStart)
			p.reset(p.pos + len(p.frames[fi].elem.Closer()))
			return err
		}
		end := p.pos + len(top.elem.Closer())
		p.attach(p.pop(end))
		p.pos = end
		return nil
	}
	e, stray := match(c, rest)
	if stray != nil {
		p.flushLeaf()
		p.err = &ParseError{
			Err:   ErrUnexpectedCloser,
			Token: stray.Closer(),
			Tag:   stray.Tag(),
			Pos:   p.pd.Pos(p.pos),
		}
		return p.err
	}
	if e != nil {
		p.flushLeaf()
		if len(p.frames) == 0 && len(p.acc[0]) > 0 && !extends(e) {
			// the value read so far is complete
			return nil
		}
		return p.open(e)
	}
	if c.IsWhitespace(r) {
		p.flushLeaf()
		p.pos += size
		return nil
	}
	if p.leaf < 0 {
		p.leaf = p.pos
	}
	p.pos += size
	return nil
}

// extends reports whether e takes the preceding expression as an operand.
func extends(e syntax.Element) bool {
	op, ok := e.(*syntax.Operator)
	return ok && op.Left() > 0
}

func (p *Parser) open(e syntax.Element) error {
	tokStart, tokEnd := p.pos, p.pos+len(e.Opener())
	f := frame{
		elem:     e,
		start:    tokStart,
		tokStart: tokStart,
		tokEnd:   tokEnd,
		ctx:      p.g.Context(e.ChildContext()),
	}
	op, isOp := e.(*syntax.Operator)
	if !isOp {
		p.push(f, nil)
		p.pos = tokEnd
		return nil
	}
	top := len(p.acc) - 1
	sibs := p.acc[top]
	// an enclosing operator's own left operands are not available
	avail := len(sibs)
	if len(p.frames) > 0 {
		avail -= p.frames[len(p.frames)-1].held
	}
	if avail < op.Left() {
		err := p.errorAt(ErrMissingLeftArgument, e, tokStart)
		p.reset(tokEnd)
		return err
	}
	left := append([]*ir.Node(nil), sibs[len(sibs)-op.Left():]...)
	p.acc[top] = sibs[:len(sibs)-op.Left()]
	if len(left) > 0 {
		f.start = left[0].Span.Start
	}
	f.held = len(left)
	p.push(f, left)
	p.pos = tokEnd
	if op.Right() == 0 {
		p.attach(p.pop(tokEnd))
	}
	return nil
}

func (p *Parser) push(f frame, children []*ir.Node) {
	if p.log != nil {
		p.log.Debug("open", "kind", f.elem.Kind(), "tag", string(f.elem.Tag()), "offset", f.tokStart)
	}
	p.frames = append(p.frames, f)
	p.acc = append(p.acc, children)
}

// pop closes the innermost frame as a node ending at end.
func (p *Parser) pop(end int) *ir.Node {
	if len(p.frames) == 0 || len(p.acc) < 2 {
		panic(fmt.Sprintf("%v: pop with %d frames", errInternal, len(p.frames)))
	}
	f := p.frames[len(p.frames)-1]
	children := p.acc[len(p.acc)-1]
	p.frames = p.frames[:len(p.frames)-1]
	p.acc = p.acc[:len(p.acc)-1]
	if n := len(children); n > 0 {
		end = max(end, children[n-1].Span.End)
	}
	if p.log != nil {
		p.log.Debug("close", "kind", f.elem.Kind(), "tag", string(f.elem.Tag()), "start", f.start, "end", end)
	}
	return ir.Inner(f.elem, token.Span{Start: f.start, End: end}, children...)
}

// attach appends n to the current scope, closing every operator this
// completes.
func (p *Parser) attach(n *ir.Node) {
	for {
		top := len(p.acc) - 1
		p.acc[top] = append(p.acc[top], n)
		if len(p.frames) == 0 {
			return
		}
		f := &p.frames[len(p.frames)-1]
		op, ok := f.elem.(*syntax.Operator)
		if !ok || len(p.acc[top]) < op.Left()+op.Right() {
			return
		}
		n = p.pop(f.tokEnd)
	}
}

func (p *Parser) flushLeaf() {
	if p.leaf < 0 {
		return
	}
	start := p.leaf
	p.leaf = -1
	p.escaped = false
	p.attach(ir.Leaf(p.src[start:p.pos], token.Span{Start: start, End: p.pos}))
}

// extendsTop reports whether the text after a completed top level value
// continues it, skipping root whitespace.
func (p *Parser) extendsTop() bool {
	root := p.g.Root()
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !root.IsWhitespace(r) {
			break
		}
		p.pos += size
	}
	if p.pos >= len(p.src) {
		return false
	}
	if esc, ok := root.Escape(); ok && strings.HasPrefix(p.src[p.pos:], string(esc)) {
		return false
	}
	e, _ := match(root, p.src[p.pos:])
	return extends(e)
}

func (p *Parser) yield() *ir.Node {
	n := p.acc[0][0]
	p.acc[0] = p.acc[0][1:]
	return n
}

func (p *Parser) eof() (*ir.Node, error) {
	p.flushLeaf()
	if len(p.frames) > 0 {
		top := p.frames[len(p.frames)-1]
		if top.elem.Kind() == syntax.OperatorKind {
			err := p.errorAt(ErrMissingRightArgument, top.elem, top.tokStart)
			p.reset(len(p.src))
			return nil, err
		}
		p.err = p.errorAt(ErrOpenEncloser, top.elem, top.tokStart)
		return nil, p.err
	}
	if len(p.acc[0]) > 0 {
		return p.yield(), nil
	}
	return nil, io.EOF
}

func (p *Parser) errorAt(err error, e syntax.Element, off int) *ParseError {
	return &ParseError{
		Err:   err,
		Token: e.Opener(),
		Tag:   e.Tag(),
		Pos:   p.pd.Pos(off),
	}
}

// reset drops every open scope and continues at pos.
func (p *Parser) reset(pos int) {
	p.frames = p.frames[:0]
	p.acc = [][]*ir.Node{nil}
	p.leaf = -1
	p.escaped = false
	p.pos = pos
}
