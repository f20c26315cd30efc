package syntax

import (
	"errors"
	"fmt"
	"sort"
)

// Builder accumulates declarations for a [Graph].  Errors are collected
// and reported together by Build.
type Builder struct {
	root  ContextName
	ctxs  []ContextDef
	elems []Element
	errs  []error
}

func NewBuilder(root ContextName) *Builder {
	return &Builder{root: root}
}

func (b *Builder) Context(def ContextDef) *Builder {
	b.ctxs = append(b.ctxs, def)
	return b
}

func (b *Builder) Encloser(tag Tag, opener, closer string, ctx ContextName) *Builder {
	e := &Encloser{elemBase: b.base(tag, ctx), open: opener, close: closer}
	switch {
	case opener == "" || closer == "":
		b.errs = append(b.errs, fmt.Errorf("%w: encloser %s has an empty token", ErrInvalidElement, tagString(tag)))
	case opener == closer:
		b.errs = append(b.errs, fmt.Errorf("%w: encloser %s opens and closes with %q, use a symmetric encloser",
			ErrInvalidElement, tagString(tag), opener))
	}
	b.elems = append(b.elems, e)
	return b
}

func (b *Builder) SymmetricEncloser(tag Tag, tok string, ctx ContextName) *Builder {
	e := &SymmetricEncloser{elemBase: b.base(tag, ctx), tok: tok}
	if tok == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: symmetric encloser %s has an empty token", ErrInvalidElement, tagString(tag)))
	}
	b.elems = append(b.elems, e)
	return b
}

func (b *Builder) Operator(tag Tag, tok string, left, right int, ctx ContextName) *Builder {
	o := &Operator{elemBase: b.base(tag, ctx), tok: tok, left: left, right: right}
	switch {
	case tok == "":
		b.errs = append(b.errs, fmt.Errorf("%w: operator %s has an empty token", ErrInvalidElement, tagString(tag)))
	case left < 0 || right < 0:
		b.errs = append(b.errs, fmt.Errorf("%w: operator %s has negative arity (%d, %d)", ErrInvalidElement, tagString(tag), left, right))
	case left == 0 && right == 0:
		b.errs = append(b.errs, fmt.Errorf("%w: operator %s takes no arguments", ErrInvalidElement, tagString(tag)))
	}
	b.elems = append(b.elems, o)
	return b
}

func (b *Builder) base(tag Tag, ctx ContextName) elemBase {
	return elemBase{tag: tag, ctx: ctx, decl: len(b.elems)}
}

// Build validates the declarations and returns the frozen graph.
func (b *Builder) Build() (*Graph, error) {
	errs := append([]error(nil), b.errs...)
	g := &Graph{
		root:     b.root,
		contexts: make(map[ContextName]*Context, len(b.ctxs)),
		elements: make(map[Tag]Element, len(b.elems)),
	}
	for _, e := range b.elems {
		if _, dup := g.elements[e.Tag()]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateTag, tagString(e.Tag())))
			continue
		}
		g.elements[e.Tag()] = e
		g.order = append(g.order, e)
	}
	for i := range b.ctxs {
		def := &b.ctxs[i]
		if _, dup := g.contexts[def.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateContext, def.Name))
			continue
		}
		c := &Context{
			name:      def.Name,
			tags:      append([]Tag(nil), def.Tags...),
			permitted: make(map[Tag]bool, len(def.Tags)),
			ws:        def.Whitespace,
			escape:    def.Escape,
		}
		for _, t := range def.Tags {
			if _, ok := g.elements[t]; !ok {
				errs = append(errs, fmt.Errorf("%w: context %s permits %s", ErrUndeclaredTag, def.Name, tagString(t)))
				continue
			}
			c.permitted[t] = true
		}
		g.contexts[def.Name] = c
		g.ctxOrder = append(g.ctxOrder, c)
	}
	if _, ok := g.contexts[b.root]; !ok {
		errs = append(errs, fmt.Errorf("%w: root %s", ErrUndeclaredContext, b.root))
	}
	for _, e := range g.order {
		if _, ok := g.contexts[e.ChildContext()]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s %s targets %s", ErrUndeclaredContext, e.Kind(), tagString(e.Tag()), e.ChildContext()))
		}
	}
	for _, c := range g.ctxOrder {
		errs = append(errs, g.index(c)...)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// index fills in the opener and closer tables of c.
func (g *Graph) index(c *Context) []error {
	var errs []error
	byTok := map[string]Element{}
	for _, e := range g.order {
		if !c.permitted[e.Tag()] {
			continue
		}
		if prev, ok := byTok[e.Opener()]; ok && !sameShape(prev, e) {
			errs = append(errs, fmt.Errorf("%w: %q opens both %s and %s in context %s",
				ErrAmbiguousToken, e.Opener(), tagString(prev.Tag()), tagString(e.Tag()), c.name))
		}
		byTok[e.Opener()] = e
		c.openers = append(c.openers, e)
		if enc, ok := e.(*Encloser); ok {
			c.closers = append(c.closers, enc)
		}
	}
	sort.SliceStable(c.openers, func(i, j int) bool {
		a, b := c.openers[i], c.openers[j]
		if len(a.Opener()) != len(b.Opener()) {
			return len(a.Opener()) > len(b.Opener())
		}
		return a.Decl() > b.Decl()
	})
	return errs
}
