package syntax

import (
	"fmt"
	"io"
)

// Graph is a built grammar.  It is never modified after Build.
type Graph struct {
	root     ContextName
	contexts map[ContextName]*Context
	ctxOrder []*Context
	elements map[Tag]Element
	order    []Element
}

func (g *Graph) Root() *Context {
	return g.contexts[g.root]
}

// Context returns the named context or nil.
func (g *Graph) Context(name ContextName) *Context {
	return g.contexts[name]
}

// ContextFor returns the context active inside the element tagged t, or nil
// if there is no such element.
func (g *Graph) ContextFor(t Tag) *Context {
	e := g.elements[t]
	if e == nil {
		return nil
	}
	return g.contexts[e.ChildContext()]
}

func (g *Graph) Element(t Tag) (Element, bool) {
	e, ok := g.elements[t]
	return e, ok
}

// Elements returns all elements in declaration order.
func (g *Graph) Elements() []Element {
	return g.order
}

// Contexts returns all contexts in declaration order.
func (g *Graph) Contexts() []*Context {
	return g.ctxOrder
}

// Describe writes a summary of the grammar to w.
func (g *Graph) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "root: %s\n", g.root); err != nil {
		return err
	}
	for _, c := range g.ctxOrder {
		esc := "none"
		if r, ok := c.Escape(); ok {
			esc = fmt.Sprintf("%q", r)
		}
		if _, err := fmt.Fprintf(w, "context %s: whitespace=%q escape=%s\n", c.name, c.ws, esc); err != nil {
			return err
		}
		for _, e := range c.openers {
			if _, err := fmt.Fprintf(w, "  %s %s\n", e.Kind(), e); err != nil {
				return err
			}
		}
	}
	return nil
}
