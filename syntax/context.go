package syntax

import "strings"

// ContextDef declares a context to a [Builder].
type ContextDef struct {
	Name ContextName
	// Tags lists the elements which may open inside the context.
	Tags []Tag
	// Whitespace holds the runes which separate leaves.
	Whitespace string
	// Escape makes the following rune literal.  Zero means none.
	Escape rune
}

type Context struct {
	name      ContextName
	tags      []Tag
	permitted map[Tag]bool
	ws        string
	escape    rune

	// openers is ordered by opening token length descending, then by
	// declaration descending.
	openers []Element
	// closers holds the permitted enclosers with distinct closing tokens.
	closers []*Encloser
}

func (c *Context) Name() ContextName { return c.name }

// Tags returns the permitted tags in declaration order.
func (c *Context) Tags() []Tag { return c.tags }

func (c *Context) Permits(t Tag) bool { return c.permitted[t] }

func (c *Context) IsWhitespace(r rune) bool {
	return strings.ContainsRune(c.ws, r)
}

func (c *Context) Whitespace() string { return c.ws }

// Escape returns the escape rune, if any.
func (c *Context) Escape() (rune, bool) {
	return c.escape, c.escape != 0
}

// Openers returns the permitted elements in match priority order.
func (c *Context) Openers() []Element { return c.openers }

// Closers returns the permitted enclosers whose closing token differs
// from their opening one.
func (c *Context) Closers() []*Encloser { return c.closers }

// MatchOpener returns the highest priority permitted element whose opening
// token is a prefix of s.
func (c *Context) MatchOpener(s string) Element {
	for _, e := range c.openers {
		if strings.HasPrefix(s, e.Opener()) {
			return e
		}
	}
	return nil
}

// MatchCloser returns the permitted encloser with the longest closing
// token which is a prefix of s.
func (c *Context) MatchCloser(s string) *Encloser {
	var res *Encloser
	for _, e := range c.closers {
		if !strings.HasPrefix(s, e.close) {
			continue
		}
		if res == nil || len(e.close) > len(res.close) {
			res = e
		}
	}
	return res
}
