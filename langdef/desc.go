package langdef

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/signadot/sexpr/debug"
	"github.com/signadot/sexpr/syntax"
)

var ErrBadDescription = errors.New("bad grammar description")

// DefaultWhitespace is used by contextless descriptions which do not name
// their whitespace.
const DefaultWhitespace = " \n\t\r"

const defaultRoot = "root"

type Description struct {
	Root string `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
	// Whitespace and Escape apply to contextless descriptions.
	Whitespace *string `json:"whitespace,omitempty" yaml:"whitespace,omitempty" toml:"whitespace,omitempty"`
	Escape     string  `json:"escape,omitempty" yaml:"escape,omitempty" toml:"escape,omitempty"`

	Contexts  []ContextDesc  `json:"contexts,omitempty" yaml:"contexts,omitempty" toml:"contexts,omitempty"`
	Enclosers []EncloserDesc `json:"enclosers,omitempty" yaml:"enclosers,omitempty" toml:"enclosers,omitempty"`
	Operators []OperatorDesc `json:"operators,omitempty" yaml:"operators,omitempty" toml:"operators,omitempty"`
}

type ContextDesc struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Tags       []string `json:"tags" yaml:"tags" toml:"tags"`
	Whitespace string   `json:"whitespace,omitempty" yaml:"whitespace,omitempty" toml:"whitespace,omitempty"`
	Escape     string   `json:"escape,omitempty" yaml:"escape,omitempty" toml:"escape,omitempty"`
}

type EncloserDesc struct {
	Tag     string `json:"tag" yaml:"tag" toml:"tag"`
	Open    string `json:"open" yaml:"open" toml:"open"`
	Close   string `json:"close" yaml:"close" toml:"close"`
	Context string `json:"context,omitempty" yaml:"context,omitempty" toml:"context,omitempty"`
}

type OperatorDesc struct {
	Tag     string `json:"tag" yaml:"tag" toml:"tag"`
	Token   string `json:"token" yaml:"token" toml:"token"`
	Left    int    `json:"left" yaml:"left" toml:"left"`
	Right   int    `json:"right" yaml:"right" toml:"right"`
	Context string `json:"context,omitempty" yaml:"context,omitempty" toml:"context,omitempty"`
}

// Contextless describes a grammar with one context permitting every
// element.  An escape of 0 means none.
func Contextless(whitespace string, escape rune, encs []EncloserDesc, ops []OperatorDesc) *Description {
	d := &Description{
		Whitespace: &whitespace,
		Enclosers:  encs,
		Operators:  ops,
	}
	if escape != 0 {
		d.Escape = string(escape)
	}
	return d
}

// Lisp describes plain s-expressions: parentheses, a QUOTE prefix
// operator and backslash escapes.
func Lisp() *Description {
	return Contextless(DefaultWhitespace, '\\',
		[]EncloserDesc{{Tag: "", Open: "(", Close: ")"}},
		[]OperatorDesc{{Tag: "QUOTE", Token: "'", Right: 1}})
}

// IsContextless reports whether d declares no contexts.
func (d *Description) IsContextless() bool {
	return len(d.Contexts) == 0
}

// RootName is the name of the root context.
func (d *Description) RootName() syntax.ContextName {
	switch {
	case d.Root != "":
		return syntax.ContextName(d.Root)
	case len(d.Contexts) > 0:
		return syntax.ContextName(d.Contexts[0].Name)
	default:
		return defaultRoot
	}
}

// Graph builds the described grammar.
func (d *Description) Graph() (*syntax.Graph, error) {
	root := d.RootName()
	b := syntax.NewBuilder(root)
	var errs []error
	elemCtx := func(c string) syntax.ContextName {
		if c == "" {
			return root
		}
		return syntax.ContextName(c)
	}
	var tags []syntax.Tag
	for i := range d.Enclosers {
		e := &d.Enclosers[i]
		tag := syntax.Tag(e.Tag)
		if e.Open == e.Close {
			b.SymmetricEncloser(tag, e.Open, elemCtx(e.Context))
		} else {
			b.Encloser(tag, e.Open, e.Close, elemCtx(e.Context))
		}
		tags = append(tags, tag)
	}
	for i := range d.Operators {
		o := &d.Operators[i]
		tag := syntax.Tag(o.Tag)
		b.Operator(tag, o.Token, o.Left, o.Right, elemCtx(o.Context))
		tags = append(tags, tag)
	}
	if d.IsContextless() {
		ws := DefaultWhitespace
		if d.Whitespace != nil {
			ws = *d.Whitespace
		}
		esc, err := escapeRune(d.Escape)
		if err != nil {
			errs = append(errs, err)
		}
		b.Context(syntax.ContextDef{Name: root, Tags: tags, Whitespace: ws, Escape: esc})
	} else {
		if d.Whitespace != nil || d.Escape != "" {
			errs = append(errs, fmt.Errorf("%w: top level whitespace and escape apply only without contexts", ErrBadDescription))
		}
		for i := range d.Contexts {
			c := &d.Contexts[i]
			esc, err := escapeRune(c.Escape)
			if err != nil {
				errs = append(errs, fmt.Errorf("context %s: %w", c.Name, err))
			}
			ctags := make([]syntax.Tag, len(c.Tags))
			for j, t := range c.Tags {
				ctags[j] = syntax.Tag(t)
			}
			b.Context(syntax.ContextDef{
				Name:       syntax.ContextName(c.Name),
				Tags:       ctags,
				Whitespace: c.Whitespace,
				Escape:     esc,
			})
		}
	}
	g, err := b.Build()
	if err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if debug.Grammar() {
		debug.Logf("built grammar with %d contexts %d elements\n", len(g.Contexts()), len(g.Elements()))
	}
	return g, nil
}

func escapeRune(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: escape %q is not a single rune", ErrBadDescription, s)
	}
	return r, nil
}
