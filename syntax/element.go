package syntax

import "fmt"

// Tag names a syntax element and the nodes it produces.  The empty tag is
// a valid tag.
type Tag string

// ContextName names a context.
type ContextName string

// Element is implemented by exactly *Encloser, *SymmetricEncloser and
// *Operator.
type Element interface {
	Tag() Tag
	Kind() Kind
	// ChildContext is the context active between the element's opening
	// token and its end.
	ChildContext() ContextName
	// Opener is the token which starts the element.
	Opener() string
	// Closer is the token which ends the element, empty for operators.
	Closer() string
	// Decl is the declaration index of the element in its grammar.
	Decl() int
	String() string

	element()
}

type elemBase struct {
	tag  Tag
	ctx  ContextName
	decl int
}

func (b *elemBase) Tag() Tag { return b.tag }
func (b *elemBase) ChildContext() ContextName { return b.ctx }
func (b *elemBase) Decl() int { return b.decl }
func (b *elemBase) element() {}

type Encloser struct {
	elemBase
	open, close string
}

func (e *Encloser) Kind() Kind { return EncloserKind }
func (e *Encloser) Opener() string { return e.open }
func (e *Encloser) Closer() string { return e.close }
func (e *Encloser) String() string {
	return fmt.Sprintf("%s %q %q -> %s", tagString(e.tag), e.open, e.close, e.ctx)
}

type SymmetricEncloser struct {
	elemBase
	tok string
}

func (e *SymmetricEncloser) Kind() Kind { return SymmetricKind }
func (e *SymmetricEncloser) Opener() string { return e.tok }
func (e *SymmetricEncloser) Closer() string { return e.tok }
func (e *SymmetricEncloser) String() string {
	return fmt.Sprintf("%s %q -> %s", tagString(e.tag), e.tok, e.ctx)
}

type Operator struct {
	elemBase
	tok         string
	left, right int
}

func (o *Operator) Kind() Kind { return OperatorKind }
func (o *Operator) Opener() string { return o.tok }
func (o *Operator) Closer() string { return "" }

// Left is the number of preceding sibling expressions the operator takes.
func (o *Operator) Left() int { return o.left }

// Right is the number of following expressions the operator takes.
func (o *Operator) Right() int { return o.right }

func (o *Operator) String() string {
	return fmt.Sprintf("%s %q (%d, %d) -> %s", tagString(o.tag), o.tok, o.left, o.right, o.ctx)
}

func tagString(t Tag) string {
	if t == "" {
		return `""`
	}
	return string(t)
}

// sameShape reports whether a and b would scan identically from their
// opening token on.
func sameShape(a, b Element) bool {
	if a.Kind() != b.Kind() || a.Closer() != b.Closer() || a.ChildContext() != b.ChildContext() {
		return false
	}
	ao, aOK := a.(*Operator)
	bo, bOK := b.(*Operator)
	if aOK && bOK {
		return ao.left == bo.left && ao.right == bo.right
	}
	return true
}
