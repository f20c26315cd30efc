package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/sexpr/syntax"
	"github.com/signadot/sexpr/token"
)

var (
	errInternal = errors.New("internal error")

	ErrUnexpectedCloser     = errors.New("unexpected closer")
	ErrOpenEncloser         = errors.New("end of text with open encloser")
	ErrMissingLeftArgument  = errors.New("operator missing left argument")
	ErrMissingRightArgument = errors.New("operator missing right argument")
)

type ParseError struct {
	Err error
	// Token is the literal offending token.
	Token string
	// Tag is the tag of the element the token belongs to.
	Tag syntax.Tag
	Pos *token.Pos
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s %q", e.Err, e.Token)
	}
	return fmt.Sprintf("%s %q at %s", e.Err, e.Token, e.Pos)
}

// Terminal reports whether the parser can read no further after e.
func (e *ParseError) Terminal() bool {
	return errors.Is(e.Err, ErrUnexpectedCloser) || errors.Is(e.Err, ErrOpenEncloser)
}

// Span is the source span of the offending token.
func (e *ParseError) Span() token.Span {
	if e.Pos == nil {
		return token.Span{}
	}
	return token.Span{Start: e.Pos.I, End: e.Pos.I + len(e.Token)}
}
