package syntax

import "errors"

var (
	ErrDuplicateTag      = errors.New("duplicate tag")
	ErrDuplicateContext  = errors.New("duplicate context")
	ErrUndeclaredContext = errors.New("undeclared context")
	ErrUndeclaredTag     = errors.New("undeclared tag")
	ErrInvalidElement    = errors.New("invalid element")
	ErrAmbiguousToken    = errors.New("ambiguous token")
)
