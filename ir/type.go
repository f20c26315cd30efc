package ir

import (
	"fmt"

	"github.com/signadot/sexpr/syntax"
)

type Type int

const (
	LeafType Type = iota
	EncloserType
	SymmetricType
	OperatorType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LeafType:      "Leaf",
		EncloserType:  "Encloser",
		SymmetricType: "SymmetricEncloser",
		OperatorType:  "Operator",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Leaf":              LeafType,
		"Encloser":          EncloserType,
		"SymmetricEncloser": SymmetricType,
		"Operator":          OperatorType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LeafType,
		EncloserType,
		SymmetricType,
		OperatorType,
	}
}

// TypeOf maps an element kind to the type of the nodes it produces.
func TypeOf(k syntax.Kind) Type {
	switch k {
	case syntax.EncloserKind:
		return EncloserType
	case syntax.SymmetricKind:
		return SymmetricType
	case syntax.OperatorKind:
		return OperatorType
	default:
		panic(fmt.Sprintf("unknown kind %d", k))
	}
}
