package syntax

import "fmt"

// Kind is the kind of a syntax element.
type Kind int

const (
	EncloserKind Kind = iota
	SymmetricKind
	OperatorKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		EncloserKind:  "Encloser",
		SymmetricKind: "SymmetricEncloser",
		OperatorKind:  "Operator",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Encloser":          EncloserKind,
		"SymmetricEncloser": SymmetricKind,
		"Operator":          OperatorKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}
