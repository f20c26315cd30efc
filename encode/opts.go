package encode

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadFormat = errors.New("bad format")

type Format int

const (
	SexpFormat Format = iota
	TreeFormat
	JSONFormat
)

func (f Format) String() string {
	switch f {
	case SexpFormat:
		return "sexp"
	case TreeFormat:
		return "tree"
	case JSONFormat:
		return "json"
	default:
		return "<unknown format>"
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "sexp", "s":
		return SexpFormat, nil
	case "tree", "t":
		return TreeFormat, nil
	case "json", "j":
		return JSONFormat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, s)
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeSpans adds source spans to each node's rendering.
func EncodeSpans(v bool) EncodeOption {
	return func(es *EncState) { es.spans = v }
}

// EncodeTokens renders sexps with the elements' own tokens.
func EncodeTokens(v bool) EncodeOption {
	return func(es *EncState) { es.tokens = v }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
