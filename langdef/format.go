package langdef

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrBadFormat = errors.New("bad format")

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	TOMLFormat
)

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	case TOMLFormat:
		return "toml"
	default:
		return "<unknown format>"
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml", "y":
		return YAMLFormat, nil
	case "json", "j":
		return JSONFormat, nil
	case "toml", "t":
		return TOMLFormat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, s)
}

// FormatOf guesses the format of a file from its extension, defaulting to
// YAML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFormat
	case ".toml":
		return TOMLFormat
	default:
		return YAMLFormat
	}
}
