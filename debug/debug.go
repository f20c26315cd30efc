// Package debug holds environment switches for tracing the reader and its tools.
package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Grammar bool
	Doc     bool
	LSP     bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SEXPR_DEBUG_PARSE")
	d.Grammar = boolEnv("SEXPR_DEBUG_GRAMMAR")
	d.Doc = boolEnv("SEXPR_DEBUG_DOC")
	d.LSP = boolEnv("SEXPR_DEBUG_LSP")
	d.Query = boolEnv("SEXPR_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Grammar() bool {
	return d.Grammar
}
func Doc() bool {
	return d.Doc
}
func LSP() bool {
	return d.LSP
}
func Query() bool {
	return d.Query
}

// Level is the slog level implied by the switches: debug when any is set.
func Level() slog.Level {
	if d.Parse || d.Grammar || d.Doc || d.LSP || d.Query {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Logger returns a text logger on stderr without timestamps.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: Level(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
