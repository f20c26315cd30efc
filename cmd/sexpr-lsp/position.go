package main

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/sexpr/token"

	"go.lsp.dev/protocol"
)

// LSP positions count UTF-16 code units within a line; the reader counts
// bytes.

func (td *textDocument) position(off int) protocol.Position {
	off = min(max(off, 0), len(td.content))
	line, col := td.doc.PosDoc().LineCol(off)
	n := 0
	for _, r := range td.content[off-col : off] {
		n += utf16Len(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(n)}
}

func (td *textDocument) offset(p protocol.Position) int {
	pd := td.doc.PosDoc()
	start := pd.Offset(int(p.Line), 0)
	end := pd.Offset(int(p.Line), len(td.content))
	n := 0
	for i, r := range td.content[start:end] {
		if n >= int(p.Character) {
			return start + i
		}
		n += utf16Len(r)
	}
	return end
}

func (td *textDocument) rangeOf(s token.Span) protocol.Range {
	return protocol.Range{
		Start: td.position(s.Start),
		End:   td.position(s.End),
	}
}

func utf16Len(r rune) int {
	if r == utf8.RuneError {
		return 1
	}
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
