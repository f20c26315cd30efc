package main

import (
	"context"
	"slices"
	"strings"

	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/syntax"

	"go.lsp.dev/protocol"
)

// indices into tokenTypes
const (
	keywordToken uint32 = iota
	operatorToken
	stringToken
)

type semToken struct {
	off, len int
	typ      uint32
}

// collectSemanticTokens marks encloser tokens as keywords, operator tokens
// as operators and leaves inside symmetric enclosers as strings.
func (td *textDocument) collectSemanticTokens() []semToken {
	var res []semToken
	td.doc.Walk(func(_ document.Path, n *ir.Node) bool {
		switch {
		case n.IsLeaf():
			if n.Parent != nil && n.Parent.Type == ir.SymmetricType {
				res = append(res, semToken{off: n.Span.Start, len: n.Span.Len(), typ: stringToken})
			}
		case n.Type == ir.OperatorType:
			if off := td.operatorOffset(n); off >= 0 {
				res = append(res, semToken{off: off, len: len(n.Element.Opener()), typ: operatorToken})
			}
		default:
			open, close := n.Element.Opener(), n.Element.Closer()
			res = append(res, semToken{off: n.Span.Start, len: len(open), typ: keywordToken})
			res = append(res, semToken{off: n.Span.End - len(close), len: len(close), typ: keywordToken})
		}
		return true
	})
	slices.SortFunc(res, func(a, b semToken) int { return a.off - b.off })
	return res
}

// operatorOffset finds the token of an operator node, which follows its
// left operands.
func (td *textDocument) operatorOffset(n *ir.Node) int {
	op := n.Element.(*syntax.Operator)
	if op.Left() == 0 || len(n.Values) < op.Left() {
		return n.Span.Start
	}
	from := n.Values[op.Left()-1].Span.End
	i := strings.Index(td.content[from:n.Span.End], op.Opener())
	if i < 0 {
		return -1
	}
	return from + i
}

// encodeSemanticTokens encodes toks relative to each other as the
// protocol requires, dropping tokens outside rng if it is not nil.
func (td *textDocument) encodeSemanticTokens(toks []semToken, rng *protocol.Range) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range toks {
		if t.len == 0 || strings.Contains(td.content[t.off:t.off+t.len], "\n") {
			continue
		}
		start := td.position(t.off)
		end := td.position(t.off + t.len)
		if rng != nil && (before(start, rng.Start) || before(rng.End, start)) {
			continue
		}
		deltaLine := start.Line - prevLine
		deltaChar := start.Character
		if deltaLine == 0 {
			deltaChar -= prevChar
		}
		data = append(data, deltaLine, deltaChar, end.Character-start.Character, t.typ, 0)
		prevLine, prevChar = start.Line, start.Character
	}
	return data
}

func before(a, b protocol.Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Character < b.Character)
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	td := s.docs.get(string(params.TextDocument.URI))
	if td == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{
		Data: td.encodeSemanticTokens(td.collectSemanticTokens(), nil),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	td := s.docs.get(string(params.TextDocument.URI))
	if td == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{
		Data: td.encodeSemanticTokens(td.collectSemanticTokens(), &params.Range),
	}, nil
}
