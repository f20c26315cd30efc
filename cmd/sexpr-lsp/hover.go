package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/token"

	"go.lsp.dev/protocol"
)

// enclosing returns the innermost node around pos and its path.
func (td *textDocument) enclosing(pos protocol.Position) (document.Path, *ir.Node) {
	off := td.offset(pos)
	path := td.doc.InnermostEnclosingPath(token.Span{Start: off, End: off})
	if len(path) == 0 {
		return nil, nil
	}
	node, err := td.doc.Subtree(path)
	if err != nil {
		return nil, nil
	}
	return path, node
}

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	td := s.docs.get(string(params.TextDocument.URI))
	if td == nil {
		return nil, nil
	}
	path, node := td.enclosing(params.Position)
	if node == nil {
		return nil, nil
	}
	rng := td.rangeOf(node.Span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(path, node),
		},
		Range: &rng,
	}, nil
}

func buildHoverText(path document.Path, node *ir.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", node.Type)
	if node.IsLeaf() {
		fmt.Fprintf(&b, " `%s`", node.String)
	} else {
		tag := string(node.Tag)
		if tag == "" {
			tag = `""`
		}
		fmt.Fprintf(&b, " `%s` `%s", tag, node.Element.Opener())
		if c := node.Element.Closer(); c != "" {
			fmt.Fprintf(&b, " %s", c)
		}
		b.WriteString("`")
		fmt.Fprintf(&b, ", %d children", len(node.Values))
	}
	fmt.Fprintf(&b, "\n\npath `%s` span `%s`", path, node.Span)
	return b.String()
}

func (s *Server) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	td := s.docs.get(string(params.TextDocument.URI))
	if td == nil {
		return nil, nil
	}
	_, node := td.enclosing(params.Position)
	if node == nil {
		return nil, nil
	}
	return []protocol.DocumentHighlight{{
		Range: td.rangeOf(node.Span),
		Kind:  protocol.DocumentHighlightKindText,
	}}, nil
}

// FoldingRanges folds every inner node spanning more than one line.
func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	td := s.docs.get(string(params.TextDocument.URI))
	if td == nil {
		return nil, nil
	}
	var res []protocol.FoldingRange
	td.doc.Walk(func(_ document.Path, n *ir.Node) bool {
		if n.IsLeaf() || n.Span.Len() == 0 {
			return true
		}
		start := td.position(n.Span.Start)
		end := td.position(n.Span.End - 1)
		if end.Line > start.Line {
			res = append(res, protocol.FoldingRange{
				StartLine:      start.Line,
				StartCharacter: start.Character,
				EndLine:        end.Line,
				EndCharacter:   end.Character,
			})
		}
		return true
	})
	return res, nil
}
