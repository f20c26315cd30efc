package main

import (
	"context"
	"fmt"

	"github.com/signadot/sexpr/syntax"

	"go.lsp.dev/protocol"
)

// Completion offers the opening tokens permitted in the context around
// the cursor.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	td := s.docs.get(string(params.TextDocument.URI))
	if td == nil {
		return nil, nil
	}
	c := s.docs.g.Root()
	for _, n := range s.contextPath(td, params.Position) {
		if cc := s.docs.g.Context(n); cc != nil {
			c = cc
		}
	}
	items := []protocol.CompletionItem{}
	for _, e := range c.Openers() {
		items = append(items, completionItem(e))
	}
	return &protocol.CompletionList{Items: items}, nil
}

// contextPath lists the contexts opened by the inner nodes around pos,
// outermost first.
func (s *Server) contextPath(td *textDocument, pos protocol.Position) []syntax.ContextName {
	_, node := td.enclosing(pos)
	var res []syntax.ContextName
	for n := node; n != nil; n = n.Parent {
		if n.Element == nil {
			continue
		}
		res = append([]syntax.ContextName{n.Element.ChildContext()}, res...)
	}
	return res
}

func completionItem(e syntax.Element) protocol.CompletionItem {
	item := protocol.CompletionItem{
		Label:  e.Opener(),
		Detail: fmt.Sprintf("%s %s", e.Kind(), e.Tag()),
	}
	switch e.Kind() {
	case syntax.OperatorKind:
		item.Kind = protocol.CompletionItemKindOperator
	default:
		item.Kind = protocol.CompletionItemKindSnippet
		item.InsertText = e.Opener() + e.Closer()
	}
	return item
}
