package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/parse"
	"github.com/signadot/sexpr/syntax"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	g *syntax.Graph

	mu   sync.RWMutex
	docs map[string]*textDocument
}

// textDocument holds the trees read from one open file, up to its first
// unrecoverable error, and every error met on the way.
type textDocument struct {
	uri     string
	content string
	version int32
	doc     *document.Document
	errs    []*parse.ParseError
}

func (ds *documentStore) get(uri string) *textDocument {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *textDocument {
	td := &textDocument{
		uri:     uri,
		content: content,
		version: version,
	}
	var trees []*ir.Node
	for node, err := range parse.New(ds.g, content).All() {
		if err != nil {
			var pe *parse.ParseError
			if errors.As(err, &pe) {
				td.errs = append(td.errs, pe)
			}
			continue
		}
		trees = append(trees, node)
	}
	td.doc = document.New(trees, document.WithSource(content))

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = td
	return td
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, td *textDocument) {
	diagnostics := s.validateDocument(td)
	s.log.Debug("diagnostics", "uri", td.uri, "n", len(diagnostics))
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(td.uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(td *textDocument) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, pe := range td.errs {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    td.rangeOf(pe.Span()),
			Severity: protocol.DiagnosticSeverityError,
			Message:  pe.Err.Error() + " " + quoteToken(pe.Token),
			Source:   lsName,
		})
	}
	return diagnostics
}

func quoteToken(tok string) string {
	if tok == "" {
		return "at end of text"
	}
	return "`" + tok + "`"
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, td)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	td := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, td)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
