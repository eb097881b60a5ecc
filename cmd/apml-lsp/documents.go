package main

import (
	"context"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/aosc-dev/go-apml/lst"
	"github.com/aosc-dev/go-apml/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	doc     *lst.Document
	diags   []*parse.Diagnostic
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put parses content tolerantly and stores the result.  The document
// is always usable; problems live in diags.
func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc, diags := parse.ParseTolerant([]byte(content), parse.WithFilename(uri))
	d := &document{
		uri:     uri,
		content: content,
		version: version,
		doc:     doc,
		diags:   diags,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = d
	return d
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.diags))
	for _, dg := range doc.diags {
		var line, col int
		if dg.Pos != nil {
			line, col = dg.Pos.LineCol()
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
				End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  dg.Err.Error(),
			Source:   "apml",
		})
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(doc.uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			// A zero range is a full document replacement.
			content = change.Text
			continue
		}
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		if end < start {
			end = start
		}
		content = content[:start] + change.Text + content[end:]
	}

	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset maps a 0-based line and character to a byte offset
// in content, clamping past-end positions to the end.
func lineColToOffset(content string, line, col int) int {
	off := 0
	for ; line > 0; line-- {
		nl := strings.IndexByte(content[off:], '\n')
		if nl < 0 {
			return len(content)
		}
		off += nl + 1
	}
	lineEnd := strings.IndexByte(content[off:], '\n')
	if lineEnd < 0 {
		lineEnd = len(content) - off
	}
	if col > lineEnd {
		col = lineEnd
	}
	return off + col
}
