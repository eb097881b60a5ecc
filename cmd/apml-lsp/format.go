package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	apml "github.com/aosc-dev/go-apml"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	// A document that does not parse strictly has no canonical form;
	// return no edits and let diagnostics tell the story.
	formatted, err := apml.Format([]byte(doc.content))
	if err != nil {
		return nil, nil
	}
	if string(formatted) == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// One edit replacing the whole document.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: string(formatted),
		},
	}, nil
}
