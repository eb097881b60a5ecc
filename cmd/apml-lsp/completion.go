package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/aosc-dev/go-apml/apmlfile"
)

// wellKnownKeys are the ABBS metadata keys offered at the start of a
// line.
var wellKnownKeys = []string{
	apmlfile.KeyName,
	apmlfile.KeyVersion,
	apmlfile.KeyRelease,
	apmlfile.KeyEpoch,
	apmlfile.KeySection,
	apmlfile.KeyDescription,
	apmlfile.KeyDependencies,
	apmlfile.KeyBuildDeps,
	apmlfile.KeyBreaks,
	apmlfile.KeyReplaces,
	apmlfile.KeyProvides,
	apmlfile.KeySources,
	apmlfile.KeyChecksums,
	apmlfile.KeyUpdateCheck,
	apmlfile.KeySubDir,
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	col := int(params.Position.Character)
	lineStart := lineColToOffset(doc.content, line, 0)
	cursor := lineColToOffset(doc.content, line, col)
	prefix := doc.content[lineStart:cursor]

	completions := []protocol.CompletionItem{}

	// A $ before the cursor starts a substitution: complete variable
	// names from the document's own assignments.
	if i := strings.LastIndexByte(prefix, '$'); i >= 0 && !strings.ContainsAny(prefix[i:], "} ") {
		for _, key := range doc.doc.Keys() {
			completions = append(completions, protocol.CompletionItem{
				Label:      key,
				Kind:       protocol.CompletionItemKindVariable,
				InsertText: key,
			})
		}
		return &protocol.CompletionList{IsIncomplete: false, Items: completions}, nil
	}

	// At the start of a line, or with a key partially typed, offer the
	// well-known metadata keys.
	if prefix == "" || isKeyPrefix(prefix) {
		for _, key := range wellKnownKeys {
			completions = append(completions, protocol.CompletionItem{
				Label:      key,
				Kind:       protocol.CompletionItemKindProperty,
				InsertText: key + "=",
			})
		}
	}

	return &protocol.CompletionList{IsIncomplete: false, Items: completions}, nil
}

// isKeyPrefix reports whether the text before the cursor looks like a
// partially typed key.
func isKeyPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}
		return false
	}
	return true
}
