package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/lst"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}

	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	e := entryAt(doc.doc, off)
	if e == nil {
		return nil, nil
	}

	hoverText := buildHoverText(doc.doc, e)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// entryAt returns the assignment whose bytes cover the given offset.
// Each entry re-emits to exactly its source bytes, so entry extents
// follow from their emitted lengths.
func entryAt(d *lst.Document, off int) *lst.Entry {
	at := 0
	for _, e := range d.Entries {
		n := len(emit.Bytes(&lst.Document{Entries: []*lst.Entry{e}}))
		if off < at+n {
			if e.Kind == lst.EntryAssign {
				return e
			}
			return nil
		}
		at += n
	}
	return nil
}

// buildHoverText shows the evaluated value of the entry's variable.
// When the document does not evaluate, the raw literal is shown
// instead so hover still works on broken files.
func buildHoverText(d *lst.Document, e *lst.Entry) string {
	env, err := eval.Eval(d)
	if err == nil {
		if v, ok := env[e.Key]; ok {
			return fmt.Sprintf("**%s** %s\n\n`%s`", e.Key, v.Kind, display(v.String()))
		}
	}
	switch v := e.Val.(type) {
	case *lst.Scalar:
		return fmt.Sprintf("**%s**\n\n`%s`", e.Key, display(v.Lit()))
	case *lst.Array:
		scs := v.Scalars()
		elems := make([]string, 0, len(scs))
		for _, sc := range scs {
			elems = append(elems, sc.Lit())
		}
		return fmt.Sprintf("**%s** array\n\n`%s`", e.Key, display(fmt.Sprint(elems)))
	}
	return ""
}

func display(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
