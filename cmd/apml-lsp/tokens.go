package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/aosc-dev/go-apml/token"
)

// The legend index of each emitted token type.
const (
	semComment uint32 = iota
	semProperty
	semOperator
	semString
)

func semanticTokensLegend() protocol.SemanticTokensLegend {
	return protocol.SemanticTokensLegend{
		TokenTypes: []protocol.SemanticTokenTypes{
			protocol.SemanticTokenComment,
			protocol.SemanticTokenProperty,
			protocol.SemanticTokenOperator,
			protocol.SemanticTokenString,
		},
		TokenModifiers: []protocol.SemanticTokenModifiers{},
	}
}

func semanticType(t token.TokenType) (uint32, bool) {
	switch t {
	case token.TComment:
		return semComment, true
	case token.TIdent:
		return semProperty, true
	case token.TAssign, token.TAppend, token.TLParen, token.TRParen:
		return semOperator, true
	case token.TWord, token.TSingle, token.TDouble:
		return semString, true
	}
	return 0, false
}

// collectSemanticTokens lexes content and encodes the interesting
// tokens in the LSP delta format.  The lexer emits tokens in source
// order and they never overlap, so no sorting pass is needed.  Tokens
// spanning several physical lines, multiline quoted strings mainly,
// are emitted one segment per line.
func collectSemanticTokens(content string) []uint32 {
	toks, _ := token.Tokenize(nil, []byte(content))
	data := []uint32{}
	var prevLine, prevChar uint32
	for i := range toks {
		tt, ok := semanticType(toks[i].Type)
		if !ok {
			continue
		}
		line, col := toks[i].Pos.LineCol()
		segLine, segChar := uint32(line), uint32(col)
		for _, seg := range strings.Split(string(toks[i].Bytes), "\n") {
			if len(seg) > 0 {
				deltaLine := segLine - prevLine
				deltaChar := segChar
				if deltaLine == 0 {
					deltaChar = segChar - prevChar
				}
				data = append(data, deltaLine, deltaChar, uint32(len(seg)), tt, 0)
				prevLine, prevChar = segLine, segChar
			}
			segLine++
			segChar = 0
		}
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: collectSemanticTokens(doc.content)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	// Clients tolerate tokens outside the requested range.
	return &protocol.SemanticTokens{Data: collectSemanticTokens(doc.content)}, nil
}
