package token

import "fmt"

type TokenType int

const (
	TSpace TokenType = iota
	TNewline
	TContinuation
	TComment
	TIdent
	TAssign
	TAppend
	TLParen
	TRParen
	TWord
	TSingle
	TDouble
	TErr
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TSpace:        "space",
		TNewline:      "newline",
		TContinuation: "continuation",
		TComment:      "comment",
		TIdent:        "ident",
		TAssign:       "assign",
		TAppend:       "append",
		TLParen:       "lparen",
		TRParen:       "rparen",
		TWord:         "word",
		TSingle:       "single-quoted",
		TDouble:       "double-quoted",
		TErr:          "error",
		TEOF:          "eof",
	}[t]
}

// Token is one lexeme of an APML document.  Bytes aliases the source
// buffer; concatenating the Bytes of every token in order, TEOF
// excluded, reproduces the input exactly.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at %s", t.Type, t.Bytes, t.Pos)
}

// TokenizeErr is an error associated with a position in the input.
type TokenizeErr struct {
	Err error
	Pos *Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}
