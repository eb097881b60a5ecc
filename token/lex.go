package token

import (
	"github.com/aosc-dev/go-apml/debug"
)

// lexState tracks where in a line the lexer is, since APML tokens are
// context sensitive: '=' is an operator only after a key, '(' opens an
// array only after an operator, ')' closes one only inside an array.
type lexState int

const (
	stLine lexState = iota
	stAfterKey
	stAfterOp
	stScalar
	stArray
	stTrail
)

// Lexer is a single-pass tokenizer over an in-memory APML document.
type Lexer struct {
	d    []byte
	pd   *PosDoc
	i    int
	st   lexState
	errs []*TokenizeErr
}

func NewLexer(d []byte) *Lexer {
	return &Lexer{d: d, pd: NewPosDoc(d)}
}

// PosDoc returns the position index built while lexing.  It is only
// complete once Tokenize has returned.
func (l *Lexer) PosDoc() *PosDoc {
	return l.pd
}

// Tokenize appends the tokens of d to dst and returns it together with
// any lexical errors.  Errors do not stop the scan: the offending span
// is emitted as a TErr token and lexing resumes at the next newline, so
// the returned tokens always cover the whole input.
func Tokenize(dst []Token, d []byte) ([]Token, []*TokenizeErr) {
	return NewLexer(d).Tokenize(dst)
}

func (l *Lexer) Tokenize(dst []Token) ([]Token, []*TokenizeErr) {
	for {
		tok, ok := l.next()
		if !ok {
			break
		}
		if debug.Lex() {
			debug.Logf("lex: %s\n", tok.Info())
		}
		dst = append(dst, tok)
	}
	dst = append(dst, Token{Type: TEOF, Pos: l.pd.end(), Bytes: nil})
	return dst, l.errs
}

func (l *Lexer) next() (Token, bool) {
	if l.i >= len(l.d) {
		return Token{}, false
	}
	start := l.i
	pos := l.pd.Pos(start)
	c := l.d[l.i]

	// Trivia is recognized the same way in every state.
	switch {
	case c == '\n':
		l.pd.nl(l.i)
		l.i++
		if l.st != stArray {
			l.st = stLine
		}
		return l.tok(TNewline, start, pos), true
	case c == ' ' || c == '\t' || c == '\r':
		for l.i < len(l.d) && (l.d[l.i] == ' ' || l.d[l.i] == '\t' || l.d[l.i] == '\r') {
			l.i++
		}
		switch l.st {
		case stAfterKey, stAfterOp, stScalar:
			l.st = stTrail
		}
		return l.tok(TSpace, start, pos), true
	case c == '#':
		for l.i < len(l.d) && l.d[l.i] != '\n' {
			l.i++
		}
		if l.st != stArray {
			l.st = stTrail
		}
		return l.tok(TComment, start, pos), true
	case c == '\\' && l.i+1 < len(l.d) && l.d[l.i+1] == '\n':
		l.pd.nl(l.i + 1)
		l.i += 2
		return l.tok(TContinuation, start, pos), true
	}

	switch l.st {
	case stLine:
		if isIdentStart(c) {
			l.scanIdent()
			l.st = stAfterKey
			return l.tok(TIdent, start, pos), true
		}
		l.st = stTrail
		return l.value(false), true
	case stAfterKey:
		if c == '=' {
			l.i++
			l.st = stAfterOp
			return l.tok(TAssign, start, pos), true
		}
		if c == '+' && l.i+1 < len(l.d) && l.d[l.i+1] == '=' {
			l.i += 2
			l.st = stAfterOp
			return l.tok(TAppend, start, pos), true
		}
		l.st = stTrail
		return l.value(false), true
	case stAfterOp:
		if c == '(' {
			l.i++
			l.st = stArray
			return l.tok(TLParen, start, pos), true
		}
		l.st = stScalar
		return l.value(false), true
	case stScalar:
		return l.value(false), true
	case stArray:
		if c == ')' {
			l.i++
			l.st = stTrail
			return l.tok(TRParen, start, pos), true
		}
		return l.value(true), true
	default: // stTrail
		return l.value(false), true
	}
}

func (l *Lexer) tok(t TokenType, start int, pos *Pos) Token {
	return Token{Type: t, Pos: pos, Bytes: l.d[start:l.i]}
}

// value lexes one value segment: a quoted string or a bare word.
func (l *Lexer) value(inArray bool) Token {
	switch l.d[l.i] {
	case '\'':
		return l.scanSingle()
	case '"':
		return l.scanDouble()
	default:
		return l.scanWord(inArray)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

func (l *Lexer) scanIdent() {
	for l.i < len(l.d) && isIdent(l.d[l.i]) {
		l.i++
	}
}

// scanWord consumes a bare word.  Backslash escapes any following byte,
// so escaped spaces and hashes stay inside the word; an escaped newline
// ends the word and is lexed as a continuation token by the caller.
func (l *Lexer) scanWord(inArray bool) Token {
	start := l.i
	pos := l.pd.Pos(start)
	for l.i < len(l.d) {
		c := l.d[l.i]
		switch c {
		case ' ', '\t', '\r', '\n', '#', '\'', '"':
			return l.tok(TWord, start, pos)
		case ')':
			if inArray {
				return l.tok(TWord, start, pos)
			}
			l.i++
		case '\\':
			if l.i+1 < len(l.d) && l.d[l.i+1] == '\n' {
				return l.tok(TWord, start, pos)
			}
			if l.i+1 < len(l.d) {
				l.i += 2
			} else {
				l.i++
			}
		default:
			l.i++
		}
	}
	return l.tok(TWord, start, pos)
}

func (l *Lexer) scanSingle() Token {
	start := l.i
	pos := l.pd.Pos(start)
	l.i++
	for l.i < len(l.d) {
		c := l.d[l.i]
		if c == '\n' {
			l.pd.nl(l.i)
		}
		l.i++
		if c == '\'' {
			return l.tok(TSingle, start, pos)
		}
	}
	l.errs = append(l.errs, unterminatedErr(pos))
	l.st = stTrail
	return l.tok(TErr, start, pos)
}

func (l *Lexer) scanDouble() Token {
	start := l.i
	pos := l.pd.Pos(start)
	l.i++
	for l.i < len(l.d) {
		switch l.d[l.i] {
		case '"':
			l.i++
			return l.tok(TDouble, start, pos)
		case '\n':
			l.pd.nl(l.i)
			l.i++
		case '\\':
			if l.i+1 >= len(l.d) {
				l.i++
				continue
			}
			switch e := l.d[l.i+1]; e {
			case '$', '"', '\\', '`':
				l.i += 2
			case '\n':
				l.pd.nl(l.i + 1)
				l.i += 2
			default:
				// Emit the broken string up to the end of the physical
				// line and pick up again at the newline.
				l.errs = append(l.errs, invalidEscapeErr(e, l.pd.Pos(l.i)))
				for l.i < len(l.d) && l.d[l.i] != '\n' {
					l.i++
				}
				l.st = stTrail
				return l.tok(TErr, start, pos)
			}
		default:
			l.i++
		}
	}
	l.errs = append(l.errs, unterminatedErr(pos))
	l.st = stTrail
	return l.tok(TErr, start, pos)
}
