package token

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedString is reported when a quoted string is still
	// open at end of input.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrInvalidEscape is reported for a backslash escape inside a
	// double-quoted string other than \$ \" \\ \` or backslash-newline.
	ErrInvalidEscape = errors.New("invalid escape")
)

func unterminatedErr(p *Pos) *TokenizeErr {
	return NewTokenizeErr(ErrUnterminatedString, p)
}

func invalidEscapeErr(c byte, p *Pos) *TokenizeErr {
	return NewTokenizeErr(fmt.Errorf("%w \\%c in double-quoted string", ErrInvalidEscape, c), p)
}
