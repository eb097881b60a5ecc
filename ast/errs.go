package ast

import (
	"errors"
	"fmt"

	"github.com/aosc-dev/go-apml/token"
)

var (
	// ErrUnshapedLine is reported when the document holds a line the
	// parser recovered over; such documents have no simplified form.
	ErrUnshapedLine = errors.New("unshaped line")
	// ErrUnterminatedSubstitution is reported for a ${ with no closing
	// brace.
	ErrUnterminatedSubstitution = errors.New("unterminated substitution")
)

// ShapeErr reports why a document could not be shaped into an AST.
type ShapeErr struct {
	Err  error
	Text string
	Pos  *token.Pos
}

func (e *ShapeErr) Error() string {
	s := e.Err.Error()
	if e.Text != "" {
		s += fmt.Sprintf(" %q", e.Text)
	}
	if e.Pos != nil {
		s += fmt.Sprintf(" at %s", e.Pos)
	}
	return s
}

func (e *ShapeErr) Unwrap() error {
	return e.Err
}

func shapeErr(err error, text string, pos *token.Pos) *ShapeErr {
	return &ShapeErr{Err: err, Text: text, Pos: pos}
}
