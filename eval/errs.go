package eval

import (
	"errors"
	"fmt"

	"github.com/aosc-dev/go-apml/token"
)

var (
	// ErrUndefinedVariable is reported when a substitution names a
	// variable with no binding.  There is no implicit empty default;
	// only the ${NAME:-}, ${NAME:+} and ${NAME:?} forms tolerate an
	// unset name.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrMalformedSubstitution is reported for substitution syntax the
	// dialect does not have, such as an unclosed ${ or an empty name.
	ErrMalformedSubstitution = errors.New("malformed substitution")
)

// UndefinedVariableErr reports a reference to an unbound variable.
type UndefinedVariableErr struct {
	Name string
	// Msg is the message of a ${NAME:?message} form, when one was
	// given.
	Msg string
	Pos *token.Pos
}

func (e *UndefinedVariableErr) Error() string {
	s := fmt.Sprintf("%s %q", ErrUndefinedVariable, e.Name)
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Pos != nil {
		s += fmt.Sprintf(" at %s", e.Pos)
	}
	return s
}

func (e *UndefinedVariableErr) Unwrap() error {
	return ErrUndefinedVariable
}

func undefinedErr(name string, pos *token.Pos) *UndefinedVariableErr {
	return &UndefinedVariableErr{Name: name, Pos: pos}
}

// MalformedSubstitutionErr reports substitution syntax that could not
// be understood, with the reason spelled out.
type MalformedSubstitutionErr struct {
	Reason string
	Pos    *token.Pos
}

func (e *MalformedSubstitutionErr) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s: %s at %s", ErrMalformedSubstitution, e.Reason, e.Pos)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedSubstitution, e.Reason)
}

func (e *MalformedSubstitutionErr) Unwrap() error {
	return ErrMalformedSubstitution
}

func malformedErr(reason string, pos *token.Pos) *MalformedSubstitutionErr {
	return &MalformedSubstitutionErr{Reason: reason, Pos: pos}
}
