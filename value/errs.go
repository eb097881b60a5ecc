package value

import (
	"errors"
	"fmt"
)

// ErrBadUnion is reported when a string does not parse as a union
// value.
var ErrBadUnion = errors.New("malformed union value")

// UnionErr reports where a union value stopped making sense.  Off is a
// byte offset into the trimmed source.
type UnionErr struct {
	Src string
	Off int
}

func (e *UnionErr) Error() string {
	return fmt.Sprintf("%s at offset %d in %q", ErrBadUnion, e.Off, e.Src)
}

func (e *UnionErr) Unwrap() error {
	return ErrBadUnion
}

func unionErr(src string, off int) *UnionErr {
	return &UnionErr{Src: src, Off: off}
}
