package parse

import "errors"

var (
	ErrMalformedAssignment = errors.New("malformed assignment")
	ErrUnterminatedArray   = errors.New("unterminated array")
	ErrStrayToken          = errors.New("stray token after value")
)
