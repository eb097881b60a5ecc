package parse

import (
	"fmt"

	"github.com/aosc-dev/go-apml/token"
)

// Diagnostic is one problem found while parsing.  Tolerant parsing
// collects them; strict parsing returns the first one as its error.
type Diagnostic struct {
	Err  error
	Pos  *token.Pos
	Path string
}

func (d *Diagnostic) Error() string {
	if d.Path != "" {
		return fmt.Sprintf("%s: %s at %s", d.Path, d.Err, d.Pos)
	}
	return fmt.Sprintf("%s at %s", d.Err, d.Pos)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}
