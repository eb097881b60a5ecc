package apml

import (
	"bytes"

	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/parse"
)

// Verify parses src tolerantly, re-emits it and reports whether the
// bytes survived.  The emitted form is returned either way, so a
// failed check can be diffed against the input.  Emission reproduces
// any input the parser covered, so a false result means an engine
// defect rather than a bad file.
func Verify(src []byte) ([]byte, bool) {
	doc, _ := parse.ParseTolerant(src)
	out := emit.Bytes(doc)
	return out, bytes.Equal(out, src)
}
