package apml

import (
	"github.com/aosc-dev/go-apml/ast"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/parse"
)

// Format returns the canonical form of src: one assignment per line,
// values double-quoted with substitutions kept verbatim, appends
// desugared, array elements separated by single spaces.  Formatting
// is a fixed point and does not change what the file evaluates to.
//
// src must parse strictly and hold no unterminated substitutions;
// anything the simplified view cannot shape fails with a positioned
// error.
func Format(src []byte) ([]byte, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	a, err := ast.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	return emit.Bytes(a.Document()), nil
}
