// Package parse builds lossless APML documents from text.
//
// # Usage
//
//	doc, err := parse.Parse(d)                  // strict
//	doc, diags := parse.ParseTolerant(d)        // keep going
//
// Strict parsing is the tolerant parse plus a check that nothing was
// flagged, so the two modes accept exactly the same shapes.  Tolerant
// parsing never fails: a logical line it cannot shape is preserved
// verbatim as an opaque entry and reported as a Diagnostic, and the
// resulting document still reproduces the input byte for byte when
// emitted.
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/lst - the document tree built here
//   - github.com/aosc-dev/go-apml/emit - renders documents back to text
//   - github.com/aosc-dev/go-apml/eval - computes the bindings a document makes
package parse
