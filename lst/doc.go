// Package lst defines the lossless syntax tree for APML documents.
//
// # Overview
//
// A Document is a flat list of entries, one per logical line:
// assignments, comments, blank lines, and opaque lines kept verbatim
// when tolerant parsing could not shape them.  Entries keep every byte
// of trivia (leading whitespace, inline comments, newlines), so a
// document emitted unchanged reproduces its input exactly.
//
// Scalar values keep their raw written form; Lit decodes quoting when
// the literal text is wanted.  Arrays keep inner trivia as items so
// multi-line arrays survive a round trip.
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/parse - builds Documents from text
//   - github.com/aosc-dev/go-apml/emit - renders Documents back to text
//   - github.com/aosc-dev/go-apml/edit - key-level accessors over Documents
package lst
