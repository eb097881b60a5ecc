// Package apmlfile wraps one APML file with parsing, evaluation and
// write-back.
//
// A File is parsed tolerantly on load, so a file with recoverable
// problems still opens; the problems are kept as diagnostics.  The
// evaluated environment is computed lazily and cached until the next
// mutation.  Mutations mark the file dirty, and Save writes back only
// when something actually changed, leaving clean files untouched on
// disk.
//
// # Usage
//
//	f, err := apmlfile.Open("TREE/core/zlib/spec")
//	ver, err := f.Version()
//	f.SetScalar("PKGREL", "2")
//	err = f.Save()
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/parse - tolerant parsing underneath
//   - github.com/aosc-dev/go-apml/edit - the mutations File delegates to
//   - github.com/aosc-dev/go-apml/tree - walks whole ABBS trees of these files
package apmlfile
