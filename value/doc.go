// Package value parses and renders the metadata value formats layered
// on top of plain strings in ABBS packaging.
//
// Two formats are covered: StringArray, a list of words stored
// space-separated in a single scalar (PKGDEP, BUILDDEP), and Union,
// the tagged form used by SRCS entries:
//
//	git::commit=tags/v1.3.1::https://github.com/madler/zlib
//
// # Usage
//
//	deps := value.ParseStringArray(env["PKGDEP"].String())
//	src, err := value.ParseUnion(env["SRCS"].Strings()[0])
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/eval - produces the strings parsed here
//   - github.com/aosc-dev/go-apml/apmlfile - field helpers built on these types
package value
