// Package edit mutates APML documents key by key without disturbing
// their formatting.
//
// # Usage
//
//	v, ok := edit.GetScalar(doc, "PKGVER")
//	edit.SetScalar(doc, "PKGREL", "1")
//	edit.AppendArrayElement(doc, "SRCS", url)
//	edit.RemoveEntry(doc, "PKGBREAK")
//
// All operations work on the last assignment of a key, which is the
// binding evaluation would see, and touch only the value span of the
// line they change; surrounding trivia, other lines and entry order
// stay byte-identical when emitted.
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/lst - the tree being edited
//   - github.com/aosc-dev/go-apml/emit - renders values and documents
//   - github.com/aosc-dev/go-apml/apmlfile - file-level wrapper over these helpers
package edit
