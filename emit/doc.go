// Package emit renders lst documents back to APML text.
//
// # Usage
//
//	err := emit.Emit(w, doc)
//	s := emit.MustString(doc)
//
// Emission is span-based: parsed entries carry their exact source text
// and are written back untouched, which is what makes
// emit(parse(T)) == T hold.  RenderScalar and NewScalar produce spans
// for programmatic values.
//
// # Related Packages
//
// The parse package produces the documents this package renders; the
// edit package uses RenderScalar when it rewrites values.
package emit
