// Package ast is the simplified view of an APML document: the entries
// that affect evaluation, with styling reduced to nothing.
//
// An AST cannot be parsed directly from source.  It is shaped from a
// parsed document with FromDocument, which fails on documents holding
// lines the parser could not shape.  Where the document records every
// byte, the AST keeps only variable definitions and comments: quoting
// styles collapse into word lists, += assignments desugar into plain
// assignments that reference the previous binding, and trivia is gone.
//
// Lowering an AST with Document produces the canonical rendering: one
// assignment per line, scalar values double-quoted with escapes,
// arrays single-spaced.  Parsing the lowered bytes and lowering again
// is a fixed point, which is what the formatter relies on.
//
// # Usage
//
//	a, err := ast.FromDocument(doc)
//	canonical := emit.Bytes(a.Document())
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/lst - the lossless form on both sides
//   - github.com/aosc-dev/go-apml/eval - evaluates the same semantics
package ast
