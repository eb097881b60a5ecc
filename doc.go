// Package apml reads, evaluates and rewrites APML files, the
// shell-flavored KEY=VALUE dialect AOSC OS packaging metadata is
// written in.
//
// The root package bundles the common whole-file operations; the
// engine lives in the subpackages, one concern each: token (lexing),
// parse (tolerant and strict tree building), lst (the lossless tree),
// emit (byte-exact rendering), eval (variable resolution), edit
// (value rewriting), ast (the simplified view and canonical form),
// apmlfile and tree (file- and checkout-level accessors).
//
// # Usage
//
//	env, err := apml.EvalFile("TREE/core-libs/zlib/spec")
//	fmt.Println(env["PKGVER"])
//
//	out, err := apml.Format(src)   // canonical form
//	out, ok := apml.Verify(src)    // emit(parse(src)) == src
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/parse - tolerant parsing with diagnostics
//   - github.com/aosc-dev/go-apml/eval - substitution and expansion semantics
//   - github.com/aosc-dev/go-apml/apmlfile - stateful single-file accessor
package apml
