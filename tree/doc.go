// Package tree walks ABBS trees: checkouts laid out as
// section/package directories where each package directory holds a
// spec file and subpackage directories holding defines files.
//
// A Tree only remembers its root path; every walk reads the directory
// structure fresh.  Section directories are the hyphenated ones
// (app-admin, runtime-display), so sibling directories like groups or
// dot-directories are never mistaken for sections.  A package is a
// directory with a spec file, a subpackage is a directory with at
// least one defines file, and defines variants (defines.stage2) are
// distinguished by suffix.
//
// A Session loads one package for evaluation: the spec once, then
// each defines variant layered on the spec bindings, which is how
// autobuild sees them.
//
// # Usage
//
//	t, err := tree.FromEnv()
//	pkgs, err := t.Packages()
//	for _, pkg := range pkgs {
//		s, err := tree.OpenSession(pkg)
//		for _, r := range s.Recipes {
//			env, err := r.Env()
//			_ = env["PKGNAME"]
//		}
//	}
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/apmlfile - the per-file accessor Spec and Defines return
//   - github.com/aosc-dev/go-apml/eval - the layered evaluation Recipes expose
package tree
