package tree

import (
	"github.com/aosc-dev/go-apml/apmlfile"
	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/eval"
)

// Session is one package loaded for evaluation: its spec plus one
// Recipe per defines variant of each subpackage.
type Session struct {
	Pkg     *Package
	Spec    *apmlfile.File
	Recipes []*Recipe
}

// Recipe is one defines variant of one subpackage, bound to the
// session whose spec it layers on.
type Recipe struct {
	session *Session

	// Sub is the subpackage directory name, e.g. autobuild or 01-host.
	Sub string
	// Suffix is the defines variant, "" for the plain defines file.
	Suffix string
	// Defines is the opened defines file.
	Defines *apmlfile.File
}

// OpenSession loads pkg's spec and every defines variant of every
// subpackage.
func OpenSession(pkg *Package) (*Session, error) {
	spec, err := pkg.Spec()
	if err != nil {
		return nil, err
	}
	s := &Session{Pkg: pkg, Spec: spec}
	subs, err := pkg.Subpackages()
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		sfx, err := sub.Suffixes()
		if err != nil {
			return nil, err
		}
		for _, suffix := range sfx {
			def, err := sub.Defines(suffix)
			if err != nil {
				return nil, err
			}
			s.Recipes = append(s.Recipes, &Recipe{
				session: s,
				Sub:     sub.Name,
				Suffix:  suffix,
				Defines: def,
			})
		}
	}
	if debug.Tree() {
		debug.Logf("tree: session %s/%s with %d recipes\n", pkg.Section, pkg.Name, len(s.Recipes))
	}
	return s, nil
}

// Env returns the spec bindings.  The underlying file caches its
// evaluation, so a session evaluates the spec once however many
// recipes layer on it.
func (s *Session) Env() (eval.Env, error) {
	return s.Spec.Eval()
}

// Name identifies the recipe inside its package: the subpackage
// directory plus the variant suffix, like autobuild or 01-host.stage2.
func (r *Recipe) Name() string {
	return r.Sub + r.Suffix
}

// Env evaluates the recipe's defines on top of the session's spec
// bindings, the environment the subpackage is built with.
func (r *Recipe) Env() (eval.Env, error) {
	base, err := r.session.Env()
	if err != nil {
		return nil, err
	}
	return eval.Eval(r.Defines.Doc(), eval.WithEnv(base))
}
