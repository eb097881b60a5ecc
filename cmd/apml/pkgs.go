package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/report"
	"github.com/aosc-dev/go-apml/tree"
)

func pkgsCmd(cfg *PkgsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pkgs.Parse(cc, args)
	if err != nil {
		return err
	}
	var tr *tree.Tree
	switch len(args) {
	case 0:
		tr, err = tree.FromEnv()
		if err != nil {
			return fmt.Errorf("%w: pkgs needs a tree argument or TREE set", cli.ErrUsage)
		}
	case 1:
		tr = tree.Open(args[0])
	default:
		return fmt.Errorf("%w: pkgs takes at most one tree argument", cli.ErrUsage)
	}
	pkgs, err := tr.Packages()
	if err != nil {
		return err
	}
	failed := false
	for _, pkg := range pkgs {
		if !cfg.Eval {
			fmt.Fprintf(cc.Out, "%s/%s\n", pkg.Section, pkg.Name)
			continue
		}
		if err := pkgsEvalOne(cc, pkg); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// pkgsEvalOne evaluates every recipe of one package and prints a
// summary line per recipe.  Failures are rendered but do not stop the
// remaining recipes.
func pkgsEvalOne(cc *cli.Context, pkg *tree.Package) error {
	ses, err := tree.OpenSession(pkg)
	if err != nil {
		report.Render(os.Stderr, report.New(report.Error,
			fmt.Sprintf("%s/%s: %v", pkg.Section, pkg.Name, err)))
		return err
	}
	var firstErr error
	for _, r := range ses.Recipes {
		env, err := r.Env()
		if err != nil {
			report.Render(os.Stderr,
				report.FromError(r.Defines.Path(), r.Defines.Bytes(), err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !debug.Quiet() {
			fmt.Fprintf(cc.Out, "%s/%s %s %s-%s\n",
				pkg.Section, pkg.Name, r.Name(),
				env["PKGNAME"].String(), env["PKGVER"].String())
		}
	}
	return firstErr
}
