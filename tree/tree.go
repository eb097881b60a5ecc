package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aosc-dev/go-apml/apmlfile"
	"github.com/aosc-dev/go-apml/debug"
)

// Tree is the root of an ABBS tree checkout.  It holds only the root
// path; every walk reads the directory structure fresh.
type Tree struct {
	root string
}

// Open wraps root as a tree.  The path is not checked here; the first
// walk reports a missing or unreadable root.
func Open(root string) *Tree {
	return &Tree{root: root}
}

// FromEnv opens the tree named by the TREE environment variable.
func FromEnv() (*Tree, error) {
	root := os.Getenv("TREE")
	if root == "" {
		return nil, ErrNoTree
	}
	return Open(root), nil
}

// Root returns the tree's root path.
func (t *Tree) Root() string {
	return t.root
}

// Join resolves a path under the tree root.
func (t *Tree) Join(parts ...string) string {
	return filepath.Join(append([]string{t.root}, parts...)...)
}

// Sections lists the section directories, sorted by name.  A section
// is a hyphenated directory like app-admin, so dot-directories and
// unhyphenated siblings (groups, assets) are skipped.
func (t *Tree) Sections() ([]string, error) {
	ents, err := os.ReadDir(t.root)
	if err != nil {
		return nil, fmt.Errorf("could not read tree %q: %w", t.root, err)
	}
	var res []string
	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}
		name := ent.Name()
		if strings.HasPrefix(name, ".") || !strings.Contains(name, "-") {
			continue
		}
		res = append(res, name)
	}
	return res, nil
}

// Packages lists every package in the tree, in section order then
// name order.
func (t *Tree) Packages() ([]*Package, error) {
	sections, err := t.Sections()
	if err != nil {
		return nil, err
	}
	var res []*Package
	for _, sec := range sections {
		pkgs, err := t.SectionPackages(sec)
		if err != nil {
			return nil, err
		}
		res = append(res, pkgs...)
	}
	if debug.Tree() {
		debug.Logf("tree: %d packages under %s\n", len(res), t.root)
	}
	return res, nil
}

// SectionPackages lists the packages of one section: its directories
// holding a spec file.
func (t *Tree) SectionPackages(section string) ([]*Package, error) {
	dir := t.Join(section)
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read section %q: %w", dir, err)
	}
	var res []*Package
	for _, ent := range ents {
		if !ent.IsDir() || strings.HasPrefix(ent.Name(), ".") {
			continue
		}
		p := &Package{Section: section, Name: ent.Name(), Dir: filepath.Join(dir, ent.Name())}
		if !isFile(p.SpecPath()) {
			continue
		}
		res = append(res, p)
	}
	return res, nil
}

// Package returns the accessor for section/name.  The lookup fails
// with a NotFoundErr when the directory or its spec file is missing.
func (t *Tree) Package(section, name string) (*Package, error) {
	p := &Package{Section: section, Name: name, Dir: t.Join(section, name)}
	if !isFile(p.SpecPath()) {
		return nil, notFoundErr(section, name)
	}
	return p, nil
}

// FindPackage scans every section for a package called name and
// returns the first match.
func (t *Tree) FindPackage(name string) (*Package, error) {
	sections, err := t.Sections()
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		if p, err := t.Package(sec, name); err == nil {
			return p, nil
		}
	}
	return nil, notFoundErr("", name)
}

// Package is one source package directory inside a tree.
type Package struct {
	Section string
	Name    string
	Dir     string
}

// SpecPath returns the path of the package's spec file.
func (p *Package) SpecPath() string {
	return filepath.Join(p.Dir, "spec")
}

// Spec opens the package's spec file.
func (p *Package) Spec() (*apmlfile.File, error) {
	return apmlfile.Open(p.SpecPath())
}

// Subpackages lists the subpackage directories, those holding at
// least one defines file, such as autobuild or the numbered 01-host.
func (p *Package) Subpackages() ([]*Subpackage, error) {
	ents, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, fmt.Errorf("could not read package %q: %w", p.Dir, err)
	}
	var res []*Subpackage
	for _, ent := range ents {
		if !ent.IsDir() || strings.HasPrefix(ent.Name(), ".") {
			continue
		}
		sp := &Subpackage{Pkg: p, Name: ent.Name(), Dir: filepath.Join(p.Dir, ent.Name())}
		sfx, err := sp.Suffixes()
		if err != nil {
			return nil, err
		}
		if len(sfx) == 0 {
			continue
		}
		res = append(res, sp)
	}
	return res, nil
}

// Subpackage returns the named subpackage, or false when the
// directory is missing or holds no defines file.
func (p *Package) Subpackage(dir string) (*Subpackage, bool) {
	sp := &Subpackage{Pkg: p, Name: dir, Dir: filepath.Join(p.Dir, dir)}
	sfx, err := sp.Suffixes()
	if err != nil || len(sfx) == 0 {
		return nil, false
	}
	return sp, true
}

// Defines opens every defines variant of every subpackage, in
// subpackage order then suffix order.  Each file's Path tells which
// variant it is.
func (p *Package) Defines() ([]*apmlfile.File, error) {
	subs, err := p.Subpackages()
	if err != nil {
		return nil, err
	}
	var res []*apmlfile.File
	for _, sub := range subs {
		sfx, err := sub.Suffixes()
		if err != nil {
			return nil, err
		}
		for _, s := range sfx {
			f, err := sub.Defines(s)
			if err != nil {
				return nil, err
			}
			res = append(res, f)
		}
	}
	return res, nil
}

// Subpackage is one subpackage directory inside a package.
type Subpackage struct {
	Pkg *Package
	// Name is the directory name, e.g. autobuild or 01-host.
	Name string
	Dir  string
}

// Suffixes lists the defines variants present, sorted: "" for the
// plain defines file, the dotted remainder (".stage2") for variants.
func (sp *Subpackage) Suffixes() ([]string, error) {
	ents, err := os.ReadDir(sp.Dir)
	if err != nil {
		return nil, fmt.Errorf("could not read subpackage %q: %w", sp.Dir, err)
	}
	var res []string
	for _, ent := range ents {
		if !ent.Type().IsRegular() {
			continue
		}
		rest, ok := strings.CutPrefix(ent.Name(), "defines")
		if !ok {
			continue
		}
		res = append(res, rest)
	}
	return res, nil
}

// DefinesPath returns the path of the defines variant with the given
// suffix ("" for the plain one).
func (sp *Subpackage) DefinesPath(suffix string) string {
	return filepath.Join(sp.Dir, "defines"+suffix)
}

// Defines opens the defines variant with the given suffix.
func (sp *Subpackage) Defines(suffix string) (*apmlfile.File, error) {
	return apmlfile.Open(sp.DefinesPath(suffix))
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
