package apmlfile

import (
	"fmt"
	"strconv"

	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/value"
)

// Well-known keys of ABBS package metadata.
const (
	KeyName         = "PKGNAME"
	KeyVersion      = "PKGVER"
	KeyRelease      = "PKGREL"
	KeyEpoch        = "PKGEPOCH"
	KeySection      = "PKGSEC"
	KeyDescription  = "PKGDES"
	KeyDependencies = "PKGDEP"
	KeyBuildDeps    = "BUILDDEP"
	KeyBreaks       = "PKGBREAK"
	KeyReplaces     = "PKGREP"
	KeyProvides     = "PKGPROV"
	KeySources      = "SRCS"
	KeyChecksums    = "CHKSUMS"
	KeyUpdateCheck  = "CHKUPDATE"
	KeySubDir       = "SUBDIR"
)

// Field returns the evaluated value of key rendered as one string.
// A key the file never assigns reads as the empty string.
func (f *File) Field(key string) (string, error) {
	env, err := f.Eval()
	if err != nil {
		return "", err
	}
	return env[key].String(), nil
}

// Fields returns the evaluated value of key as words: an array's
// elements as they are, a scalar split on whitespace the way PKGDEP
// lists are written.
func (f *File) Fields(key string) ([]string, error) {
	env, err := f.Eval()
	if err != nil {
		return nil, err
	}
	v, ok := env[key]
	if !ok {
		return nil, nil
	}
	if v.Kind == eval.ArrayKind {
		return v.Arr, nil
	}
	return value.ParseStringArray(v.Str), nil
}

func (f *File) Name() (string, error)        { return f.Field(KeyName) }
func (f *File) Version() (string, error)     { return f.Field(KeyVersion) }
func (f *File) Section() (string, error)     { return f.Field(KeySection) }
func (f *File) Description() (string, error) { return f.Field(KeyDescription) }

// Release returns PKGREL as a number.  A file without PKGREL reads as
// release 0.
func (f *File) Release() (int, error) {
	return f.intField(KeyRelease)
}

// Epoch returns PKGEPOCH as a number, 0 when unset.
func (f *File) Epoch() (int, error) {
	return f.intField(KeyEpoch)
}

func (f *File) intField(key string) (int, error) {
	s, err := f.Field(key)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Dependencies returns the PKGDEP list.
func (f *File) Dependencies() ([]string, error) {
	return f.Fields(KeyDependencies)
}

// BuildDeps returns the BUILDDEP list.
func (f *File) BuildDeps() ([]string, error) {
	return f.Fields(KeyBuildDeps)
}

// Checksums returns the CHKSUMS list.
func (f *File) Checksums() ([]string, error) {
	return f.Fields(KeyChecksums)
}

// Sources returns the SRCS entries parsed into their tagged form.
func (f *File) Sources() ([]*value.Union, error) {
	words, err := f.Fields(KeySources)
	if err != nil {
		return nil, err
	}
	srcs := make([]*value.Union, 0, len(words))
	for _, w := range words {
		u, err := value.ParseUnion(w)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeySources, err)
		}
		srcs = append(srcs, u)
	}
	return srcs, nil
}
