package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTree is reported by FromEnv when the TREE environment
	// variable is unset or empty.
	ErrNoTree = errors.New("TREE is not set")
	// ErrPackageNotFound is reported when a lookup names a package no
	// section directory contains.
	ErrPackageNotFound = errors.New("package not found")
)

// NotFoundErr reports a package lookup that matched nothing, with the
// name and, when the lookup was section-qualified, the section.
type NotFoundErr struct {
	Section string
	Name    string
}

func (e *NotFoundErr) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("%s: %s/%s", ErrPackageNotFound, e.Section, e.Name)
	}
	return fmt.Sprintf("%s: %s", ErrPackageNotFound, e.Name)
}

func (e *NotFoundErr) Unwrap() error {
	return ErrPackageNotFound
}

func notFoundErr(section, name string) *NotFoundErr {
	return &NotFoundErr{Section: section, Name: name}
}
