package apmlfile

import (
	"os"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/edit"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/lst"
	"github.com/aosc-dev/go-apml/parse"
)

// File is one APML file with its parsed document, parse diagnostics,
// cached evaluation and dirty state.
type File struct {
	path  string
	doc   *lst.Document
	diags []*parse.Diagnostic
	env   eval.Env
	dirty bool
}

// Open reads and parses the file at path.  Parsing is tolerant;
// problems end up in Diagnostics rather than failing the open.
func Open(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(path, src), nil
}

// Load parses src as the contents of path without touching the
// filesystem.
func Load(path string, src []byte) *File {
	doc, diags := parse.ParseTolerant(src, parse.WithFilename(path))
	return &File{path: path, doc: doc, diags: diags}
}

// New returns an empty file that will be created at path on the first
// Save after a mutation.
func New(path string) *File {
	return &File{path: path, doc: &lst.Document{}}
}

// Path returns where the file lives (or will live).
func (f *File) Path() string {
	return f.path
}

// Doc returns the parsed document.  Callers mutating it directly
// should use the File mutation methods instead so caching and dirty
// state stay correct.
func (f *File) Doc() *lst.Document {
	return f.doc
}

// Diagnostics returns the problems tolerant parsing recovered from,
// in document order.  An empty slice means the file would also parse
// strictly.
func (f *File) Diagnostics() []*parse.Diagnostic {
	return f.diags
}

// Eval returns the evaluated environment, computing it on first use
// and after each mutation.
func (f *File) Eval() (eval.Env, error) {
	if f.env == nil {
		env, err := eval.Eval(f.doc)
		if err != nil {
			return nil, err
		}
		f.env = env
	}
	return f.env, nil
}

// SetScalar rewrites the value of key, or appends the assignment when
// key is missing.
func (f *File) SetScalar(key, text string) {
	edit.SetScalar(f.doc, key, text)
	f.touch()
}

// AppendArrayElement appends one element to the array value of key,
// creating the assignment when key is missing.
func (f *File) AppendArrayElement(key, text string) {
	edit.AppendArrayElement(f.doc, key, text)
	f.touch()
}

// RemoveEntry removes every assignment of key and reports whether any
// was found.  The file only becomes dirty when something was removed.
func (f *File) RemoveEntry(key string) bool {
	ok := edit.RemoveEntry(f.doc, key)
	if ok {
		f.touch()
	}
	return ok
}

// Dirty reports whether the document has unsaved changes.
func (f *File) Dirty() bool {
	return f.dirty
}

// Bytes renders the document.  For an unmutated file this is exactly
// the bytes that were read.
func (f *File) Bytes() []byte {
	return emit.Bytes(f.doc)
}

// Save writes the document back to its path when dirty and clears the
// dirty flag.  Saving a clean file does not touch the filesystem.
func (f *File) Save() error {
	if !f.dirty {
		return nil
	}
	if debug.Edit() {
		debug.Logf("apmlfile: save %s\n", f.path)
	}
	if err := os.WriteFile(f.path, f.Bytes(), 0o644); err != nil {
		return err
	}
	f.dirty = false
	return nil
}

func (f *File) touch() {
	f.env = nil
	f.dirty = true
}
