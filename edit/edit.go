package edit

import (
	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/lst"
)

// GetScalar returns the literal text of the last plain assignment to
// key.  It reports false when key is never assigned, when its last
// assignment uses +=, or when the value is an array.
func GetScalar(doc *lst.Document, key string) (string, bool) {
	e := doc.Last(key)
	if e == nil || e.Op != lst.OpAssign {
		return "", false
	}
	sc, ok := e.Val.(*lst.Scalar)
	if !ok {
		return "", false
	}
	return sc.Lit(), true
}

// GetArray returns the element scalars of the last plain assignment to
// key.  It reports false when key is never assigned, when its last
// assignment uses +=, or when the value is a scalar.
func GetArray(doc *lst.Document, key string) ([]*lst.Scalar, bool) {
	e := doc.Last(key)
	if e == nil || e.Op != lst.OpAssign {
		return nil, false
	}
	arr, ok := e.Val.(*lst.Array)
	if !ok {
		return nil, false
	}
	return arr.Scalars(), true
}

// SetScalar rewrites the value of the last assignment to key, keeping
// that line's key, operator and trivia in place.  When the old value
// was a quoted scalar the new one keeps the same quoting style where
// the text allows it.  A missing key is appended to the document as a
// new KEY="text" line.
func SetScalar(doc *lst.Document, key, text string) {
	if debug.Edit() {
		debug.Logf("edit: set %s=%q\n", key, text)
	}
	e := doc.Last(key)
	if e == nil {
		appendEntry(doc, &lst.Entry{
			Kind: lst.EntryAssign,
			Key:  key,
			Op:   lst.OpAssign,
			Val:  emit.NewScalar(text, lst.QuoteDouble),
			NL:   "\n",
		})
		return
	}
	q := lst.QuoteNone
	if sc, ok := e.Val.(*lst.Scalar); ok {
		q = sc.Quote
	}
	e.Val = emit.NewScalar(text, q)
}

// AppendArrayElement appends one element to the last assignment of
// key, just before the closing paren with a single separating space.
// A missing key is appended to the document as a new KEY=(text) line.
// When the existing value is a scalar it is converted to an array with
// the old value as its first element, matching how += treats a scalar
// prior.
func AppendArrayElement(doc *lst.Document, key, text string) {
	if debug.Edit() {
		debug.Logf("edit: append %s+=(%q)\n", key, text)
	}
	el := &lst.ArrayItem{Kind: lst.ItemScalar, Sc: emit.NewScalar(text, lst.QuoteNone)}

	e := doc.Last(key)
	if e == nil {
		appendEntry(doc, &lst.Entry{
			Kind: lst.EntryAssign,
			Key:  key,
			Op:   lst.OpAssign,
			Val:  &lst.Array{Items: []*lst.ArrayItem{el}},
			NL:   "\n",
		})
		return
	}

	arr, ok := e.Val.(*lst.Array)
	if !ok {
		arr = &lst.Array{}
		if sc, isScalar := e.Val.(*lst.Scalar); isScalar && sc.Raw != "" {
			arr.Items = append(arr.Items, &lst.ArrayItem{Kind: lst.ItemScalar, Sc: sc})
		}
		e.Val = arr
	}

	// Insert after the last element so trailing trivia, a closing-line
	// newline or comment, stays at the end of the array.
	at := len(arr.Items)
	for i := len(arr.Items) - 1; i >= 0; i-- {
		if arr.Items[i].Kind == lst.ItemScalar {
			at = i + 1
			break
		}
	}
	ins := []*lst.ArrayItem{el}
	if at > 0 {
		ins = []*lst.ArrayItem{{Kind: lst.ItemSpace, Text: " "}, el}
	}
	arr.Items = append(arr.Items[:at], append(ins, arr.Items[at:]...)...)
}

// RemoveEntry removes every assignment to key and reports whether any
// was found.  A run of comment lines directly above a removed
// assignment is removed with it when nothing below would claim the
// comments, so deleting a variable also deletes the note describing
// it.
func RemoveEntry(doc *lst.Document, key string) bool {
	if debug.Edit() {
		debug.Logf("edit: remove %s\n", key)
	}
	removed := false
	for i := len(doc.Entries) - 1; i >= 0; i-- {
		e := doc.Entries[i]
		if e.Kind != lst.EntryAssign || e.Key != key {
			continue
		}
		start := i
		if orphansComments(doc, i) {
			for start > 0 && doc.Entries[start-1].Kind == lst.EntryComment {
				start--
			}
		}
		doc.Entries = append(doc.Entries[:start], doc.Entries[i+1:]...)
		removed = true
		i = start
	}
	return removed
}

// orphansComments reports whether removing entry i would leave the
// comment run above it attached to nothing: there is a comment
// directly above and no assignment directly below.
func orphansComments(doc *lst.Document, i int) bool {
	if i == 0 || doc.Entries[i-1].Kind != lst.EntryComment {
		return false
	}
	return i+1 >= len(doc.Entries) || doc.Entries[i+1].Kind != lst.EntryAssign
}

// InsertScalarAfter inserts a new KEY="text" line directly after the
// last assignment to afterKey.  When afterKey is never assigned the
// new line is appended to the end of the document instead.
func InsertScalarAfter(doc *lst.Document, afterKey, key, text string) {
	if debug.Edit() {
		debug.Logf("edit: insert %s=%q after %s\n", key, text, afterKey)
	}
	e := &lst.Entry{
		Kind: lst.EntryAssign,
		Key:  key,
		Op:   lst.OpAssign,
		Val:  emit.NewScalar(text, lst.QuoteDouble),
		NL:   "\n",
	}
	at := -1
	for i, cur := range doc.Entries {
		if cur.Kind == lst.EntryAssign && cur.Key == afterKey {
			at = i
		}
	}
	if at < 0 {
		appendEntry(doc, e)
		return
	}
	if doc.Entries[at].NL == "" {
		doc.Entries[at].NL = "\n"
	}
	doc.Entries = append(doc.Entries[:at+1], append([]*lst.Entry{e}, doc.Entries[at+1:]...)...)
}

// EnsureEndNewline terminates the last entry with a newline when the
// document does not already end in one.  Empty documents stay empty.
func EnsureEndNewline(doc *lst.Document) {
	if n := len(doc.Entries); n > 0 && doc.Entries[n-1].NL == "" {
		doc.Entries[n-1].NL = "\n"
	}
}

func appendEntry(doc *lst.Document, e *lst.Entry) {
	EnsureEndNewline(doc)
	doc.Entries = append(doc.Entries, e)
}
