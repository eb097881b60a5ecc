package lst

import (
	"strings"

	"github.com/aosc-dev/go-apml/token"
)

// Document is a lossless view of an APML file: every byte of the input
// belongs to exactly one entry, in order.
type Document struct {
	Entries []*Entry
}

type EntryKind int

const (
	EntryAssign EntryKind = iota
	EntryComment
	EntryBlank
	EntryOpaque
)

func (k EntryKind) String() string {
	return map[EntryKind]string{
		EntryAssign:  "assign",
		EntryComment: "comment",
		EntryBlank:   "blank",
		EntryOpaque:  "opaque",
	}[k]
}

type Op int

const (
	OpAssign Op = iota
	OpAppend
)

func (o Op) String() string {
	return map[Op]string{
		OpAssign: "=",
		OpAppend: "+=",
	}[o]
}

// Entry is one logical line of a document.
//
// For EntryAssign, Key/Op/Val hold the assignment and Trail holds any
// trailing spaces and inline comment.  For EntryComment, Text holds the
// comment including its '#'.  For EntryBlank only Lead and NL are set.
// EntryOpaque preserves a line the parser could not shape, verbatim, in
// Text; tolerant parsing uses it to keep going without losing bytes.
type Entry struct {
	Kind EntryKind

	Lead string
	Key  string
	Op   Op
	Val  Value
	Text string
	Trail string
	NL   string

	Pos *token.Pos
}

// Value is either a *Scalar or an *Array.
type Value interface {
	value()
}

type QuoteKind int

const (
	// QuoteNone marks a bare value, or one mixing several quoting
	// styles; Raw is authoritative either way.
	QuoteNone QuoteKind = iota
	QuoteSingle
	QuoteDouble
)

func (q QuoteKind) String() string {
	return map[QuoteKind]string{
		QuoteNone:   "none",
		QuoteSingle: "single",
		QuoteDouble: "double",
	}[q]
}

// Scalar is a scalar value span.  Raw is the value exactly as written,
// quotes, escapes and continuations included.  Quote reports the
// quoting style when the whole value is a single quoted string.
type Scalar struct {
	Raw   string
	Quote QuoteKind
	Pos   *token.Pos
}

func (*Scalar) value() {}

// Lit returns the literal text of the scalar with quoting and escapes
// decoded.  Substitutions are left as written; expanding them is the
// eval package's business.
func (s *Scalar) Lit() string {
	var b strings.Builder
	d := s.Raw
	i := 0
	for i < len(d) {
		switch c := d[i]; c {
		case '\'':
			i++
			for i < len(d) && d[i] != '\'' {
				b.WriteByte(d[i])
				i++
			}
			if i < len(d) {
				i++
			}
		case '"':
			i++
			for i < len(d) && d[i] != '"' {
				if d[i] == '\\' && i+1 < len(d) {
					switch e := d[i+1]; e {
					case '$', '"', '\\', '`':
						b.WriteByte(e)
						i += 2
					case '\n':
						i += 2
					default:
						b.WriteByte('\\')
						i++
					}
					continue
				}
				b.WriteByte(d[i])
				i++
			}
			if i < len(d) {
				i++
			}
		case '\\':
			if i+1 < len(d) {
				if d[i+1] == '\n' {
					i += 2
					continue
				}
				b.WriteByte(d[i+1])
				i += 2
				continue
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// Array is a parenthesized value.  Items holds elements and the trivia
// between them in source order; the parens themselves are implicit.
type Array struct {
	Items []*ArrayItem
	Pos   *token.Pos
}

func (*Array) value() {}

type ArrayItemKind int

const (
	ItemScalar ArrayItemKind = iota
	ItemSpace
	ItemNewline
	ItemComment
)

func (k ArrayItemKind) String() string {
	return map[ArrayItemKind]string{
		ItemScalar:  "scalar",
		ItemSpace:   "space",
		ItemNewline: "newline",
		ItemComment: "comment",
	}[k]
}

// ArrayItem is one element or one piece of trivia inside an array.
// Line continuations count as ItemSpace with Text "\\\n".
type ArrayItem struct {
	Kind ArrayItemKind
	Sc   *Scalar
	Text string
}

// Scalars returns the element scalars of the array, trivia skipped.
func (a *Array) Scalars() []*Scalar {
	var res []*Scalar
	for _, it := range a.Items {
		if it.Kind == ItemScalar {
			res = append(res, it.Sc)
		}
	}
	return res
}

// Last returns the last assignment to key, or nil.  Later assignments
// shadow earlier ones, so this is the binding evaluation would see.
func (d *Document) Last(key string) *Entry {
	var res *Entry
	for _, e := range d.Entries {
		if e.Kind == EntryAssign && e.Key == key {
			res = e
		}
	}
	return res
}

// All returns every assignment to key in document order.
func (d *Document) All(key string) []*Entry {
	var res []*Entry
	for _, e := range d.Entries {
		if e.Kind == EntryAssign && e.Key == key {
			res = append(res, e)
		}
	}
	return res
}

// Keys returns the distinct assigned keys in first-seen order.
func (d *Document) Keys() []string {
	var res []string
	seen := map[string]bool{}
	for _, e := range d.Entries {
		if e.Kind != EntryAssign || seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		res = append(res, e.Key)
	}
	return res
}
