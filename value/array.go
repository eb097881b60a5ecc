package value

import "strings"

// WrapWidth is the conventional column budget for wrapped metadata
// values in ABBS trees.
const WrapWidth = 75

// StringArray is a list of words stored space-separated in a single
// scalar value, the way PKGDEP and BUILDDEP are written.
type StringArray []string

// ParseStringArray splits a scalar value into words.  Runs of spaces,
// tabs and newlines all separate; empty words never appear.
func ParseStringArray(s string) StringArray {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n'
	})
	return StringArray(fields)
}

// String joins the words with single spaces.
func (a StringArray) String() string {
	return strings.Join(a, " ")
}

// Wrap renders the words as one double-quoted value, breaking with a
// line continuation and a tab before any word that would push the
// current line past width columns.  The first line budgets for a
// KEY=" prefix.  Pass WrapWidth for the conventional layout.
func (a StringArray) Wrap(width int) string {
	var b strings.Builder
	b.WriteByte('"')
	line := 10
	for i, w := range a {
		switch {
		case i == 0:
			line += len(w)
		case line+len(w) > width:
			b.WriteString(" \\\n\t")
			line = 6 + len(w)
		default:
			b.WriteByte(' ')
			line += len(w) + 1
		}
		escapeInto(&b, w)
	}
	b.WriteByte('"')
	return b.String()
}

// escapeInto writes s escaped for a double-quoted value.
func escapeInto(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '$', '"', '\\', '`':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
}
