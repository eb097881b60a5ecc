package ast

import (
	"strings"

	"github.com/aosc-dev/go-apml/lst"
)

// Document lowers the AST back to a lossless document in canonical
// form: one assignment per line, scalars double-quoted with escaped
// literals and substitutions intact, array elements double-quoted and
// separated by single spaces, comments on their own lines.  Every
// lowered document parses back to an equal AST.
func (a *AST) Document() *lst.Document {
	doc := &lst.Document{}
	for _, n := range a.Nodes {
		switch n := n.(type) {
		case *Comment:
			doc.Entries = append(doc.Entries, &lst.Entry{
				Kind: lst.EntryComment,
				Text: n.Text,
				NL:   "\n",
			})
		case *Assign:
			e := &lst.Entry{
				Kind: lst.EntryAssign,
				Key:  n.Name,
				Op:   lst.OpAssign,
				NL:   "\n",
			}
			switch v := n.Val.(type) {
			case Array:
				arr := &lst.Array{}
				for i, el := range v {
					if i > 0 {
						arr.Items = append(arr.Items, &lst.ArrayItem{Kind: lst.ItemSpace, Text: " "})
					}
					arr.Items = append(arr.Items, &lst.ArrayItem{
						Kind: lst.ItemScalar,
						Sc:   &lst.Scalar{Raw: renderText(el), Quote: lst.QuoteDouble},
					})
				}
				e.Val = arr
			case Text:
				e.Val = &lst.Scalar{Raw: renderText(v), Quote: lst.QuoteDouble}
			}
			if n.Trail != "" {
				e.Trail = " " + n.Trail
			}
			doc.Entries = append(doc.Entries, e)
		}
	}
	return doc
}

// renderText renders a word list as one double-quoted span.
func renderText(t Text) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, w := range t {
		if w.Kind == WordSubst {
			b.WriteString(w.Text)
			continue
		}
		for i := 0; i < len(w.Text); i++ {
			switch c := w.Text[i]; c {
			case '$', '"', '\\', '`':
				b.WriteByte('\\')
				b.WriteByte(c)
			default:
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
