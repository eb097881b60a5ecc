package ast

import (
	"strings"

	"github.com/aosc-dev/go-apml/lst"
)

// AST holds the simplified nodes of a document in source order.
type AST struct {
	Nodes []Node
}

// Node is either an *Assign or a *Comment.
type Node interface {
	node()
}

// Assign is one variable definition.  Appends have been desugared, so
// every Assign is a plain assignment.
type Assign struct {
	Name string
	Val  Value
	// Trail is an inline comment from the assignment's line, '#'
	// included, or empty.
	Trail string
}

func (*Assign) node() {}

// Comment is a full-line comment, '#' included.
type Comment struct {
	Text string
}

func (*Comment) node() {}

// Value is either a Text or an Array.
type Value interface {
	value()
}

// Text is a scalar value as a list of words.
type Text []Word

func (Text) value() {}

// Array is an array value, one word list per element.  An element that
// is exactly one ${NAME[@]} substitution splices another array in.
type Array []Text

func (Array) value() {}

type WordKind int

const (
	// WordLit is literal text with quoting and escapes already decoded.
	WordLit WordKind = iota
	// WordSubst is a substitution kept as written, always in braced
	// form: scanning normalizes $NAME to ${NAME}.
	WordSubst
)

func (k WordKind) String() string {
	return map[WordKind]string{
		WordLit:   "literal",
		WordSubst: "substitution",
	}[k]
}

// Word is one run of a value: either decoded literal text or one
// substitution.
type Word struct {
	Kind WordKind
	Text string
}

// Lit returns a literal word.
func Lit(text string) Word {
	return Word{Kind: WordLit, Text: text}
}

// Subst returns a substitution word for ${inner}.
func Subst(inner string) Word {
	return Word{Kind: WordSubst, Text: "${" + inner + "}"}
}

// FromDocument shapes a document into its simplified form.  Blank
// lines and array-internal trivia are dropped, comments are kept as
// nodes, and += desugars: NAME+="V" becomes NAME="${NAME}V" and
// NAME+=(V) becomes NAME=("${NAME[@]}" V).  Documents holding opaque
// entries from a tolerant parse fail with ErrUnshapedLine.
func FromDocument(doc *lst.Document) (*AST, error) {
	a := &AST{}
	for _, e := range doc.Entries {
		switch e.Kind {
		case lst.EntryBlank:
		case lst.EntryComment:
			a.Nodes = append(a.Nodes, &Comment{Text: e.Text})
		case lst.EntryOpaque:
			return nil, shapeErr(ErrUnshapedLine, e.Text, e.Pos)
		case lst.EntryAssign:
			n, err := assignNode(e)
			if err != nil {
				return nil, err
			}
			a.Nodes = append(a.Nodes, n)
		}
	}
	return a, nil
}

func assignNode(e *lst.Entry) (*Assign, error) {
	n := &Assign{Name: e.Key, Trail: trailComment(e.Trail)}
	switch val := e.Val.(type) {
	case *lst.Array:
		var arr Array
		if e.Op == lst.OpAppend {
			arr = append(arr, Text{Subst(e.Key + "[@]")})
		}
		for _, sc := range val.Scalars() {
			words, err := parseWords(sc.Raw, sc.Pos)
			if err != nil {
				return nil, err
			}
			arr = append(arr, Text(words))
		}
		n.Val = arr
	default:
		raw := ""
		pos := e.Pos
		if sc, ok := val.(*lst.Scalar); ok {
			raw, pos = sc.Raw, sc.Pos
		}
		words, err := parseWords(raw, pos)
		if err != nil {
			return nil, err
		}
		if e.Op == lst.OpAppend {
			words = append([]Word{Subst(e.Key)}, words...)
		}
		n.Val = Text(words)
	}
	return n, nil
}

// trailComment extracts the inline comment from an entry's trailing
// trivia.
func trailComment(trail string) string {
	t := strings.TrimLeft(trail, " \t")
	if strings.HasPrefix(t, "#") {
		return t
	}
	return ""
}
