package eval

import (
	"strings"

	"github.com/aosc-dev/go-apml/lst"
	"github.com/aosc-dev/go-apml/token"
)

// expandScalar expands a scalar value to its text.  The raw source
// text is scanned byte by byte: single-quoted spans pass through
// literally, double-quoted spans keep substitution but drop the
// quoting, backslashes escape, and $ starts a substitution.
func expandScalar(sc *lst.Scalar, env Env) (string, error) {
	x := &expander{env: env, d: sc.Raw, pos: sc.Pos}
	return x.run()
}

// expandElement expands one array element to its words.  An element
// that is exactly one ${NAME[@]} expansion, double-quoted or bare,
// splices the named value in; anything else makes exactly one word.
func expandElement(sc *lst.Scalar, env Env) ([]string, error) {
	if name, ok := spliceRef(sc.Raw); ok {
		v, ok := env[name]
		if !ok {
			return nil, undefinedErr(name, sc.Pos)
		}
		return append([]string(nil), v.Strings()...), nil
	}
	s, err := expandScalar(sc, env)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

// spliceRef reports whether raw is exactly one ${NAME[@]} expansion,
// optionally wrapped in double quotes, and returns NAME.
func spliceRef(raw string) (string, bool) {
	s := raw
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "[@]}") {
		return "", false
	}
	name := s[2 : len(s)-len("[@]}")]
	if !validName(name) {
		return "", false
	}
	return name, true
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !nameByte(s[i], i > 0) {
			return false
		}
	}
	return true
}

// nameByte reports whether c may appear in a variable name.  The first
// byte must not be a digit, so $1 or $(cmd) reads as literal text
// rather than a substitution.
func nameByte(c byte, rest bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return rest
	}
	return false
}

// expander scans one piece of raw value text, expanding substitutions
// against env.  pos is the source position of d[0] and may be nil for
// text built in memory.
type expander struct {
	env Env
	d   string
	pos *token.Pos
	i   int
	out strings.Builder
}

func (x *expander) at(off int) *token.Pos {
	if x.pos == nil {
		return nil
	}
	return x.pos.Add(off)
}

func (x *expander) run() (string, error) {
	for x.i < len(x.d) {
		switch c := x.d[x.i]; c {
		case '\'':
			x.i++
			for x.i < len(x.d) && x.d[x.i] != '\'' {
				x.out.WriteByte(x.d[x.i])
				x.i++
			}
			if x.i < len(x.d) {
				x.i++
			}
		case '"':
			x.i++
			if err := x.quoted(); err != nil {
				return "", err
			}
		case '\\':
			if x.i+1 < len(x.d) {
				if x.d[x.i+1] != '\n' {
					x.out.WriteByte(x.d[x.i+1])
				}
				x.i += 2
				continue
			}
			x.out.WriteByte(c)
			x.i++
		case '$':
			if err := x.subst(); err != nil {
				return "", err
			}
		default:
			x.out.WriteByte(c)
			x.i++
		}
	}
	return x.out.String(), nil
}

// quoted scans the inside of a double-quoted span.  The lexer
// guarantees the closing quote, but text built in memory may lack it,
// in which case the span just runs to the end.
func (x *expander) quoted() error {
	for x.i < len(x.d) {
		switch c := x.d[x.i]; c {
		case '"':
			x.i++
			return nil
		case '\\':
			if x.i+1 < len(x.d) {
				switch e := x.d[x.i+1]; e {
				case '$', '"', '\\', '`':
					x.out.WriteByte(e)
				case '\n':
					// spliced line
				default:
					x.out.WriteByte('\\')
					x.out.WriteByte(e)
				}
				x.i += 2
				continue
			}
			x.out.WriteByte(c)
			x.i++
		case '$':
			if err := x.subst(); err != nil {
				return err
			}
		default:
			x.out.WriteByte(c)
			x.i++
		}
	}
	return nil
}

// subst scans one $ substitution, x.d[x.i] being the dollar.  A $ that
// opens neither a name nor a brace is literal text.
func (x *expander) subst() error {
	start := x.i
	x.i++
	if x.i < len(x.d) && x.d[x.i] == '{' {
		x.i++
		return x.braced(start)
	}
	j := x.i
	for j < len(x.d) && nameByte(x.d[j], j > x.i) {
		j++
	}
	if j == x.i {
		x.out.WriteByte('$')
		return nil
	}
	name := x.d[x.i:j]
	v, ok := x.env[name]
	if !ok {
		return undefinedErr(name, x.at(start))
	}
	x.out.WriteString(v.String())
	x.i = j
	return nil
}

// braced scans a ${...} substitution.  start is the offset of the
// dollar; x.i is just past the opening brace.
func (x *expander) braced(start int) error {
	inner, end, ok := braceSpan(x.d, x.i)
	if !ok {
		return malformedErr("missing closing brace", x.at(start))
	}
	innerOff := x.i
	x.i = end + 1
	s, err := x.expandBraced(inner, innerOff, start)
	if err != nil {
		return err
	}
	x.out.WriteString(s)
	return nil
}

// braceSpan returns the text between the brace opening at d[from-1]
// and its matching close, skipping nested ${...} and backslash
// escapes, with the index of the closing brace.
func braceSpan(d string, from int) (string, int, bool) {
	depth := 1
	i := from
	for i < len(d) {
		switch d[i] {
		case '\\':
			i += 2
			continue
		case '$':
			if i+1 < len(d) && d[i+1] == '{' {
				depth++
				i += 2
				continue
			}
		case '}':
			depth--
			if depth == 0 {
				return d[from:i], i, true
			}
		}
		i++
	}
	return "", 0, false
}

// word expands a nested word, such as the alternate of ${NAME:-word}
// or the replacement of ${NAME/glob/word}.  off is the word's offset
// in x.d.
func (x *expander) word(w string, off int) (string, error) {
	sub := &expander{env: x.env, d: w, pos: x.at(off)}
	return sub.run()
}

// lookup resolves name or fails with the position of the substitution
// that needed it.
func (x *expander) lookup(name string, start int) (Value, error) {
	v, ok := x.env[name]
	if !ok {
		return Value{}, undefinedErr(name, x.at(start))
	}
	return v, nil
}
