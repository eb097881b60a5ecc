package value

import "strings"

// Union is the tagged value form used by SRCS entries:
//
//	tag::key1=value1;key2=value2::argument
//
// The property list and the argument are both optional.  Property
// values run to the next ';' or '::'; single colons inside them are
// fine, which is what lets URLs appear as values.
type Union struct {
	Tag        string
	Properties []Property
	Argument   string
}

// Property is one key=value pair of a union.  Properties keep their
// source order.
type Property struct {
	Key   string
	Value string
}

// Property returns the value of the first property named key.
func (u *Union) Property(key string) (string, bool) {
	for _, p := range u.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// String renders the union back to its source form.
func (u *Union) String() string {
	var b strings.Builder
	b.WriteString(u.Tag)
	for i, p := range u.Properties {
		if i == 0 {
			b.WriteString("::")
		} else {
			b.WriteByte(';')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	if u.Argument != "" {
		b.WriteString("::")
		b.WriteString(u.Argument)
	}
	return b.String()
}

// ParseUnion parses a union value.  Surrounding whitespace is ignored,
// and whitespace before a property key is too, so values may be spread
// over wrapped lines.  A '::' whose right side does not parse as a
// property list starts the argument instead.
func ParseUnion(s string) (*Union, error) {
	src := strings.TrimSpace(s)

	i := 0
	for i < len(src) && alnum(src[i]) {
		i++
	}
	if i == 0 {
		return nil, unionErr(src, 0)
	}
	u := &Union{Tag: src[:i]}
	rest := src[i:]

	if strings.HasPrefix(rest, "::") {
		if props, n, ok := parseProperties(rest[2:]); ok {
			u.Properties = props
			rest = rest[2+n:]
		}
	}
	if strings.HasPrefix(rest, "::") {
		arg := rest[2:]
		if arg == "" {
			return nil, unionErr(src, len(src))
		}
		for j := 0; j < len(arg); j++ {
			if arg[j] >= 0x80 {
				return nil, unionErr(src, len(src)-len(arg)+j)
			}
		}
		u.Argument = arg
		rest = ""
	}
	if rest != "" {
		return nil, unionErr(src, len(src)-len(rest))
	}
	return u, nil
}

// parseProperties parses a ;-separated key=value list and reports how
// many bytes it consumed.  When the first pair does not parse the list
// fails as a whole; when a later pair does not parse the list ends
// before the separator, leaving it unconsumed.
func parseProperties(s string) ([]Property, int, bool) {
	var props []Property
	i := 0
	for {
		mark := i
		for i < len(s) && spacey(s[i]) {
			i++
		}
		ks := i
		for i < len(s) && keyByte(s[i]) {
			i++
		}
		if i == ks || i >= len(s) || s[i] != '=' {
			if len(props) == 0 {
				return nil, 0, false
			}
			// mark-1 points at the separator we consumed; give it back.
			return props, mark - 1, true
		}
		key := s[ks:i]
		i++
		vs := i
		for i < len(s) {
			if s[i] == ';' || (s[i] == ':' && i+1 < len(s) && s[i+1] == ':') {
				break
			}
			i++
		}
		props = append(props, Property{Key: key, Value: s[vs:i]})
		if i < len(s) && s[i] == ';' {
			i++
			continue
		}
		return props, i, true
	}
}

func alnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func keyByte(c byte) bool {
	return alnum(c) || c == '-' || c == '_'
}

func spacey(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
