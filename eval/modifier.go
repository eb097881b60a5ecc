package eval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aosc-dev/go-apml/pattern"
)

// expandBraced resolves the inside of one ${...}.  inner sits at
// innerOff in x.d; start is the offset of the dollar, which error
// positions point at.
func (x *expander) expandBraced(inner string, innerOff, start int) (string, error) {
	if inner == "" {
		return "", malformedErr("empty substitution", x.at(start))
	}
	if inner[0] == '#' {
		name := inner[1:]
		if !validName(name) {
			return "", malformedErr(fmt.Sprintf("bad length operand %q", name), x.at(start))
		}
		v, err := x.lookup(name, start)
		if err != nil {
			return "", err
		}
		if v.Kind == ArrayKind {
			return strconv.Itoa(len(v.Arr)), nil
		}
		return strconv.Itoa(utf8.RuneCountInString(v.Str)), nil
	}
	j := 0
	for j < len(inner) && nameByte(inner[j], j > 0) {
		j++
	}
	if j == 0 {
		return "", malformedErr(fmt.Sprintf("bad variable name in ${%s}", inner), x.at(start))
	}
	name, mod := inner[:j], inner[j:]
	switch mod {
	case "", "[@]", "[*]":
		// in scalar position all three read as the joined value
		v, err := x.lookup(name, start)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	return x.modifier(name, mod, innerOff+j, start)
}

func (x *expander) modifier(name, mod string, modOff, start int) (string, error) {
	switch mod[0] {
	case ':':
		return x.colon(name, mod[1:], modOff+1, start)
	case '#', '%':
		longest := len(mod) > 1 && mod[1] == mod[0]
		glob := mod[1:]
		if longest {
			glob = mod[2:]
		}
		if glob == "" {
			return "", malformedErr("empty pattern", x.at(start))
		}
		v, err := x.lookup(name, start)
		if err != nil {
			return "", err
		}
		return x.strip(v.String(), glob, mod[0] == '%', longest, start)
	case '/':
		return x.replace(name, mod[1:], modOff+1, start)
	case '^', ',':
		all := len(mod) > 1 && mod[1] == mod[0]
		glob := mod[1:]
		if all {
			glob = mod[2:]
		}
		v, err := x.lookup(name, start)
		if err != nil {
			return "", err
		}
		return x.caseMod(v.String(), glob, mod[0] == '^', all, start)
	}
	return "", malformedErr(fmt.Sprintf("unknown modifier %q", mod), x.at(start))
}

// colon handles the :-, :+ and :? forms and the ofs[:len] substring.
// The first three are the only substitutions that tolerate an unset
// name, which then reads as empty.
func (x *expander) colon(name, rest string, restOff, start int) (string, error) {
	if rest == "" {
		return "", malformedErr("empty modifier after :", x.at(start))
	}
	switch rest[0] {
	case '-':
		v := x.env[name]
		if v.Empty() {
			return x.word(rest[1:], restOff+1)
		}
		return v.String(), nil
	case '+':
		v := x.env[name]
		if !v.Empty() {
			return x.word(rest[1:], restOff+1)
		}
		return v.String(), nil
	case '?':
		v := x.env[name]
		if v.Empty() {
			msg, err := x.word(rest[1:], restOff+1)
			if err != nil {
				return "", err
			}
			return "", &UndefinedVariableErr{Name: name, Msg: msg, Pos: x.at(start)}
		}
		return v.String(), nil
	}
	ofs, length, hasLen, ok := parseSubstring(rest)
	if !ok {
		return "", malformedErr(fmt.Sprintf("bad substring %q", rest), x.at(start))
	}
	v, err := x.lookup(name, start)
	if err != nil {
		return "", err
	}
	return substring(v.String(), ofs, length, hasLen), nil
}

// parseSubstring reads the ofs[:len] form.  The offset is an unsigned
// decimal; the length may be negative, counting back from the end.
func parseSubstring(s string) (ofs, length int, hasLen, ok bool) {
	ofsStr, lenStr, found := strings.Cut(s, ":")
	if !digits(ofsStr) {
		return 0, 0, false, false
	}
	ofs, _ = strconv.Atoi(ofsStr)
	if found {
		d := strings.TrimPrefix(lenStr, "-")
		if !digits(d) {
			return 0, 0, false, false
		}
		length, _ = strconv.Atoi(lenStr)
	}
	return ofs, length, found, true
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// substring slices by runes, clamping both ends the way the shell
// does, so an offset past the end is empty rather than an error.
func substring(s string, ofs, length int, hasLen bool) string {
	runes := []rune(s)
	if ofs > len(runes) {
		ofs = len(runes)
	}
	if !hasLen {
		return string(runes[ofs:])
	}
	end := len(runes)
	if length >= 0 {
		if ofs+length < end {
			end = ofs + length
		}
	} else {
		end += length
	}
	if end < ofs {
		end = ofs
	}
	return string(runes[ofs:end])
}

// strip removes the prefix or suffix matching glob.  The shapes mirror
// the four modifiers: an optional anchored head group with the rest
// captured, or a captured head with an anchored tail group, lazy
// quantifiers picking the shortest match and greedy the longest.  A
// value the pattern cannot match at all passes through unchanged.
func (x *expander) strip(val, glob string, suffix, longest bool, start int) (string, error) {
	src, err := pattern.Translate(glob, longest)
	if err != nil {
		return "", malformedErr(err.Error(), x.at(start))
	}
	var expr string
	switch {
	case !suffix && !longest:
		expr = "(?s)^(?:" + src + ")?(.*)$"
	case !suffix && longest:
		expr = "(?s)^(?:" + src + ")?(.*?)$"
	case suffix && !longest:
		expr = "(?s)^(.*)(?:" + src + ")$"
	default:
		expr = "(?s)^(.*?)(?:" + src + ")$"
	}
	rx, err := regexp.Compile(expr)
	if err != nil {
		return "", malformedErr(err.Error(), x.at(start))
	}
	m := rx.FindStringSubmatch(val)
	if m == nil {
		return val, nil
	}
	return m[1], nil
}

type replaceMode int

const (
	replaceFirst replaceMode = iota
	replaceAll
	replacePrefix
	replaceSuffix
)

// replace handles the /, //, /# and /% forms.  rest is everything
// after the first slash; the replacement, if any, follows the next
// unescaped slash and expands like any word.  Patterns stay literal.
func (x *expander) replace(name, rest string, restOff, start int) (string, error) {
	mode := replaceFirst
	if rest != "" {
		switch rest[0] {
		case '/':
			mode = replaceAll
			rest, restOff = rest[1:], restOff+1
		case '#':
			mode = replacePrefix
			rest, restOff = rest[1:], restOff+1
		case '%':
			mode = replaceSuffix
			rest, restOff = rest[1:], restOff+1
		}
	}
	glob, repl, hasRepl := cutUnescaped(rest, '/')
	if glob == "" {
		return "", malformedErr("empty pattern", x.at(start))
	}
	var replText string
	if hasRepl {
		var err error
		replText, err = x.word(repl, restOff+len(glob)+1)
		if err != nil {
			return "", err
		}
	}
	v, err := x.lookup(name, start)
	if err != nil {
		return "", err
	}
	src, err := pattern.Translate(glob, true)
	if err != nil {
		return "", malformedErr(err.Error(), x.at(start))
	}
	switch mode {
	case replacePrefix:
		src = "^(?:" + src + ")"
	case replaceSuffix:
		src = "(?:" + src + ")$"
	default:
		src = "(?:" + src + ")"
	}
	rx, err := regexp.Compile("(?s)" + src)
	if err != nil {
		return "", malformedErr(err.Error(), x.at(start))
	}
	val := v.String()
	if mode == replaceFirst {
		m := rx.FindStringIndex(val)
		if m == nil {
			return val, nil
		}
		return val[:m[0]] + replText + val[m[1]:], nil
	}
	return rx.ReplaceAllLiteralString(val, replText), nil
}

// cutUnescaped splits s at the first unescaped sep byte.
func cutUnescaped(s string, sep byte) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// caseMod converts the case of matched spans: the first match for ^
// and , , every match for ^^ and ,,.  An empty glob matches any one
// character, making ${NAME^^} the whole-string form.
func (x *expander) caseMod(val, glob string, upper, all bool, start int) (string, error) {
	if glob == "" {
		glob = "?"
	}
	src, err := pattern.Translate(glob, true)
	if err != nil {
		return "", malformedErr(err.Error(), x.at(start))
	}
	rx, err := regexp.Compile("(?s)(?:" + src + ")")
	if err != nil {
		return "", malformedErr(err.Error(), x.at(start))
	}
	conv := strings.ToLower
	if upper {
		conv = strings.ToUpper
	}
	if all {
		return rx.ReplaceAllStringFunc(val, conv), nil
	}
	m := rx.FindStringIndex(val)
	if m == nil {
		return val, nil
	}
	return val[:m[0]] + conv(val[m[0]:m[1]]) + val[m[1]:], nil
}
