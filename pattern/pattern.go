// Package pattern compiles the dialect's glob patterns to RE2.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnsupportedGlob marks glob constructs RE2 cannot express.
// Today that is exactly `!(...)`, which needs negative lookahead.
var ErrUnsupportedGlob = errors.New("unsupported glob construct")

// Compile translates glob and compiles it, unanchored.  Callers add
// their own `^`/`$` depending on whether they match prefixes, suffixes
// or whole strings.
func Compile(glob string, greedy bool) (*regexp.Regexp, error) {
	src, err := Translate(glob, greedy)
	if err != nil {
		return nil, err
	}
	return regexp.Compile(src)
}

// Translate converts a glob to RE2 source.  greedy selects
// longest-match quantifiers; the shortest-match modifiers of the
// dialect (`#`, `%`, single `/`) pass false for lazy ones.
//
// Supported: `*`, `?`, `[class]` (including `[!...]` negation and
// `[:alpha:]` style named classes), escapes, and the extended groups
// `?(a|b)`, `*(...)`, `+(...)`, `@(...)`.
func Translate(glob string, greedy bool) (string, error) {
	var b strings.Builder
	if err := translate(&b, glob, greedy); err != nil {
		return "", err
	}
	return b.String(), nil
}

func translate(b *strings.Builder, g string, greedy bool) error {
	i := 0
	for i < len(g) {
		c := g[i]
		if i+1 < len(g) && g[i+1] == '(' && strings.IndexByte("*?+@!", c) >= 0 {
			if c == '!' {
				return fmt.Errorf("%w: %q", ErrUnsupportedGlob, g[i:])
			}
			end := matchParen(g, i+1)
			if end < 0 {
				return fmt.Errorf("%w: unterminated %q", ErrUnsupportedGlob, g[i:])
			}
			if err := group(b, c, g[i+2:end], greedy); err != nil {
				return err
			}
			i = end + 1
			continue
		}
		switch c {
		case '*':
			if greedy {
				b.WriteString(".*")
			} else {
				b.WriteString(".*?")
			}
			i++
		case '?':
			b.WriteString(".")
			i++
		case '[':
			i = class(b, g, i)
		case '\\':
			if i+1 < len(g) {
				b.WriteString(regexp.QuoteMeta(g[i+1 : i+2]))
				i += 2
			} else {
				b.WriteString(`\\`)
				i++
			}
		default:
			b.WriteString(regexp.QuoteMeta(g[i : i+1]))
			i++
		}
	}
	return nil
}

// group emits one extended glob group as a non-capturing RE2 group.
func group(b *strings.Builder, kind byte, inner string, greedy bool) error {
	b.WriteString("(?:")
	for ai, alt := range splitAlts(inner) {
		if ai > 0 {
			b.WriteByte('|')
		}
		if err := translate(b, alt, greedy); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	var q string
	switch kind {
	case '?':
		q = "?"
	case '*':
		q = "*"
	case '+':
		q = "+"
	case '@':
		return nil
	}
	b.WriteString(q)
	if !greedy {
		b.WriteByte('?')
	}
	return nil
}

// matchParen returns the index of the ')' closing the '(' at open, or
// -1.  Escapes and character classes are skipped over.
func matchParen(g string, open int) int {
	depth := 0
	for i := open; i < len(g); i++ {
		switch g[i] {
		case '\\':
			i++
		case '[':
			if j := classEnd(g, i); j > 0 {
				i = j - 1
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitAlts splits a group body on top-level '|'.
func splitAlts(inner string) []string {
	var res []string
	depth, start := 0, 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\\':
			i++
		case '[':
			if j := classEnd(inner, i); j > 0 {
				i = j - 1
			}
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				res = append(res, inner[start:i])
				start = i + 1
			}
		}
	}
	return append(res, inner[start:])
}

// classEnd returns the index just past the ']' closing the class that
// starts at i, or -1 if the class never closes.
func classEnd(g string, i int) int {
	j := i + 1
	if j < len(g) && (g[j] == '!' || g[j] == '^') {
		j++
	}
	if j < len(g) && g[j] == ']' {
		j++
	}
	for j < len(g) {
		switch g[j] {
		case ']':
			return j + 1
		case '[':
			// named classes like [:alpha:] nest one level
			if j+1 < len(g) && g[j+1] == ':' {
				if k := strings.Index(g[j:], ":]"); k >= 0 {
					j += k + 2
					continue
				}
			}
			j++
		default:
			j++
		}
	}
	return -1
}

// class emits a character class, or a literal '[' when it never
// closes, which is how the shell reads it too.
func class(b *strings.Builder, g string, i int) int {
	end := classEnd(g, i)
	if end < 0 {
		b.WriteString(`\[`)
		return i + 1
	}
	body := g[i+1 : end-1]
	neg := false
	if body != "" && (body[0] == '!' || body[0] == '^') {
		neg = true
		body = body[1:]
	}
	b.WriteByte('[')
	if neg {
		b.WriteByte('^')
	}
	if strings.HasPrefix(body, "]") {
		b.WriteString(`\]`)
		body = body[1:]
	}
	b.WriteString(strings.ReplaceAll(body, `\`, `\\`))
	b.WriteByte(']')
	return end
}
