package ast

import (
	"strings"

	"github.com/aosc-dev/go-apml/token"
)

// wordScan splits raw value text into words, folding runs of literal
// text together and keeping substitutions as single words.  The quote
// handling mirrors how evaluation reads the same text, so a value and
// its word list always evaluate alike.
type wordScan struct {
	d   string
	pos *token.Pos
	i   int
	lit strings.Builder
	out []Word
}

func parseWords(raw string, pos *token.Pos) ([]Word, error) {
	s := &wordScan{d: raw, pos: pos}
	for s.i < len(s.d) {
		switch c := s.d[s.i]; c {
		case '\'':
			s.i++
			for s.i < len(s.d) && s.d[s.i] != '\'' {
				s.lit.WriteByte(s.d[s.i])
				s.i++
			}
			if s.i < len(s.d) {
				s.i++
			}
		case '"':
			s.i++
			if err := s.quoted(); err != nil {
				return nil, err
			}
		case '\\':
			if s.i+1 < len(s.d) {
				if s.d[s.i+1] != '\n' {
					s.lit.WriteByte(s.d[s.i+1])
				}
				s.i += 2
				continue
			}
			s.lit.WriteByte(c)
			s.i++
		case '$':
			if err := s.subst(); err != nil {
				return nil, err
			}
		default:
			s.lit.WriteByte(c)
			s.i++
		}
	}
	s.flush()
	return s.out, nil
}

func (s *wordScan) quoted() error {
	for s.i < len(s.d) {
		switch c := s.d[s.i]; c {
		case '"':
			s.i++
			return nil
		case '\\':
			if s.i+1 < len(s.d) {
				switch e := s.d[s.i+1]; e {
				case '$', '"', '\\', '`':
					s.lit.WriteByte(e)
				case '\n':
					// spliced line
				default:
					s.lit.WriteByte('\\')
					s.lit.WriteByte(e)
				}
				s.i += 2
				continue
			}
			s.lit.WriteByte(c)
			s.i++
		case '$':
			if err := s.subst(); err != nil {
				return err
			}
		default:
			s.lit.WriteByte(c)
			s.i++
		}
	}
	return nil
}

// subst scans one $ substitution; a $ opening neither a name nor a
// brace is literal text.
func (s *wordScan) subst() error {
	start := s.i
	s.i++
	if s.i < len(s.d) && s.d[s.i] == '{' {
		inner, end, ok := braceSpan(s.d, s.i+1)
		if !ok {
			return shapeErr(ErrUnterminatedSubstitution, s.d[start:], s.at(start))
		}
		s.flush()
		s.out = append(s.out, Subst(inner))
		s.i = end + 1
		return nil
	}
	j := s.i
	for j < len(s.d) && nameByte(s.d[j], j > s.i) {
		j++
	}
	if j == s.i {
		s.lit.WriteByte('$')
		return nil
	}
	s.flush()
	s.out = append(s.out, Subst(s.d[s.i:j]))
	s.i = j
	return nil
}

func (s *wordScan) flush() {
	if s.lit.Len() > 0 {
		s.out = append(s.out, Lit(s.lit.String()))
		s.lit.Reset()
	}
}

func (s *wordScan) at(off int) *token.Pos {
	if s.pos == nil {
		return nil
	}
	return s.pos.Add(off)
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

func nameByte(c byte, rest bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return rest
	}
	return false
}
