package emit

import (
	"strings"

	"github.com/aosc-dev/go-apml/lst"
)

// bareUnsafe lists the bytes that stop a bare word or would change its
// meaning: whitespace, comments, quotes, substitution and parens.
const bareUnsafe = " \t\r\n#'\"$\\`()"

// RenderScalar renders literal text as a scalar source span, quoting as
// the requested kind where the text allows it.  Bare is used only when
// every byte survives unquoted; single quoting only when the text has
// no single quote; everything else falls back to double quoting with
// the dialect's escapes.
func RenderScalar(text string, q lst.QuoteKind) string {
	switch q {
	case lst.QuoteSingle:
		if !strings.Contains(text, "'") {
			return "'" + text + "'"
		}
	case lst.QuoteNone:
		if text != "" && !strings.ContainsAny(text, bareUnsafe) {
			return text
		}
	}
	return renderDouble(text)
}

func renderDouble(text string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '$', '"', '\\', '`':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// NewScalar renders text and wraps it as a scalar node ready to place
// in an entry.
func NewScalar(text string, q lst.QuoteKind) *lst.Scalar {
	raw := RenderScalar(text, q)
	kind := lst.QuoteNone
	switch raw[0] {
	case '\'':
		kind = lst.QuoteSingle
	case '"':
		kind = lst.QuoteDouble
	}
	return &lst.Scalar{Raw: raw, Quote: kind}
}
