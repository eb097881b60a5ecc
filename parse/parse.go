package parse

import (
	"sort"
	"strings"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/lst"
	"github.com/aosc-dev/go-apml/token"
)

// Parse parses d and fails on the first problem found.  It is the
// tolerant parse plus an error check, nothing more, so both modes
// accept exactly the same shapes.
func Parse(d []byte, opts ...ParseOption) (*lst.Document, error) {
	doc, diags := ParseTolerant(d, opts...)
	if len(diags) > 0 {
		return nil, diags[0]
	}
	return doc, nil
}

// ParseTolerant parses d, shaping what it can.  A logical line it
// cannot shape is preserved verbatim as an opaque entry and recorded as
// a diagnostic, so the result always covers all of d and emitting it
// reproduces d byte for byte.
func ParseTolerant(d []byte, opts ...ParseOption) (*lst.Document, []*Diagnostic) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, lexErrs := token.Tokenize(nil, d)
	p := &parser{d: d, toks: toks, opts: pOpts}
	for _, le := range lexErrs {
		p.diag(le.Err, le.Pos)
	}
	doc := &lst.Document{}
	for p.toks[p.i].Type != token.TEOF {
		doc.Entries = append(doc.Entries, p.entry())
	}
	sort.SliceStable(p.diags, func(i, j int) bool {
		return p.diags[i].Pos.I < p.diags[j].Pos.I
	})
	if debug.Parse() {
		debug.Logf("parse: %d entries, %d diagnostics\n", len(doc.Entries), len(p.diags))
	}
	return doc, p.diags
}

type parser struct {
	d     []byte
	toks  []token.Token
	i     int
	opts  *parseOpts
	diags []*Diagnostic
}

func (p *parser) diag(err error, pos *token.Pos) {
	p.diags = append(p.diags, &Diagnostic{Err: err, Pos: pos, Path: p.opts.filename})
}

func (p *parser) span(i, j int) string {
	var b strings.Builder
	for k := i; k < j; k++ {
		b.Write(p.toks[k].Bytes)
	}
	return b.String()
}

func (p *parser) entry() *lst.Entry {
	start := p.i
	lead := p.lead()
	t := &p.toks[p.i]
	switch t.Type {
	case token.TNewline:
		p.i++
		return &lst.Entry{Kind: lst.EntryBlank, Lead: lead, NL: "\n", Pos: p.toks[start].Pos}
	case token.TEOF:
		// whitespace at end of input with no final newline
		return &lst.Entry{Kind: lst.EntryBlank, Lead: lead, Pos: p.toks[start].Pos}
	case token.TComment:
		e := &lst.Entry{Kind: lst.EntryComment, Lead: lead, Text: string(t.Bytes), Pos: t.Pos}
		p.i++
		if p.toks[p.i].Type == token.TNewline {
			e.NL = "\n"
			p.i++
		}
		return e
	case token.TIdent:
		return p.assignment(start)
	case token.TErr:
		return p.opaque(start, nil, nil)
	default:
		return p.opaque(start, ErrMalformedAssignment, t.Pos)
	}
}

func (p *parser) lead() string {
	start := p.i
	for p.toks[p.i].Type == token.TSpace || p.toks[p.i].Type == token.TContinuation {
		p.i++
	}
	return p.span(start, p.i)
}

func (p *parser) assignment(start int) *lst.Entry {
	lead := p.span(start, p.i)
	keyTok := &p.toks[p.i]
	p.i++

	var op lst.Op
	switch p.toks[p.i].Type {
	case token.TAssign:
		op = lst.OpAssign
	case token.TAppend:
		op = lst.OpAppend
	default:
		return p.opaque(start, ErrMalformedAssignment, p.toks[p.i].Pos)
	}
	opTok := &p.toks[p.i]
	p.i++

	var val lst.Value
	if p.toks[p.i].Type == token.TLParen {
		arr, ok := p.array()
		if !ok {
			return p.opaque(start, nil, nil)
		}
		val = arr
	} else {
		val = p.valueRun(opTok.Pos.Add(len(opTok.Bytes)))
	}

	trailStart := p.i
	for {
		t := p.toks[p.i].Type
		if t != token.TSpace && t != token.TComment && t != token.TContinuation {
			break
		}
		p.i++
	}
	trail := p.span(trailStart, p.i)

	var nl string
	switch p.toks[p.i].Type {
	case token.TNewline:
		nl = "\n"
		p.i++
	case token.TEOF:
	case token.TErr:
		return p.opaque(start, nil, nil)
	default:
		return p.opaque(start, ErrStrayToken, p.toks[p.i].Pos)
	}

	return &lst.Entry{
		Kind:  lst.EntryAssign,
		Lead:  lead,
		Key:   string(keyTok.Bytes),
		Op:    op,
		Val:   val,
		Trail: trail,
		NL:    nl,
		Pos:   keyTok.Pos,
	}
}

func isValueTok(t token.TokenType) bool {
	return t == token.TWord || t == token.TSingle || t == token.TDouble
}

// valueRun consumes a maximal run of adjacent value tokens, plus any
// line continuation splicing two of them, and returns the covered
// scalar.  The run may be empty, as in `KEY=`.
func (p *parser) valueRun(pos *token.Pos) *lst.Scalar {
	start := p.i
	count, splices := 0, 0
	var only token.TokenType
	for {
		t := p.toks[p.i].Type
		if isValueTok(t) {
			only = t
			count++
			p.i++
			continue
		}
		if t == token.TContinuation && isValueTok(p.toks[p.i+1].Type) {
			splices++
			p.i++
			continue
		}
		break
	}
	quote := lst.QuoteNone
	if count == 1 && splices == 0 {
		switch only {
		case token.TSingle:
			quote = lst.QuoteSingle
		case token.TDouble:
			quote = lst.QuoteDouble
		}
	}
	return &lst.Scalar{Raw: p.span(start, p.i), Quote: quote, Pos: pos}
}

func (p *parser) array() (*lst.Array, bool) {
	lp := &p.toks[p.i]
	arr := &lst.Array{Pos: lp.Pos}
	p.i++
	for {
		t := &p.toks[p.i]
		switch t.Type {
		case token.TRParen:
			p.i++
			return arr, true
		case token.TSpace, token.TContinuation:
			arr.Items = append(arr.Items, &lst.ArrayItem{Kind: lst.ItemSpace, Text: string(t.Bytes)})
			p.i++
		case token.TNewline:
			arr.Items = append(arr.Items, &lst.ArrayItem{Kind: lst.ItemNewline, Text: string(t.Bytes)})
			p.i++
		case token.TComment:
			arr.Items = append(arr.Items, &lst.ArrayItem{Kind: lst.ItemComment, Text: string(t.Bytes)})
			p.i++
		case token.TWord, token.TSingle, token.TDouble:
			arr.Items = append(arr.Items, &lst.ArrayItem{Kind: lst.ItemScalar, Sc: p.valueRun(t.Pos)})
		case token.TEOF:
			p.diag(ErrUnterminatedArray, lp.Pos)
			return nil, false
		default: // TErr; its lexer diagnostic already points at the cause
			return nil, false
		}
	}
}

// opaque consumes the rest of the current logical line and keeps it
// verbatim.  err is nil when a lexer diagnostic already covers the
// problem.
func (p *parser) opaque(start int, err error, pos *token.Pos) *lst.Entry {
	if err != nil {
		p.diag(err, pos)
	}
	for p.toks[p.i].Type != token.TNewline && p.toks[p.i].Type != token.TEOF {
		p.i++
	}
	from := p.toks[start].Pos.I
	to := p.toks[p.i].Pos.I
	e := &lst.Entry{
		Kind: lst.EntryOpaque,
		Text: string(p.d[from:to]),
		Pos:  p.toks[start].Pos,
	}
	if p.toks[p.i].Type == token.TNewline {
		e.NL = "\n"
		p.i++
	}
	return e
}
