package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/parse"
	"github.com/aosc-dev/go-apml/token"
)

type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	return map[Severity]string{
		Info:    "info",
		Warning: "warning",
		Error:   "error",
	}[s]
}

// prefix is the padded label a rendered message starts with.
func (s Severity) prefix() string {
	return map[Severity]string{
		Info:    "info:  ",
		Warning: "warn:  ",
		Error:   "error: ",
	}[s]
}

// Message is one leveled diagnostic with optional notes and source
// snippets.
type Message struct {
	Severity Severity
	Summary  string
	Notes    []string
	Snippets []Snippet
}

// New starts a message; notes and snippets chain on.
func New(sev Severity, summary string) *Message {
	return &Message{Severity: sev, Summary: summary}
}

// Note appends a note line and returns the message.
func (m *Message) Note(note string) *Message {
	m.Notes = append(m.Notes, note)
	return m
}

// Snippet appends a snippet and returns the message.
func (m *Message) Snippet(s Snippet) *Message {
	m.Snippets = append(m.Snippets, s)
	return m
}

// Snippet points at a place in a source file.  Line is 1-based and 0
// when unknown; Text is the physical line pointed at, "" when none.
type Snippet struct {
	Path string
	Line int
	Text string
}

// SnippetAt builds a snippet for a position inside src.  The line
// number counts the newlines before the position plus one, and the
// text is the physical line containing it.
func SnippetAt(path string, src []byte, pos *token.Pos) Snippet {
	if pos == nil {
		return Snippet{Path: path}
	}
	off := pos.I
	if off > len(src) {
		off = len(src)
	}
	line := bytes.Count(src[:off], []byte("\n")) + 1
	start := bytes.LastIndexByte(src[:off], '\n') + 1
	end := bytes.IndexByte(src[off:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += off
	}
	return Snippet{Path: path, Line: line, Text: string(src[start:end])}
}

// FromParse converts parse diagnostics into error messages, one per
// diagnostic, each carrying a snippet of the offending line.
func FromParse(path string, src []byte, diags []*parse.Diagnostic) []Message {
	var res []Message
	for _, d := range diags {
		res = append(res, Message{
			Severity: Error,
			Summary:  d.Err.Error(),
			Snippets: []Snippet{SnippetAt(path, src, d.Pos)},
		})
	}
	return res
}

// FromError converts err into a single error message.  Positioned
// error types from the parse, eval and token packages contribute a
// source snippet; any other error becomes a bare summary.  The summary
// repeats the error text without its embedded position; the snippet
// carries the position instead.
func FromError(path string, src []byte, err error) *Message {
	if err == nil {
		return nil
	}
	var (
		diag *parse.Diagnostic
		und  *eval.UndefinedVariableErr
		mal  *eval.MalformedSubstitutionErr
		lex  *token.TokenizeErr
	)
	switch {
	case errors.As(err, &diag):
		return New(Error, diag.Err.Error()).Snippet(SnippetAt(path, src, diag.Pos))
	case errors.As(err, &und):
		m := New(Error, fmt.Sprintf("%s %q", eval.ErrUndefinedVariable, und.Name))
		if und.Msg != "" {
			m.Note(und.Msg)
		}
		return m.Snippet(SnippetAt(path, src, und.Pos))
	case errors.As(err, &mal):
		return New(Error, fmt.Sprintf("%s: %s", eval.ErrMalformedSubstitution, mal.Reason)).
			Snippet(SnippetAt(path, src, mal.Pos))
	case errors.As(err, &lex):
		return New(Error, lex.Err.Error()).Snippet(SnippetAt(path, src, lex.Pos))
	}
	return New(Error, err.Error())
}

// Render writes msg to w, one summary line then an indented line per
// note and snippet.  Colors apply only when w is a terminal.
func Render(w io.Writer, m *Message) error {
	st := newStyles(isTerminal(w))
	label := st.label[m.Severity]
	if _, err := fmt.Fprintf(w, "%s%s\n", label.Sprint(m.Severity.prefix()), st.bold.Sprint(m.Summary)); err != nil {
		return err
	}
	for _, note := range m.Notes {
		if _, err := fmt.Fprintf(w, "       %s%s\n", st.dim.Sprint("note: "), st.dim.Sprint(note)); err != nil {
			return err
		}
	}
	for _, sn := range m.Snippets {
		line := "       " + st.arrow.Sprint("--> ") + sn.Path
		if sn.Line > 0 {
			line += fmt.Sprintf(":%d", sn.Line)
		}
		if sn.Text != "" {
			line += ": " + sn.Text
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

type styles struct {
	label map[Severity]*color.Color
	bold  *color.Color
	dim   *color.Color
	arrow *color.Color
}

func newStyles(terminal bool) *styles {
	st := &styles{
		label: map[Severity]*color.Color{
			Info:    color.New(color.FgCyan, color.Bold),
			Warning: color.New(color.FgYellow, color.Bold),
			Error:   color.New(color.FgRed, color.Bold),
		},
		bold:  color.New(color.Bold),
		dim:   color.New(color.Faint),
		arrow: color.New(color.FgBlue),
	}
	if !terminal {
		for _, c := range st.label {
			c.DisableColor()
		}
		st.bold.DisableColor()
		st.dim.DisableColor()
		st.arrow.DisableColor()
	}
	return st
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
