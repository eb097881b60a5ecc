package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/parse"
	"github.com/aosc-dev/go-apml/token"
)

func plainColors(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestRender(t *testing.T) {
	m := New(Error, "malformed assignment").
		Note("the line was kept verbatim").
		Snippet(Snippet{Path: "spec", Line: 2, Text: "=broken"})

	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		t.Fatal(err)
	}
	want := "error: malformed assignment\n" +
		"       note: the line was kept verbatim\n" +
		"       --> spec:2: =broken\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLabels(t *testing.T) {
	for sev, want := range map[Severity]string{
		Info:    "info:  x\n",
		Warning: "warn:  x\n",
		Error:   "error: x\n",
	} {
		var buf bytes.Buffer
		if err := Render(&buf, New(sev, "x")); err != nil {
			t.Fatal(err)
		}
		if buf.String() != want {
			t.Errorf("%s: rendered %q, want %q", sev, buf.String(), want)
		}
	}
}

func TestSnippetAt(t *testing.T) {
	src := []byte("PKGNAME=zlib\n=broken\nPKGVER=1\n")
	pd := token.NewPosDoc(src)

	sn := SnippetAt("spec", src, pd.Pos(13))
	want := Snippet{Path: "spec", Line: 2, Text: "=broken"}
	if sn != want {
		t.Errorf("SnippetAt = %+v, want %+v", sn, want)
	}

	// Position at end of input, no trailing newline.
	one := []byte("A=1")
	sn = SnippetAt("f", one, token.NewPosDoc(one).Pos(3))
	if sn != (Snippet{Path: "f", Line: 1, Text: "A=1"}) {
		t.Errorf("SnippetAt at EOF = %+v", sn)
	}

	if sn = SnippetAt("f", src, nil); sn != (Snippet{Path: "f"}) {
		t.Errorf("SnippetAt with nil pos = %+v", sn)
	}
}

func TestFromParse(t *testing.T) {
	src := []byte("PKGNAME=zlib\n=broken\nPKGVER=1\n")
	_, diags := parse.ParseTolerant(src)
	if len(diags) == 0 {
		t.Fatal("no diagnostics for a broken line")
	}

	msgs := FromParse("spec", src, diags)
	if len(msgs) != len(diags) {
		t.Fatalf("len(msgs) = %d, want %d", len(msgs), len(diags))
	}
	m := msgs[0]
	if m.Severity != Error {
		t.Errorf("severity = %s", m.Severity)
	}
	if m.Summary != "malformed assignment" {
		t.Errorf("summary = %q", m.Summary)
	}
	if len(m.Snippets) != 1 || m.Snippets[0] != (Snippet{Path: "spec", Line: 2, Text: "=broken"}) {
		t.Errorf("snippets = %+v", m.Snippets)
	}
}

func TestFromError(t *testing.T) {
	src := []byte("PKGNAME=zlib\nPKGDES=\"${MISSING}\"\n")
	doc, err := parse.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	_, err = eval.Eval(doc)
	if err == nil {
		t.Fatal("no error for an unbound variable")
	}

	m := FromError("spec", src, err)
	if m.Severity != Error {
		t.Errorf("severity = %s", m.Severity)
	}
	if m.Summary != `undefined variable "MISSING"` {
		t.Errorf("summary = %q", m.Summary)
	}
	if len(m.Snippets) != 1 {
		t.Fatalf("snippets = %+v", m.Snippets)
	}
	if sn := m.Snippets[0]; sn.Path != "spec" || sn.Line != 2 {
		t.Errorf("snippet = %+v, want spec:2", sn)
	}

	// A strict parse error is a diagnostic and keeps its position.
	bad := []byte("=broken\n")
	_, err = parse.Parse(bad)
	m = FromError("spec", bad, err)
	if m.Summary != "malformed assignment" {
		t.Errorf("summary = %q", m.Summary)
	}
	if len(m.Snippets) != 1 || m.Snippets[0].Line != 1 {
		t.Errorf("snippets = %+v", m.Snippets)
	}

	// Errors without a position render as a bare summary.
	m = FromError("spec", nil, errors.New("boom"))
	if m.Summary != "boom" || len(m.Snippets) != 0 {
		t.Errorf("message = %+v", m)
	}

	if FromError("spec", nil, nil) != nil {
		t.Error("FromError(nil) != nil")
	}
}

func TestDiff(t *testing.T) {
	plainColors(t)

	got := Diff("spec", "PKGVER=1.0\nPKGREL=0\n", "PKGVER=1.1\nPKGREL=0\n")
	want := "--- a/spec\n" +
		"+++ b/spec\n" +
		"-PKGVER=1.0\n" +
		"+PKGVER=1.1\n" +
		" PKGREL=0\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffInsertOnly(t *testing.T) {
	plainColors(t)

	got := Diff("f", "A=1\n", "A=1\nB=2\n")
	want := "--- a/f\n" +
		"+++ b/f\n" +
		" A=1\n" +
		"+B=2\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffEqualInputs(t *testing.T) {
	if d := Diff("f", "same\n", "same\n"); d != "" {
		t.Errorf("Diff of equal inputs = %q", d)
	}
}
