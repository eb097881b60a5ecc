package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/aosc-dev/go-apml/eval"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"e", EnvFormat},
		{"env", EnvFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml) err = %v, want ErrBadFormat", err)
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if g != f {
			t.Errorf("round trip %v -> %s -> %v", f, d, g)
		}
	}
}

func TestMarshalEnv(t *testing.T) {
	env := eval.Env{
		"PKGNAME": eval.Scalar("zlib"),
		"PKGDEP":  eval.Array("glibc", "gcc-runtime"),
	}
	d, err := Marshal(env, EnvFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "PKGDEP=(glibc gcc-runtime)\nPKGNAME=zlib\n"
	if string(d) != want {
		t.Errorf("got %q, want %q", d, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	env := eval.Env{
		"A": eval.Scalar("x"),
		"B": eval.Array("1", "2"),
		"C": eval.Array(),
	}
	d, err := Marshal(env, JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"A": "x"`, `"B": [`, `"C": []`} {
		if !strings.Contains(string(d), want) {
			t.Errorf("JSON output %s missing %q", d, want)
		}
	}
}

func TestMarshalYAML(t *testing.T) {
	env := eval.Env{
		"A": eval.Scalar("x"),
		"B": eval.Array("1"),
	}
	d, err := Marshal(env, YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	out := string(d)
	if !strings.Contains(out, "A: x") {
		t.Errorf("YAML output %q missing scalar binding", out)
	}
	if !strings.Contains(out, "B:") || !strings.Contains(out, "- \"1\"") && !strings.Contains(out, "- 1") {
		t.Errorf("YAML output %q missing array binding", out)
	}
}
