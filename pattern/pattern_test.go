package pattern

import (
	"errors"
	"regexp"
	"testing"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		glob   string
		greedy bool
		want   string
	}{
		{`*.so`, true, `.*\.so`},
		{`*.so`, false, `.*?\.so`},
		{`lib?`, true, `lib.`},
		{`[abc]`, true, `[abc]`},
		{`[!abc]`, true, `[^abc]`},
		{`[a-z0-9]`, true, `[a-z0-9]`},
		{`[]x]`, true, `[\]x]`},
		{`?(a|b)c`, true, `(?:a|b)?c`},
		{`?(a|b)c`, false, `(?:a|b)??c`},
		{`+(ab|c*)`, true, `(?:ab|c.*)+`},
		{`*(x)`, false, `(?:x)*?`},
		{`@(tar|zip)`, true, `(?:tar|zip)`},
		{`a\*b`, true, `a\*b`},
		{`a+b`, true, `a\+b`},
		{`[`, true, `\[`},
	}
	for _, c := range cases {
		got, err := Translate(c.glob, c.greedy)
		if err != nil {
			t.Errorf("Translate(%q): %v", c.glob, err)
			continue
		}
		if got != c.want {
			t.Errorf("Translate(%q, greedy=%v) = %q, want %q", c.glob, c.greedy, got, c.want)
		}
	}
}

func TestTranslateUnsupported(t *testing.T) {
	for _, glob := range []string{`!(x)`, `a!(x|y)b`, `*(a`} {
		if _, err := Translate(glob, true); !errors.Is(err, ErrUnsupportedGlob) {
			t.Errorf("Translate(%q) err = %v, want ErrUnsupportedGlob", glob, err)
		}
	}
}

func TestCompileMatches(t *testing.T) {
	cases := []struct {
		glob  string
		in    string
		match bool
	}{
		{`*.so`, `libz.so`, true},
		{`*.so`, `libz.so.1`, false},
		{`lib[0-9]`, `lib7`, true},
		{`lib[!0-9]`, `lib7`, false},
		{`@(spec|defines)`, `defines`, true},
		{`[[:digit:]]`, `5`, true},
	}
	for _, c := range cases {
		re, err := Compile(c.glob, true)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.glob, err)
		}
		anchored := regexp.MustCompile(`^(?:` + re.String() + `)$`)
		if got := anchored.MatchString(c.in); got != c.match {
			t.Errorf("glob %q on %q = %v, want %v", c.glob, c.in, got, c.match)
		}
	}
}

// Lazy and greedy star must differ in how much of a prefix they take,
// since that is what distinguishes ${V#*/} from ${V##*/}.
func TestShortestLongest(t *testing.T) {
	lazy, err := Compile(`*/`, false)
	if err != nil {
		t.Fatal(err)
	}
	greedy, err := Compile(`*/`, true)
	if err != nil {
		t.Fatal(err)
	}
	in := "usr/share/doc"
	if got := regexp.MustCompile(`^(?:` + lazy.String() + `)`).FindString(in); got != "usr/" {
		t.Errorf("lazy prefix = %q, want %q", got, "usr/")
	}
	if got := regexp.MustCompile(`^(?:` + greedy.String() + `)`).FindString(in); got != "usr/share/" {
		t.Errorf("greedy prefix = %q, want %q", got, "usr/share/")
	}
}
