package value

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStringArray(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want StringArray
	}{
		{"a b c", StringArray{"a", "b", "c"}},
		{"a b c\n  a   b", StringArray{"a", "b", "c", "a", "b"}},
		{"  glibc\tgcc-runtime  ", StringArray{"glibc", "gcc-runtime"}},
	} {
		got := ParseStringArray(tc.src)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseStringArray(%q) mismatch (-want +got):\n%s", tc.src, diff)
		}
	}
	for _, src := range []string{"", "   ", "\n\t"} {
		if got := ParseStringArray(src); len(got) != 0 {
			t.Errorf("ParseStringArray(%q) = %v, want no words", src, got)
		}
	}
}

func TestStringArrayString(t *testing.T) {
	a := StringArray{"glibc", "gcc-runtime", "zlib"}
	if got := a.String(); got != "glibc gcc-runtime zlib" {
		t.Errorf("String() = %q", got)
	}
}

func TestStringArrayWrapShort(t *testing.T) {
	a := StringArray{"a", "b"}
	if got := a.Wrap(WrapWidth); got != `"a b"` {
		t.Errorf("Wrap = %q, want %q", got, `"a b"`)
	}
}

func TestStringArrayWrapLong(t *testing.T) {
	long := strings.Repeat("1234567890", 5) + "12345" // 55 columns

	a := StringArray{long}
	if got := a.Wrap(WrapWidth); got != `"`+long+`"` {
		t.Errorf("Wrap = %q, want %q", got, `"`+long+`"`)
	}

	a = StringArray{long, long, "1", long}
	want := `"` + long + " \\\n\t" + long + " 1 \\\n\t" + long + `"`
	if got := a.Wrap(WrapWidth); got != want {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
}

func TestStringArrayWrapEscapes(t *testing.T) {
	a := StringArray{`pre$var`, `say"hi"`}
	want := `"pre\$var say\"hi\""`
	if got := a.Wrap(WrapWidth); got != want {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
}

func TestStringArrayWrapRoundTrips(t *testing.T) {
	long := strings.Repeat("x", 60)
	a := StringArray{long, long, "short", long}
	wrapped := a.Wrap(WrapWidth)

	// Strip the quotes and the continuations the way evaluation would.
	body := strings.TrimSuffix(strings.TrimPrefix(wrapped, `"`), `"`)
	body = strings.ReplaceAll(body, "\\\n", "")
	if diff := cmp.Diff([]string(a), []string(ParseStringArray(body))); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
