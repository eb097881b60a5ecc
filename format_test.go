package apml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aosc-dev/go-apml/ast"
)

func TestFormatCanonical(t *testing.T) {
	src := "B=38\n" +
		"A='it $is'   # note\n" +
		"C=$PKGVER\n" +
		"ARR+=(x 'y z')\n" +
		"\n" +
		"# standalone\n"
	want := "B=\"38\"\n" +
		"A=\"it \\$is\" # note\n" +
		"C=\"${PKGVER}\"\n" +
		"ARR=(\"${ARR[@]}\" \"x\" \"y z\")\n" +
		"# standalone\n"

	got, err := Format([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFixedPoint(t *testing.T) {
	src := []byte("A=1\nB=\"${A} x\"\nC=(a b ${A})\n")
	once, err := Format(src)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Format(once)
	if err != nil {
		t.Fatal(err)
	}
	if string(once) != string(twice) {
		t.Errorf("not a fixed point:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestFormatRejects(t *testing.T) {
	if _, err := Format([]byte("=bad\n")); err == nil {
		t.Error("no error for a malformed line")
	}
	_, err := Format([]byte("A=${x\n"))
	if !errors.Is(err, ast.ErrUnterminatedSubstitution) {
		t.Errorf("error = %v, want unterminated substitution", err)
	}
}
