package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aosc-dev/go-apml/lst"
	"github.com/aosc-dev/go-apml/parse"
)

func mustParse(t *testing.T, src string) *lst.Document {
	t.Helper()
	doc, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return doc
}

func TestEvalScalars(t *testing.T) {
	doc := mustParse(t, `PKGNAME=zlib
PKGVER=1.3.1
PKGDES="Library for ${PKGNAME} ${PKGVER}"
`)
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := Env{
		"PKGNAME": Scalar("zlib"),
		"PKGVER":  Scalar("1.3.1"),
		"PKGDES":  Scalar("Library for zlib 1.3.1"),
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalLastWins(t *testing.T) {
	doc := mustParse(t, "A=1\nA=2\nA=3\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["A"].String(); got != "3" {
		t.Errorf("A = %q, want %q", got, "3")
	}
}

func TestEvalSelfReference(t *testing.T) {
	doc := mustParse(t, "A=1\nA=\"${A}2\"\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["A"].String(); got != "12" {
		t.Errorf("A = %q, want %q", got, "12")
	}
}

func TestEvalAppendScalar(t *testing.T) {
	doc := mustParse(t, "PKGDEP=\"glib\"\nPKGDEP+=\" zlib\"\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["PKGDEP"].String(); got != "glib zlib" {
		t.Errorf("PKGDEP = %q, want %q", got, "glib zlib")
	}
}

func TestEvalAppendArray(t *testing.T) {
	doc := mustParse(t, "SRCS=(a b)\nSRCS+=(c)\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := Array("a", "b", "c")
	if diff := cmp.Diff(want, env["SRCS"]); diff != "" {
		t.Errorf("SRCS mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalAppendMixesKinds(t *testing.T) {
	// NAME+=(V) reads the prior binding as "${NAME[@]}", so a scalar
	// prior becomes the first element; NAME+="V" reads it as ${NAME},
	// so an array prior joins.
	doc := mustParse(t, "A=x\nA+=(y)\nB=(1 2)\nB+=3\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Array("x", "y"), env["A"]); diff != "" {
		t.Errorf("A mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Scalar("1 23"), env["B"]); diff != "" {
		t.Errorf("B mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalAppendUnset(t *testing.T) {
	for _, src := range []string{"A+=x\n", "A+=(x)\n"} {
		doc := mustParse(t, src)
		_, err := Eval(doc)
		if !errors.Is(err, ErrUndefinedVariable) {
			t.Errorf("Eval(%q) err = %v, want ErrUndefinedVariable", src, err)
		}
	}
}

func TestEvalUndefined(t *testing.T) {
	doc := mustParse(t, "A=${NOPE}\n")
	_, err := Eval(doc)
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("err = %v, want ErrUndefinedVariable", err)
	}
	var ue *UndefinedVariableErr
	if !errors.As(err, &ue) {
		t.Fatalf("err %T does not unwrap to UndefinedVariableErr", err)
	}
	if ue.Name != "NOPE" {
		t.Errorf("Name = %q, want %q", ue.Name, "NOPE")
	}
	if ue.Pos == nil || ue.Pos.I != 2 {
		t.Errorf("Pos = %v, want offset 2", ue.Pos)
	}
}

func TestEvalNoPartialResult(t *testing.T) {
	doc := mustParse(t, "A=1\nB=${NOPE}\nC=2\n")
	env, err := Eval(doc)
	if err == nil {
		t.Fatal("expected error")
	}
	if env != nil {
		t.Errorf("env = %v, want nil on error", env)
	}
}

func TestEvalSingleQuoteLiteral(t *testing.T) {
	doc := mustParse(t, "A='${NOPE} $B'\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["A"].String(); got != "${NOPE} $B" {
		t.Errorf("A = %q, want the text untouched", got)
	}
}

func TestEvalDollarLiterals(t *testing.T) {
	// $ followed by anything that cannot start a name stays literal,
	// so $1 or $(cmd) in a value does not read as a substitution.
	doc := mustParse(t, "A=\"$1 $(pwd) $\"\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["A"].String(); got != "$1 $(pwd) $" {
		t.Errorf("A = %q, want %q", got, "$1 $(pwd) $")
	}
}

func TestEvalArray(t *testing.T) {
	doc := mustParse(t, "SRCS=(one 'two words' \"three\")\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := Array("one", "two words", "three")
	if diff := cmp.Diff(want, env["SRCS"]); diff != "" {
		t.Errorf("SRCS mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalArraySplice(t *testing.T) {
	doc := mustParse(t, `A=(1 2)
B=("${A[@]}" 3)
C=("${A[*]}")
D=("x ${A[@]}")
`)
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		name string
		want Value
	}{
		{"B", Array("1", "2", "3")},
		{"C", Array("1 2")},
		{"D", Array("x 1 2")},
	} {
		if diff := cmp.Diff(c.want, env[c.name]); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestEvalArrayInScalarPosition(t *testing.T) {
	doc := mustParse(t, "A=(1 2 3)\nB=\"${A}\"\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["B"].String(); got != "1 2 3" {
		t.Errorf("B = %q, want %q", got, "1 2 3")
	}
}

func TestEvalWithEnv(t *testing.T) {
	doc := mustParse(t, "PKGDES=\"tools for ${PKGNAME}\"\n")
	env, err := Eval(doc, WithEnv(Env{"PKGNAME": Scalar("zlib")}))
	if err != nil {
		t.Fatal(err)
	}
	if got := env["PKGDES"].String(); got != "tools for zlib" {
		t.Errorf("PKGDES = %q, want %q", got, "tools for zlib")
	}
	if got := env["PKGNAME"].String(); got != "zlib" {
		t.Errorf("PKGNAME = %q, want the seeded binding kept", got)
	}
}

func TestEvalSkipsUnshapedLines(t *testing.T) {
	src := "A=1\n!!!\nB=${A}\n"
	doc, diags := parse.ParseTolerant([]byte(src))
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for the unshaped line")
	}
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["B"].String(); got != "1" {
		t.Errorf("B = %q, want %q", got, "1")
	}
}

func TestEvalEmptyValue(t *testing.T) {
	doc := mustParse(t, "A=\nB=\"\"\n")
	env, err := Eval(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"A", "B"} {
		if diff := cmp.Diff(Scalar(""), env[name]); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestEnvNames(t *testing.T) {
	env := Env{"B": Scalar("2"), "A": Scalar("1"), "C": Array()}
	want := []string{"A", "B", "C"}
	if diff := cmp.Diff(want, env.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestValueString(t *testing.T) {
	if got := Array("a", "b").String(); got != "a b" {
		t.Errorf("array String() = %q, want %q", got, "a b")
	}
	if got := Scalar("x").String(); got != "x" {
		t.Errorf("scalar String() = %q, want %q", got, "x")
	}
	if !Array().Empty() || !Scalar("").Empty() || Scalar("x").Empty() {
		t.Error("Empty() misreports")
	}
}
