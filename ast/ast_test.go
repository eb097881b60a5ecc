package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/eval"
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

func mustShape(t *testing.T, src string) *AST {
	t.Helper()
	a, err := FromDocument(mustParse(t, src))
	if err != nil {
		t.Fatalf("FromDocument(%q): %v", src, err)
	}
	return a
}

func TestFromDocumentNodes(t *testing.T) {
	a := mustShape(t, "# header\nPKGNAME=zlib\n\nPKGDEP=(glibc)\n")
	if len(a.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3 (blank dropped)", len(a.Nodes))
	}
	if c, ok := a.Nodes[0].(*Comment); !ok || c.Text != "# header" {
		t.Errorf("node 0 = %#v", a.Nodes[0])
	}
	if v, ok := a.Nodes[1].(*Assign); !ok || v.Name != "PKGNAME" {
		t.Errorf("node 1 = %#v", a.Nodes[1])
	}
	if v, ok := a.Nodes[2].(*Assign); !ok {
		t.Errorf("node 2 = %#v", a.Nodes[2])
	} else if _, ok := v.Val.(Array); !ok {
		t.Errorf("node 2 value = %#v, want Array", v.Val)
	}
}

func TestWordScanning(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want Text
	}{
		{"A=bare\n", Text{Lit("bare")}},
		{"A=$PKGVER\n", Text{Subst("PKGVER")}},
		{"A=${PKGVER:-1}\n", Text{Subst("PKGVER:-1")}},
		{"A=pre${V}post\n", Text{Lit("pre"), Subst("V"), Lit("post")}},
		{"A='$literal'\n", Text{Lit("$literal")}},
		{"A=\"x ${V} y\"\n", Text{Lit("x "), Subst("V"), Lit(" y")}},
		{"A=\\$esc\n", Text{Lit("$esc")}},
		{"A=$1x\n", Text{Lit("$1x")}},
		{"A=a'b'\"c\"\n", Text{Lit("abc")}},
		{"A=1\\\n2\n", Text{Lit("12")}},
		{"A=${O:-${I}}\n", Text{Subst("O:-${I}")}},
		{"A=\n", nil},
	} {
		a := mustShape(t, tc.src)
		got := a.Nodes[0].(*Assign).Val.(Text)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("words of %q mismatch (-want +got):\n%s", tc.src, diff)
		}
	}
}

func TestAppendDesugar(t *testing.T) {
	a := mustShape(t, "V=1\nV+=2\nARR=(a)\nARR+=(b)\n")

	scalar := a.Nodes[1].(*Assign)
	if diff := cmp.Diff(Text{Subst("V"), Lit("2")}, scalar.Val.(Text)); diff != "" {
		t.Errorf("scalar append mismatch (-want +got):\n%s", diff)
	}

	arr := a.Nodes[3].(*Assign)
	want := Array{Text{Subst("ARR[@]")}, Text{Lit("b")}}
	if diff := cmp.Diff(want, arr.Val.(Array)); diff != "" {
		t.Errorf("array append mismatch (-want +got):\n%s", diff)
	}
}

func TestOpaqueLineFails(t *testing.T) {
	doc, _ := parse.ParseTolerant([]byte("A=1\n=bad line\n"))
	_, err := FromDocument(doc)
	if !errors.Is(err, ErrUnshapedLine) {
		t.Fatalf("err = %v, want ErrUnshapedLine", err)
	}
}

func TestUnterminatedSubstitutionFails(t *testing.T) {
	_, err := FromDocument(mustParse(t, "A=${x\n"))
	if !errors.Is(err, ErrUnterminatedSubstitution) {
		t.Fatalf("err = %v, want ErrUnterminatedSubstitution", err)
	}
}

func TestLowerCanonical(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{"PKGNAME=zlib\n", "PKGNAME=\"zlib\"\n"},
		{"A='it $is'\n", "A=\"it \\$is\"\n"},
		{"B=\"x ${A} y\"\n", "B=\"x ${A} y\"\n"},
		{"C=$PKGVER\n", "C=\"${PKGVER}\"\n"},
		{"D=a\\ b\n", "D=\"a b\"\n"},
		{"E=1   # note\n", "E=\"1\" # note\n"},
		{"F+=x\n", "F=\"${F}x\"\n"},
		{"A=\n", "A=\"\"\n"},
		{"A=1\n\n\nB=2\n", "A=\"1\"\nB=\"2\"\n"},
		{"# c\nA=1\n", "# c\nA=\"1\"\n"},
		{"SRCS=(a\n\t'b c' # inner\n)\n", "SRCS=(\"a\" \"b c\")\n"},
		{"ARR+=(x)\n", "ARR=(\"${ARR[@]}\" \"x\")\n"},
		{"W=\"1 \\\n2\"\n", "W=\"1 2\"\n"},
	} {
		a := mustShape(t, tc.src)
		if got := emit.MustString(a.Document()); got != tc.want {
			t.Errorf("lower(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestLowerFixedPoint(t *testing.T) {
	srcs := []string{
		"PKGNAME=zlib\nPKGDES=\"Massively spiffy ${PKGNAME}\"\n",
		"A='q'\nB=$A\nC=(1 \"2 3\" ${A})\nC+=(4)\n",
		"E=\n# note\nF=\"\\$\\\"\\\\\"\n",
	}
	for _, src := range srcs {
		first := emit.MustString(mustShape(t, src).Document())
		second := emit.MustString(mustShape(t, first).Document())
		if first != second {
			t.Errorf("lowering %q is not a fixed point:\n first %q\nsecond %q", src, first, second)
		}
	}
}

func TestLowerPreservesEvaluation(t *testing.T) {
	src := `BASE=1.2
NAME=pkg
FULL="${NAME}-${BASE}"
FULL+=".tar"
ARR=(a "b c" ${BASE})
ARR+=(d)
JOIN="${ARR[*]}"
UP=${NAME^^}
`
	doc := mustParse(t, src)
	want, err := eval.Eval(doc)
	if err != nil {
		t.Fatal(err)
	}

	a, err := FromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	lowered := mustParse(t, emit.MustString(a.Document()))
	got, err := eval.Eval(lowered)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("evaluation changed by lowering (-orig +lowered):\n%s", diff)
	}
}
