package edit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aosc-dev/go-apml/emit"
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

func TestGetScalar(t *testing.T) {
	doc := mustParse(t, `PKGNAME=zlib
PKGVER="1.3.1"
PKGDEP=(glibc)
PKGDES=first
PKGDES="A massively spiffy yet delicately unobtrusive compression library"
EXTRA+=more
`)
	for _, tc := range []struct {
		key  string
		want string
		ok   bool
	}{
		{"PKGNAME", "zlib", true},
		{"PKGVER", "1.3.1", true},
		{"PKGDES", "A massively spiffy yet delicately unobtrusive compression library", true},
		{"PKGDEP", "", false}, // array
		{"EXTRA", "", false},  // +=
		{"PKGSEC", "", false}, // absent
	} {
		got, ok := GetScalar(doc, tc.key)
		if got != tc.want || ok != tc.ok {
			t.Errorf("GetScalar(%s) = %q, %v, want %q, %v", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGetArray(t *testing.T) {
	doc := mustParse(t, "PKGDEP=(glibc gcc-runtime)\nPKGNAME=zlib\n")

	scs, ok := GetArray(doc, "PKGDEP")
	if !ok {
		t.Fatal("GetArray(PKGDEP) not ok")
	}
	var got []string
	for _, sc := range scs {
		got = append(got, sc.Lit())
	}
	if diff := cmp.Diff([]string{"glibc", "gcc-runtime"}, got); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}

	if _, ok := GetArray(doc, "PKGNAME"); ok {
		t.Error("GetArray(PKGNAME) ok for a scalar value")
	}
	if _, ok := GetArray(doc, "PKGSEC"); ok {
		t.Error("GetArray(PKGSEC) ok for a missing key")
	}
}

// Rewriting one value must leave every other byte of the document
// untouched.
func TestSetScalarTouchesOnlyTheValue(t *testing.T) {
	src := `# spec for zlib
PKGVER=1.3.1
PKGREL=0   # bumped for the soname change

PKGDEP=(glibc)
`
	doc := mustParse(t, src)
	SetScalar(doc, "PKGREL", "1")

	want := strings.Replace(src, "PKGREL=0", "PKGREL=1", 1)
	if got := emit.MustString(doc); got != want {
		t.Errorf("emit = %q, want %q", got, want)
	}
}

func TestSetScalarKeepsQuoteStyle(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		key  string
		text string
		want string
	}{
		{"bare", "PKGREL=0\n", "PKGREL", "1", "PKGREL=1\n"},
		{"double", "PKGVER=\"1.2\"\n", "PKGVER", "1.3", "PKGVER=\"1.3\"\n"},
		{"single", "A='x'\n", "A", "y", "A='y'\n"},
		{"bare needs quoting", "A=x\n", "A", "a b", "A=\"a b\"\n"},
		{"single cannot hold quote", "A='x'\n", "A", "it's", "A=\"it's\"\n"},
		{"array becomes scalar", "PKGDEP=(glibc)\n", "PKGDEP", "glibc", "PKGDEP=glibc\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.src)
			SetScalar(doc, tc.key, tc.text)
			if got := emit.MustString(doc); got != tc.want {
				t.Errorf("emit = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSetScalarAppendsMissingKey(t *testing.T) {
	doc := mustParse(t, "PKGNAME=zlib")
	SetScalar(doc, "PKGSEC", "libs")

	want := "PKGNAME=zlib\nPKGSEC=\"libs\"\n"
	if got := emit.MustString(doc); got != want {
		t.Errorf("emit = %q, want %q", got, want)
	}
}

func TestAppendArrayElement(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		key  string
		text string
		want string
	}{
		{
			"existing array",
			"PKGDEP=(glibc)\n",
			"PKGDEP", "zlib",
			"PKGDEP=(glibc zlib)\n",
		},
		{
			"quoted element",
			"CHKSUMS=(\"SKIP\")\n",
			"CHKSUMS", "sha256::yes indeed",
			"CHKSUMS=(\"SKIP\" \"sha256::yes indeed\")\n",
		},
		{
			"multiline array keeps closing newline",
			"SRCS=(\n\ta\n)\n",
			"SRCS", "b",
			"SRCS=(\n\ta b\n)\n",
		},
		{
			"missing key",
			"PKGNAME=zlib\n",
			"PKGDEP", "glibc",
			"PKGNAME=zlib\nPKGDEP=(glibc)\n",
		},
		{
			"empty array",
			"PKGDEP=()\n",
			"PKGDEP", "glibc",
			"PKGDEP=(glibc)\n",
		},
		{
			"scalar converts",
			"PKGDEP=glibc\n",
			"PKGDEP", "zlib",
			"PKGDEP=(glibc zlib)\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.src)
			AppendArrayElement(doc, tc.key, tc.text)
			if got := emit.MustString(doc); got != tc.want {
				t.Errorf("emit = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRemoveEntry(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		key  string
		want string
		ok   bool
	}{
		{
			"plain",
			"A=1\nB=2\n",
			"A",
			"B=2\n",
			true,
		},
		{
			"all assignments",
			"A=1\nB=2\nA=3\n",
			"A",
			"B=2\n",
			true,
		},
		{
			"missing",
			"A=1\n",
			"B",
			"A=1\n",
			false,
		},
		{
			"orphaned comment goes with it",
			"A=1\n# only needed on retro\nPKGBREAK=x\n",
			"PKGBREAK",
			"A=1\n",
			true,
		},
		{
			"comment before a survivor stays",
			"# deps\nPKGBREAK=x\nPKGDEP=(glibc)\n",
			"PKGBREAK",
			"# deps\nPKGDEP=(glibc)\n",
			true,
		},
		{
			"blank line stops the comment sweep",
			"# header\n\n# gone\nA=1\n",
			"A",
			"# header\n\n",
			true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.src)
			ok := RemoveEntry(doc, tc.key)
			if ok != tc.ok {
				t.Fatalf("RemoveEntry = %v, want %v", ok, tc.ok)
			}
			if got := emit.MustString(doc); got != tc.want {
				t.Errorf("emit = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInsertScalarAfter(t *testing.T) {
	doc := mustParse(t, "PKGNAME=zlib\nPKGDEP=(glibc)\n")
	InsertScalarAfter(doc, "PKGNAME", "PKGVER", "1.3.1")

	want := "PKGNAME=zlib\nPKGVER=\"1.3.1\"\nPKGDEP=(glibc)\n"
	if got := emit.MustString(doc); got != want {
		t.Errorf("emit = %q, want %q", got, want)
	}
}

func TestInsertScalarAfterMissingAnchor(t *testing.T) {
	doc := mustParse(t, "PKGNAME=zlib")
	InsertScalarAfter(doc, "PKGEPOCH", "PKGVER", "1.3.1")

	want := "PKGNAME=zlib\nPKGVER=\"1.3.1\"\n"
	if got := emit.MustString(doc); got != want {
		t.Errorf("emit = %q, want %q", got, want)
	}
}

func TestEnsureEndNewline(t *testing.T) {
	doc := mustParse(t, "A=1")
	EnsureEndNewline(doc)
	if got := emit.MustString(doc); got != "A=1\n" {
		t.Errorf("emit = %q, want %q", got, "A=1\n")
	}

	EnsureEndNewline(doc) // idempotent
	if got := emit.MustString(doc); got != "A=1\n" {
		t.Errorf("emit after second call = %q, want %q", got, "A=1\n")
	}

	empty := &lst.Document{}
	EnsureEndNewline(empty)
	if got := emit.MustString(empty); got != "" {
		t.Errorf("empty doc emits %q, want empty", got)
	}
}
