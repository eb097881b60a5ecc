package apmlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testSpec = `PKGNAME=zlib
PKGVER=1.3.1
PKGREL=0
PKGSEC=libs
PKGDEP="glibc gcc-runtime"
PKGDES="Library implementing the deflate compression method"

SRCS="git::commit=tags/v${PKGVER}::https://github.com/madler/zlib"
CHKSUMS="SKIP"
`

func TestLoadFields(t *testing.T) {
	f := Load("spec", []byte(testSpec))
	if len(f.Diagnostics()) != 0 {
		t.Fatalf("diagnostics: %v", f.Diagnostics())
	}

	name, err := f.Name()
	if err != nil {
		t.Fatal(err)
	}
	if name != "zlib" {
		t.Errorf("Name = %q", name)
	}

	rel, err := f.Release()
	if err != nil {
		t.Fatal(err)
	}
	if rel != 0 {
		t.Errorf("Release = %d", rel)
	}

	deps, err := f.Dependencies()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"glibc", "gcc-runtime"}, deps); diff != "" {
		t.Errorf("deps mismatch (-want +got):\n%s", diff)
	}

	if epoch, err := f.Epoch(); err != nil || epoch != 0 {
		t.Errorf("Epoch = %d, %v", epoch, err)
	}
}

func TestSources(t *testing.T) {
	f := Load("spec", []byte(testSpec))
	srcs, err := f.Sources()
	if err != nil {
		t.Fatal(err)
	}
	if len(srcs) != 1 {
		t.Fatalf("len(srcs) = %d", len(srcs))
	}
	if srcs[0].Tag != "git" {
		t.Errorf("tag = %q", srcs[0].Tag)
	}
	if commit, ok := srcs[0].Property("commit"); !ok || commit != "tags/v1.3.1" {
		t.Errorf("commit = %q, %v", commit, ok)
	}
	if srcs[0].Argument != "https://github.com/madler/zlib" {
		t.Errorf("argument = %q", srcs[0].Argument)
	}
}

func TestEvalCacheInvalidation(t *testing.T) {
	f := Load("spec", []byte("PKGVER=1\n"))
	if v, err := f.Field("PKGVER"); err != nil || v != "1" {
		t.Fatalf("PKGVER = %q, %v", v, err)
	}
	f.SetScalar("PKGVER", "2")
	if v, err := f.Field("PKGVER"); err != nil || v != "2" {
		t.Errorf("PKGVER after set = %q, %v", v, err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	f := Load("spec", []byte(testSpec))
	if got := string(f.Bytes()); got != testSpec {
		t.Errorf("Bytes = %q, want the input back", got)
	}
}

func TestDirtyAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec")
	if err := os.WriteFile(path, []byte(testSpec), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Dirty() {
		t.Fatal("freshly opened file is dirty")
	}

	f.SetScalar("PKGREL", "1")
	if !f.Dirty() {
		t.Fatal("not dirty after SetScalar")
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	if f.Dirty() {
		t.Error("dirty after Save")
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	reread := Load(path, saved)
	if rel, err := reread.Release(); err != nil || rel != 1 {
		t.Errorf("Release after save = %d, %v", rel, err)
	}
}

func TestSaveCleanDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec")

	f := New(path)
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("clean Save created %s", path)
	}

	f.SetScalar("PKGNAME", "zlib")
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(src) != "PKGNAME=\"zlib\"\n" {
		t.Errorf("saved %q", src)
	}
}

func TestRemoveEntryDirtiesOnlyOnChange(t *testing.T) {
	f := Load("spec", []byte("A=1\n"))
	if f.RemoveEntry("B") {
		t.Error("RemoveEntry(B) reported true")
	}
	if f.Dirty() {
		t.Error("dirty after removing a missing key")
	}
	if !f.RemoveEntry("A") {
		t.Error("RemoveEntry(A) reported false")
	}
	if !f.Dirty() {
		t.Error("not dirty after removing A")
	}
}

func TestDiagnosticsSurvive(t *testing.T) {
	src := "PKGNAME=zlib\n=broken\nPKGVER=1\n"
	f := Load("spec", []byte(src))
	if len(f.Diagnostics()) == 0 {
		t.Fatal("no diagnostics for a broken line")
	}
	if got := string(f.Bytes()); got != src {
		t.Errorf("Bytes = %q, want the input back", got)
	}
	if v, err := f.Field("PKGVER"); err != nil || v != "1" {
		t.Errorf("PKGVER = %q, %v", v, err)
	}
}

func TestAppendArrayElementThroughFile(t *testing.T) {
	f := Load("spec", []byte("PKGDEP=(glibc)\n"))
	f.AppendArrayElement("PKGDEP", "zlib")
	if got := string(f.Bytes()); got != "PKGDEP=(glibc zlib)\n" {
		t.Errorf("Bytes = %q", got)
	}
	deps, err := f.Fields("PKGDEP")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"glibc", "zlib"}, deps); diff != "" {
		t.Errorf("deps mismatch (-want +got):\n%s", diff)
	}
}
