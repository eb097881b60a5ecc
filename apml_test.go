package apml

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEval(t *testing.T) {
	env, err := Eval([]byte("PKGVER=1.3.1\nSRCS=\"https://x/zlib-${PKGVER}.tar\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := env["SRCS"].String(); got != "https://x/zlib-1.3.1.tar" {
		t.Errorf("SRCS = %q", got)
	}
}

func TestEvalRejectsBrokenInput(t *testing.T) {
	if _, err := Eval([]byte("=broken\n")); err == nil {
		t.Fatal("no error for a malformed line")
	}
}

func TestEvalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec")
	if err := os.WriteFile(path, []byte("PKGVER=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := EvalFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := env["PKGVER"].String(); got != "1" {
		t.Errorf("PKGVER = %q", got)
	}

	if _, err := EvalFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("no error for a missing file")
	}
}
