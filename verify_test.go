package apml

import "testing"

func TestVerify(t *testing.T) {
	srcs := []string{
		"",
		"PKGNAME=zlib\n",
		"# comment\n\nA=1 # trail\n",
		"SRCS=(\n\ta\n\t'b c' # inner\n)\n",
		"BAD LINE ???\nA=1\n",
		"A=\"unterminated\n",
		"SRCS=(a\n",
		"A='x' stray\n",
		"A=1\\\n2\n",
		"A=1",
	}
	for _, src := range srcs {
		out, ok := Verify([]byte(src))
		if !ok {
			t.Errorf("Verify(%q) emitted %q", src, out)
		}
	}
}
