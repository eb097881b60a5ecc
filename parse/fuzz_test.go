package parse

import (
	"bytes"
	"testing"

	"github.com/aosc-dev/go-apml/emit"
)

// FuzzRoundTrip checks the emit∘parse identity on arbitrary input: the
// tolerant parse must cover every byte, whatever the bytes are.
func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"\n",
		"A=1\n",
		testSpec,
		"A=(1 2 3)\n",
		"A=(\n\t1 # c\n)\n",
		"A='x' \"y\"z\n",
		"A=\"${B:-1}\"\n",
		"=bad\n",
		"A=\"unterminated\n",
		"A=\\\n1\n",
		"A=1 # t\r\n",
		"A=\"a\\q\"\nB=2\n",
		"\x00\xff(",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		doc, _ := ParseTolerant(d)
		if got := emit.Bytes(doc); !bytes.Equal(got, d) {
			t.Errorf("round trip %q, want %q", got, d)
		}
	})
}
