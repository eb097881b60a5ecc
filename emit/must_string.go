package emit

import (
	"bytes"

	"github.com/aosc-dev/go-apml/lst"
)

// MustString renders doc to a string.  No trimming: the result is the
// exact byte sequence Emit would write.
func MustString(doc *lst.Document) string {
	buf := bytes.NewBuffer(nil)
	if err := Emit(buf, doc); err != nil {
		panic(err)
	}
	return buf.String()
}
