package emit

import (
	"bytes"
	"io"

	"github.com/aosc-dev/go-apml/lst"
)

// Emit writes doc to w.  Entries hold their source spans verbatim, so a
// document that was parsed and not modified reproduces its input byte
// for byte.  Nothing is reflowed or reordered.
func Emit(w io.Writer, doc *lst.Document) error {
	for _, e := range doc.Entries {
		if err := writeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Bytes renders doc in memory.
func Bytes(doc *lst.Document) []byte {
	var buf bytes.Buffer
	if err := Emit(&buf, doc); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func writeEntry(w io.Writer, e *lst.Entry) error {
	if err := writeString(w, e.Lead); err != nil {
		return err
	}
	switch e.Kind {
	case lst.EntryAssign:
		if err := writeString(w, e.Key); err != nil {
			return err
		}
		if err := writeString(w, e.Op.String()); err != nil {
			return err
		}
		if err := writeValue(w, e.Val); err != nil {
			return err
		}
		if err := writeString(w, e.Trail); err != nil {
			return err
		}
	case lst.EntryComment, lst.EntryOpaque:
		if err := writeString(w, e.Text); err != nil {
			return err
		}
		if err := writeString(w, e.Trail); err != nil {
			return err
		}
	case lst.EntryBlank:
	}
	return writeString(w, e.NL)
}

func writeValue(w io.Writer, v lst.Value) error {
	switch x := v.(type) {
	case *lst.Scalar:
		return writeString(w, x.Raw)
	case *lst.Array:
		if err := writeString(w, "("); err != nil {
			return err
		}
		for _, it := range x.Items {
			var err error
			if it.Kind == lst.ItemScalar {
				err = writeString(w, it.Sc.Raw)
			} else {
				err = writeString(w, it.Text)
			}
			if err != nil {
				return err
			}
		}
		return writeString(w, ")")
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
