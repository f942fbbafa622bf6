package hash

import "io"

// WriterToWithDomain is a value that writes itself to a transcript and
// names the domain string that should separate it from other types.
type WriterToWithDomain interface {
	io.WriterTo
	Domain() string
}

// writeWithDomain writes "(<domain><data>)", tagging each write with its
// domain and delimiting it with parentheses. The data is neither escaped
// nor length-prefixed, so data that itself contains parentheses can make
// two different sequences of writes produce the same byte stream.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	if _, err := w.Write([]byte("(")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(object.Domain())); err != nil {
		return err
	}
	if _, err := object.WriteTo(w); err != nil {
		return err
	}
	if _, err := w.Write([]byte(")")); err != nil {
		return err
	}
	return nil
}

// BytesWithDomain wraps a byte slice with an explicit domain, for ad hoc
// domain-separated writes.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}
