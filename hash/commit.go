package hash

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/taurusgroup/bigcore/params"
)

type (
	Commitment   []byte
	Decommitment []byte
)

func (c Commitment) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c)
	return int64(n), err
}

func (Commitment) Domain() string { return "Commitment" }

func (c Commitment) Validate() error {
	if l := len(c); l != DigestLengthBytes {
		return fmt.Errorf("hash: commitment has wrong length (got %d, want %d)", l, DigestLengthBytes)
	}
	return nil
}

func (d Decommitment) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d)
	return int64(n), err
}

func (Decommitment) Domain() string { return "Decommitment" }

func (d Decommitment) Validate() error {
	if l := len(d); l != params.SecBytes {
		return fmt.Errorf("hash: decommitment has wrong length (got %d, want %d)", l, params.SecBytes)
	}
	return nil
}

// Commit hashes data together with a freshly sampled decommitment string,
// returning commitment = H(data, decommitment) and the decommitment
// itself.
func (hash *Hash) Commit(data ...interface{}) (Commitment, Decommitment, error) {
	decommitment := Decommitment(make([]byte, params.SecBytes))
	if _, err := rand.Read(decommitment); err != nil {
		return nil, nil, fmt.Errorf("hash: commit: generate decommitment: %w", err)
	}

	h := hash.Clone()
	for _, item := range data {
		if err := h.WriteAny(item); err != nil {
			return nil, nil, fmt.Errorf("hash: commit: write data: %w", err)
		}
	}
	_ = h.WriteAny(decommitment)

	return h.Sum(), decommitment, nil
}

// Decommit reports whether c = H(data, d).
func (hash *Hash) Decommit(c Commitment, d Decommitment, data ...interface{}) bool {
	if err := c.Validate(); err != nil {
		return false
	}
	if err := d.Validate(); err != nil {
		return false
	}

	h := hash.Clone()
	for _, item := range data {
		if err := h.WriteAny(item); err != nil {
			return false
		}
	}
	_ = h.WriteAny(d)

	return bytes.Equal(h.Sum(), c)
}
