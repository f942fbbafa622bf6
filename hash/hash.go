// Package hash implements the Fiat-Shamir transcript used to turn the
// zkmod interactive proof into a non-interactive one: every value a
// verifier would need to see gets written into one running blake3 state,
// and the resulting digest stream stands in for the verifier's random
// challenges.
package hash

import (
	"fmt"
	"io"

	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/params"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of a Sum() output.
const DigestLengthBytes = params.SecBytes * 2 // 64

// Hash accumulates domain-separated writes into a blake3 state whose
// output can be read as an arbitrarily long stream of challenge bytes.
type Hash struct {
	h *blake3.Hasher
}

// New creates an empty Hash.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Digest finalizes the current state and returns it as an extendable
// stream of pseudorandom bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns DigestLengthBytes bytes of the current digest. Use
// io.ReadFull(hash.Digest(), out) directly for a different length.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes each of data into the hash state, domain-separating
// []byte and *bigint.Integer values itself; a WriterToWithDomain writes
// itself under its own domain.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			if err := writeWithDomain(hash.h, &BytesWithDomain{TheDomain: "[]byte", Bytes: t}); err != nil {
				return fmt.Errorf("hash: write []byte: %w", err)
			}
		case *bigint.Integer:
			if t == nil {
				return fmt.Errorf("hash: write *bigint.Integer: nil")
			}
			bytes := fixedWidthBytes(t, params.BytesPaillier)
			if err := writeWithDomain(hash.h, &BytesWithDomain{TheDomain: "bigint.Integer", Bytes: bytes}); err != nil {
				return fmt.Errorf("hash: write *bigint.Integer: %w", err)
			}
		case WriterToWithDomain:
			if err := writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash: write io.WriterTo: %w", err)
			}
		default:
			panic("hash: unsupported type")
		}
	}
	return nil
}

// fixedWidthBytes encodes non-negative x that fits in width bytes as a
// fixed-width big-endian buffer, so any two such integers get distinct
// encodings of equal length. Values that don't fit (or are negative) are
// encoded instead as one sign byte (1 if negative, else 0) followed by the
// big-endian magnitude; no length prefix is written.
func fixedWidthBytes(x *bigint.Integer, width int) []byte {
	b := x.Bytes()
	if x.Sign() >= 0 && len(b) <= width {
		out := make([]byte, width)
		copy(out[width-len(b):], b)
		return out
	}
	sign := byte(0)
	if x.Sign() < 0 {
		sign = 1
	}
	out := make([]byte, 1+len(b))
	out[0] = sign
	copy(out[1:], b)
	return out
}

// Clone returns an independent copy of hash's current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
