package paillier

import (
	"io"

	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/params"
)

// Ciphertext is a Paillier ciphertext mod N².
type Ciphertext struct {
	c *bigint.Integer
}

// Add returns the homomorphic sum ct ⊕ other: ct * other (mod N²).
func (ct *Ciphertext) Add(pk *PublicKey, other *Ciphertext) (*Ciphertext, error) {
	if other == nil {
		return ct, nil
	}
	c, err := ct.c.Mul(other.c).Mod(pk.N2())
	if err != nil {
		return nil, err
	}
	return &Ciphertext{c: c}, nil
}

// Mul returns the homomorphic scalar multiplication k ⊙ ct: ct^k (mod N²).
func (ct *Ciphertext) Mul(pk *PublicKey, k *bigint.Integer) (*Ciphertext, error) {
	if k == nil {
		return ct, nil
	}
	c, err := pk.nSquared.ExpI(ct.c, k)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{c: c}, nil
}

// Equal reports whether ct and other encode the same ciphertext value.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.c.Cmp(other.c) == 0
}

// Clone returns a copy of ct sharing no storage with it.
func (ct *Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{c: ct.c.Copy()}
}

// Randomize multiplies ct's nonce by a fresh one (or the given one),
// returning the nonce that was applied: ct *= nonce^N (mod N²).
func (ct *Ciphertext) Randomize(pk *PublicKey, nonce *bigint.Integer) (*bigint.Integer, error) {
	if nonce == nil {
		nonce = pk.Nonce()
	}
	mask, err := pk.nSquared.Exp(nonce, pk.N())
	if err != nil {
		return nil, err
	}
	c := ct.c.Mul(mask)
	c, err = c.Mod(pk.N2())
	if err != nil {
		return nil, err
	}
	ct.c = c
	return nonce, nil
}

// WriteTo writes ct's fixed-width big-endian encoding, for use as a
// hash.Hash transcript entry.
func (ct *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, params.BytesCiphertext)
	b := ct.c.Bytes()
	copy(buf[len(buf)-len(b):], b)
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain separates Ciphertext from other types within hash.Hash's
// transcript.
func (*Ciphertext) Domain() string {
	return "Paillier Ciphertext"
}
