// Package paillier implements the Paillier encryption scheme over
// bigint.Integer, using arith.Modulus's CRT acceleration for both
// encryption's exponentiation by N and decryption's exponentiation by
// Phi(N).
package paillier

import (
	"crypto/rand"

	"github.com/taurusgroup/bigcore/arith"
	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/sample"
)

// PublicKey holds N = p*q and its square, caching N+1 for encryption.
type PublicKey struct {
	n, nSquared *arith.Modulus
	nPlusOne    *bigint.Integer
}

// NewPublicKey wraps a precomputed modulus N. N² is wrapped without a
// factorization, even when n carries one, so nSquared's Exp is a single
// full-width exponentiation; NewSecretKeyFromPrimes replaces it with a
// factored N².
func NewPublicKey(n *arith.Modulus) *PublicKey {
	nSquared := arith.ModulusFromN(n.N().Mul(n.N()))
	return &PublicKey{
		n:        n,
		nSquared: nSquared,
		nPlusOne: n.N().Add(bigint.ONE),
	}
}

// N returns the modulus N.
func (pk *PublicKey) N() *bigint.Integer {
	return pk.n.N()
}

// N2 returns N².
func (pk *PublicKey) N2() *bigint.Integer {
	return pk.nSquared.N()
}

// Equal reports whether pk and other share the same modulus.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.N().Cmp(other.N()) == 0
}

// Nonce samples a fresh encryption nonce rho in Z_N^*.
func (pk *PublicKey) Nonce() *bigint.Integer {
	return sample.UnitModN(rand.Reader, pk.N())
}

// Enc returns the encryption of m under pk. If nonce is nil, a fresh one
// is sampled; the nonce actually used is always returned alongside the
// ciphertext.
//
// ct = (1+N)^m * rho^N (mod N²)
func (pk *PublicKey) Enc(m *bigint.Integer, nonce *bigint.Integer) (*Ciphertext, *bigint.Integer, error) {
	if nonce == nil {
		nonce = pk.Nonce()
	}
	base, err := pk.nSquared.ExpI(pk.nPlusOne, m)
	if err != nil {
		return nil, nil, err
	}
	mask, err := pk.nSquared.Exp(nonce, pk.N())
	if err != nil {
		return nil, nil, err
	}
	c := base.Mul(mask)
	c, err = c.Mod(pk.N2())
	if err != nil {
		return nil, nil, err
	}
	return &Ciphertext{c: c}, nonce, nil
}

// ValidateCiphertexts reports whether every ct is within [1, N²) and
// coprime to N (equivalently, to N², since N² shares N's prime factors).
func (pk *PublicKey) ValidateCiphertexts(cts ...*Ciphertext) bool {
	for _, ct := range cts {
		if ct == nil || ct.c.Sign() <= 0 || ct.c.Cmp(pk.N2()) >= 0 {
			return false
		}
		if !bigint.GCDBinary(ct.c, pk.N()).IsOne() {
			return false
		}
	}
	return true
}
