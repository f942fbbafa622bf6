package paillier

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/taurusgroup/bigcore/arith"
	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/params"
	"github.com/taurusgroup/bigcore/pool"
	"github.com/taurusgroup/bigcore/sample"
)

// probablyPrime delegates primality testing to math/big rather than
// reimplementing Miller-Rabin over bigint.Integer.
func probablyPrime(x *bigint.Integer) bool {
	return new(big.Int).SetBytes(x.Bytes()).ProbablyPrime(1)
}

// SecretKey holds the factorization of a Paillier PublicKey's modulus.
type SecretKey struct {
	*PublicKey
	p, q   *bigint.Integer
	phi    *bigint.Integer
	phiInv *bigint.Integer
}

// P returns the first prime factor of N.
func (sk *SecretKey) P() *bigint.Integer { return sk.p }

// Q returns the second prime factor of N.
func (sk *SecretKey) Q() *bigint.Integer { return sk.q }

// Phi returns Phi(N) = (P-1)(Q-1), the order of Z_N^*.
func (sk *SecretKey) Phi() *bigint.Integer { return sk.phi }

// NewSecretKey generates fresh primes and the associated SecretKey.
func NewSecretKey(pl *pool.Pool) *SecretKey {
	p, q := sample.Paillier(rand.Reader, pl)
	return NewSecretKeyFromPrimes(p, q)
}

// NewSecretKeyFromPrimes builds a SecretKey assuming P and Q are prime.
func NewSecretKeyFromPrimes(p, q *bigint.Integer) *SecretKey {
	n, err := arith.ModulusFromFactors(p, q)
	if err != nil {
		panic(fmt.Errorf("paillier: p, q not coprime: %w", err))
	}

	pMinus1 := p.Sub(bigint.ONE)
	qMinus1 := q.Sub(bigint.ONE)
	phi := pMinus1.Mul(qMinus1)
	phiInv, err := phi.ModInverse(n.N())
	if err != nil {
		panic(fmt.Errorf("paillier: phi not invertible mod N: %w", err))
	}

	pk := NewPublicKey(n)
	// Known factors let decryption's exponentiation by Phi(N) run as two
	// smaller exponentiations mod p² and q² instead of one mod N².
	pSquared := p.Mul(p)
	qSquared := q.Mul(q)
	if nSquared, err := arith.ModulusFromFactors(pSquared, qSquared); err == nil {
		pk.nSquared = nSquared
	}

	return &SecretKey{
		PublicKey: pk,
		p:         p,
		q:         q,
		phi:       phi,
		phiInv:    phiInv,
	}
}

// symmetric maps x in [0, n) to the representative in (-n/2, n/2].
func symmetric(x, n *bigint.Integer) *bigint.Integer {
	half := n.ShiftRight(1)
	if x.Cmp(half) > 0 {
		return x.Sub(n)
	}
	return x
}

// Dec decrypts ct, returning the plaintext in the symmetric range
// ±(N-1)/2. It fails if ct isn't a validly-ranged, N-coprime ciphertext.
func (sk *SecretKey) Dec(ct *Ciphertext) (*bigint.Integer, error) {
	if !sk.PublicKey.ValidateCiphertexts(ct) {
		return nil, fmt.Errorf("paillier: %w", ErrInvalidCiphertext)
	}

	n := sk.N()
	result, err := sk.nSquared.Exp(ct.c, sk.phi)
	if err != nil {
		return nil, err
	}
	result = result.Sub(bigint.ONE)
	qr, err := result.Divide(n)
	if err != nil {
		return nil, err
	}
	result = qr.Quotient.Mul(sk.phiInv)
	result, err = result.Mod(n)
	if err != nil {
		return nil, err
	}
	return symmetric(result, n), nil
}

// DecWithRandomness decrypts ct and also recovers the encryption nonce
// that was used, via x = C*(N+1)^-m (mod N), r = x^(N^-1 mod Phi) (mod N).
func (sk *SecretKey) DecWithRandomness(ct *Ciphertext) (*bigint.Integer, *bigint.Integer, error) {
	m, err := sk.Dec(ct)
	if err != nil {
		return nil, nil, err
	}

	x, err := sk.nSquared.ExpI(sk.nPlusOne, m.Negate())
	if err != nil {
		return nil, nil, err
	}
	x = x.Mul(ct.c)
	x, err = x.Mod(sk.N2())
	if err != nil {
		return nil, nil, err
	}

	nInverse, err := sk.N().ModInverse(sk.phi)
	if err != nil {
		return nil, nil, err
	}
	r, err := sk.nSquared.Exp(x, nInverse)
	if err != nil {
		return nil, nil, err
	}
	r, err = r.Mod(sk.N())
	if err != nil {
		return nil, nil, err
	}
	return m, r, nil
}

// ValidatePrime checks that p is a suitable Paillier/Blum safe prime: the
// right bit length, p = 3 (mod 4), and (p-1)/2 prime.
func ValidatePrime(p *bigint.Integer) error {
	if p == nil {
		return ErrPrimeNil
	}
	if bits := p.BitLen(); bits != params.BitsBlumPrime {
		return fmt.Errorf("paillier: invalid prime size: have %d, need %d: %w", bits, params.BitsBlumPrime, ErrPrimeBadLength)
	}
	if !p.TestBit(0) || !p.TestBit(1) {
		return ErrNotBlum
	}
	q := p.ShiftRight(1)
	if !probablyPrime(q) {
		return ErrNotSafePrime
	}
	return nil
}
