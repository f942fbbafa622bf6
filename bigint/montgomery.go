package bigint

import (
	"fmt"
	"math/bits"
)

// This file implements Montgomery modular multiplication and squaring,
// used by modpow.go's odd-modulus exponentiation path.

// MontgomeryContext caches the per-modulus values (limb width, the
// Montgomery constant n' = -m0^-1 mod 2^32, and R^2 mod m) needed to move
// values in and out of Montgomery form and to multiply/square within it.
type MontgomeryContext struct {
	modulus  *Integer
	m        []uint32
	n        int
	nPrime   uint32
	rSquared []uint32
}

// NewMontgomeryContext builds a context for the given odd modulus.
func NewMontgomeryContext(m *Integer) (*MontgomeryContext, error) {
	if m.sign <= 0 {
		return nil, fmt.Errorf("bigint: montgomery context: %w", ErrNegativeModulus)
	}
	if !m.TestBit(0) {
		return nil, fmt.Errorf("bigint: montgomery context: modulus must be odd")
	}
	n := m.length
	mLimbs := padTo(m.limbs, n)
	nPrime := calcN(mLimbs[0])

	r2ModM, err := getPowerOfTwo(64 * n).Mod(m)
	if err != nil {
		return nil, err
	}

	return &MontgomeryContext{
		modulus:  m.Copy(),
		m:        mLimbs,
		n:        n,
		nPrime:   nPrime,
		rSquared: padTo(r2ModM.limbs, n),
	}, nil
}

// Modulus returns the modulus the context was built for.
func (ctx *MontgomeryContext) Modulus() *Integer {
	return ctx.modulus
}

// ToMontgomery returns x*R mod m, i.e. x in Montgomery form.
func (ctx *MontgomeryContext) ToMontgomery(x *Integer) *Integer {
	return newFromLimbs(1, monPro(padTo(x.limbs, ctx.n), ctx.rSquared, ctx.m, ctx.n, ctx.nPrime))
}

// FromMontgomery returns xR^-1 mod m, undoing ToMontgomery.
func (ctx *MontgomeryContext) FromMontgomery(x *Integer) *Integer {
	one := make([]uint32, ctx.n)
	one[0] = 1
	return newFromLimbs(1, monPro(padTo(x.limbs, ctx.n), one, ctx.m, ctx.n, ctx.nPrime))
}

// MonPro computes a*b*R^-1 mod m for operands already in Montgomery form.
func (ctx *MontgomeryContext) MonPro(a, b *Integer) *Integer {
	return newFromLimbs(1, monPro(padTo(a.limbs, ctx.n), padTo(b.limbs, ctx.n), ctx.m, ctx.n, ctx.nPrime))
}

// MonSquare computes a*a*R^-1 mod m for an operand already in Montgomery
// form, via a dedicated squaring path rather than MonPro(a, a).
func (ctx *MontgomeryContext) MonSquare(a *Integer) *Integer {
	return newFromLimbs(1, monSquare(padTo(a.limbs, ctx.n), ctx.m, ctx.n, ctx.nPrime))
}

// calcN computes n' = -m0^-1 mod 2^32 via Newton-Raphson iteration on the
// odd inverse: y is its own inverse mod 8, and each iteration of
// y *= 2 - m0*y doubles the number of correct low bits, so five rounds is
// comfortably enough to converge across all 32 bits.
func calcN(m0 uint32) uint32 {
	y := m0
	for i := 0; i < 5; i++ {
		y = y * (2 - m0*y)
	}
	return -y
}

// monPro forms the full 2n-limb product of a and b and then runs it
// through Montgomery reduction. Multiplication and reduction are two
// separate passes; they are not interleaved limb by limb.
func monPro(a, b, m []uint32, n int, nPrime uint32) []uint32 {
	return montgomeryReduce(mulMag(a, b), m, n, nPrime)
}

// monSquare squares a via off-diagonal doubling plus the diagonal terms,
// then reduces. The doubling carry pass and the diagonal-addition carry
// pass are kept as two separate loops rather than merged into one: fusing
// them saves little and makes the carry bookkeeping easy to get wrong.
func monSquare(a, m []uint32, n int, nPrime uint32) []uint32 {
	return montgomeryReduce(squareMag(a), m, n, nPrime)
}

// squareMag computes a*a for an n-limb magnitude, returning 2n limbs.
func squareMag(a []uint32) []uint32 {
	n := len(a)
	out := make([]uint32, 2*n)

	// Off-diagonal products a[i]*a[j], i<j, each added once.
	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := i + 1; j < n; j++ {
			hi, lo := bits.Mul32(a[i], a[j])
			s := uint64(out[i+j]) + (uint64(hi)<<32 | uint64(lo)) + carry
			out[i+j] = uint32(s)
			carry = s >> 32
		}
		for k := i + n; carry != 0; k++ {
			s := uint64(out[k]) + carry
			out[k] = uint32(s)
			carry = s >> 32
		}
	}

	// Double the off-diagonal sum: every a[i]*a[j] term above should count
	// twice (once for i<j, once for j<i).
	var dcarry uint64
	for i := 0; i < len(out); i++ {
		s := uint64(out[i])<<1 + dcarry
		out[i] = uint32(s)
		dcarry = s >> 32
	}

	// Add the diagonal terms a[i]*a[i], independently of the doubling pass.
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul32(a[i], a[i])
		var carry uint64
		s := uint64(out[2*i]) + uint64(lo)
		out[2*i] = uint32(s)
		carry = s >> 32
		s = uint64(out[2*i+1]) + uint64(hi) + carry
		out[2*i+1] = uint32(s)
		carry = s >> 32
		for k := 2*i + 2; carry != 0 && k < len(out); k++ {
			s = uint64(out[k]) + carry
			out[k] = uint32(s)
			carry = s >> 32
		}
	}
	return out
}

// montgomeryReduce implements REDC (separated variant): it adds multiples
// of m to the 2n-limb product t until its low n limbs are zero, then
// returns the high n limbs (after one conditional final subtraction).
func montgomeryReduce(t, m []uint32, n int, nPrime uint32) []uint32 {
	buf := make([]uint32, 2*n+1)
	copy(buf, t)
	for i := 0; i < n; i++ {
		mi := buf[i] * nPrime
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul32(mi, m[j])
			s := uint64(buf[i+j]) + (uint64(hi)<<32 | uint64(lo)) + carry
			buf[i+j] = uint32(s)
			carry = s >> 32
		}
		for k := i + n; carry != 0; k++ {
			s := uint64(buf[k]) + carry
			buf[k] = uint32(s)
			carry = s >> 32
		}
	}
	return finalSubtraction(buf[n:2*n+1], m, n)
}

// finalSubtraction subtracts m once from t if t >= m, then truncates the
// result to exactly n limbs. t may carry one extra guard limb beyond n;
// Montgomery's bound guarantees t < 2m, so a single subtraction suffices.
func finalSubtraction(t, m []uint32, n int) []uint32 {
	mFull := make([]uint32, len(t))
	copy(mFull, m)
	if compare(t, mFull) >= 0 {
		return padTo(subMag(t, mFull), n)
	}
	return padTo(t, n)
}

// padTo returns a copy of a zero-extended or truncated to exactly n limbs.
func padTo(a []uint32, n int) []uint32 {
	out := make([]uint32, n)
	k := len(a)
	if k > n {
		k = n
	}
	copy(out, a[:k])
	return out
}
