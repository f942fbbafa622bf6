package bigint

import (
	"math/bits"

	"github.com/taurusgroup/bigcore/params"
)

// This file implements Burnikel-Ziegler recursive division, used by
// divideMagnitude once the divisor is at least params.WhenBurnikelZiegler
// limbs wide. The recursion bottoms out in knuthDivide/divideArrayByUint32,
// so below the threshold this file is never reached.
//
// Intermediate values are kept as *Integer rather than raw limb slices:
// the recursive structure below needs signed subtraction and correction
// steps that would otherwise have to re-implement addMag/subMag/cmpMag by
// hand at every level.

// divideAndRemainderBZ divides the non-negative, trimmed magnitudes a and b
// (len(b) >= params.WhenBurnikelZiegler) and returns trimmed quotient and
// remainder limb slices.
func divideAndRemainderBZ(aLimbs, bLimbs []uint32) (quotLimbs, remLimbs []uint32) {
	a := newFromLimbs(1, append([]uint32(nil), aLimbs...))
	b := newFromLimbs(1, append([]uint32(nil), bLimbs...))

	s := len(bLimbs)
	T := params.WhenBurnikelZiegler
	m := nextPowerOfTwo(s / T)
	j := ceilDiv(s, m)
	n := j * m

	sigma := 32*n - b.BitLen()
	if sigma < 0 {
		sigma = 0
	}
	aShift := a.ShiftLeft(sigma)
	bNorm := bitBlock(b.ShiftLeft(sigma), 0, n)

	t := ceilDiv(aShift.BitLen()+32*n, 32*n)
	if t < 2 {
		t = 2
	}

	z := bitBlock(aShift, t-1, n).ShiftLeft(32 * n).Add(bitBlock(aShift, t-2, n))

	var quotBlocks []*Integer
	for i := t - 2; i >= 1; i-- {
		q, r := divide2n1n(z, bNorm, n)
		quotBlocks = append(quotBlocks, q)
		z = r.ShiftLeft(32 * n).Add(bitBlock(aShift, i-1, n))
	}
	qLow, r := divide2n1n(z, bNorm, n)
	quotBlocks = append(quotBlocks, qLow)

	quot := assembleBlocks(quotBlocks, n)
	rem := r.ShiftRight(sigma)
	return append([]uint32(nil), quot.limbs...), append([]uint32(nil), rem.limbs...)
}

// divide2n1n divides a dividend of at most 2n limbs by an n-limb divisor.
func divide2n1n(a, b *Integer, n int) (q, r *Integer) {
	if n < params.WhenBurnikelZiegler || n%2 == 1 {
		return divideBaseCase(a, b)
	}
	half := n / 2

	a1 := bitBlock(a, 1, n)   // high n limbs of the 2n-limb dividend
	a2 := bitBlock(a, 0, n)   // low n limbs
	a2hi := bitBlock(a2, 1, half)
	a2lo := bitBlock(a2, 0, half)

	dividend1 := a1.ShiftLeft(32 * half).Add(a2hi)
	q1, r1 := divide3n2n(dividend1, b, n)

	dividend2 := r1.ShiftLeft(32 * half).Add(a2lo)
	q2, r2 := divide3n2n(dividend2, b, n)

	q = q1.ShiftLeft(32 * half).Add(q2)
	return q, r2
}

// divide3n2n divides a dividend of at most 3n/2 limbs by an n-limb divisor
// split into an upper half b1 and lower half b2, each n/2 limbs.
func divide3n2n(a, b *Integer, n int) (q, r *Integer) {
	half := n / 2

	aHigh := limbRange(a, half, n)  // top n limbs of the 3n/2-limb dividend
	aLow := limbRange(a, 0, half)   // bottom n/2 limbs
	b1 := limbRange(b, half, half)  // upper half of the divisor
	b2 := limbRange(b, 0, half)     // lower half of the divisor

	aHighTop := limbRange(aHigh, half, half) // aHigh's own upper half

	var r1 *Integer
	if aHighTop.Cmp(b1) < 0 {
		q, r1 = divide2n1n(aHigh, b1, half)
	} else {
		q = onesBlock(half)
		r1 = aHigh.Sub(b1.Mul(q))
	}

	r = r1.ShiftLeft(32 * half).Add(aLow).Sub(q.Mul(b2))
	for r.Sign() < 0 {
		r = r.Add(b)
		q = q.Sub(ONE)
	}
	return q, r
}

// divideBaseCase falls back to schoolbook division once the recursion
// reaches a divisor narrower than the Burnikel-Ziegler threshold, or an
// odd-sized one, which the doubling recursion cannot split evenly.
func divideBaseCase(a, b *Integer) (*Integer, *Integer) {
	if b.IsZero() {
		return &Integer{}, a.Copy()
	}
	if cmpMag(a, b) < 0 {
		return &Integer{}, a.Copy()
	}
	if b.length == 1 {
		qMag, rem := divideArrayByUint32(a.limbs, b.limbs[0])
		return newFromLimbs(1, qMag), newFromLimbs(1, []uint32{rem})
	}
	qMag, rMag := knuthDivide(a.limbs, b.limbs)
	return newFromLimbs(1, qMag), newFromLimbs(1, rMag)
}

// bitBlock returns the i-th n-limb block of x (block 0 is the lowest),
// zero-extended if x is shorter.
func bitBlock(x *Integer, i, n int) *Integer {
	return limbRange(x, i*n, n)
}

// limbRange returns limbs [offset, offset+length) of x, zero-extended.
func limbRange(x *Integer, offset, length int) *Integer {
	out := make([]uint32, length)
	if offset < x.length {
		hi := offset + length
		if hi > x.length {
			hi = x.length
		}
		copy(out, x.limbs[offset:hi])
	}
	return newFromLimbs(1, out)
}

// onesBlock returns 2^(32n) - 1: n limbs, all bits set.
func onesBlock(n int) *Integer {
	limbs := make([]uint32, n)
	for i := range limbs {
		limbs[i] = 0xFFFFFFFF
	}
	return newFromLimbs(1, limbs)
}

// assembleBlocks reassembles quotient blocks produced highest-first into a
// single value, each block contributing n limbs.
func assembleBlocks(blocks []*Integer, n int) *Integer {
	result := &Integer{}
	for _, block := range blocks {
		result = result.ShiftLeft(32 * n).Add(block)
	}
	return result
}

// nextPowerOfTwo computes 1 << (32 - leadingZeros(x)), matching the
// Burnikel-Ziegler block-count formula exactly: for x already a power of
// two this deliberately returns 2x, not x, mirroring the reference
// algorithm's block-sizing choice.
func nextPowerOfTwo(x int) int {
	if x <= 0 {
		return 1
	}
	lz := bits.LeadingZeros32(uint32(x))
	return 1 << (32 - lz)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
