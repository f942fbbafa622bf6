package bigint

import "math/bits"

// This file holds the limb-array primitives every other component in this
// package is built on: comparison, addition, subtraction, and shifting over
// little-endian []uint32 magnitudes. They are implemented here once and
// never duplicated by the algorithms that consume them.

// compare compares two trimmed (no non-zero high limb beyond their real
// length) little-endian magnitudes, returning -1, 0 or +1.
func compare(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// bitLength returns the number of bits needed to represent the magnitude
// held in a trimmed limb slice.
func bitLength(a []uint32) int {
	if len(a) == 0 {
		return 0
	}
	return (len(a)-1)*32 + bits.Len32(a[len(a)-1])
}

// testBit reports whether bit i is set in the magnitude held in a.
func testBit(a []uint32, i int) bool {
	idx := i / 32
	if idx < 0 || idx >= len(a) {
		return false
	}
	return (a[idx]>>uint(i%32))&1 == 1
}

// getLowestSetBit returns the index of the lowest set bit, or -1 if a
// represents zero.
func getLowestSetBit(a []uint32) int {
	for i, limb := range a {
		if limb != 0 {
			return i*32 + bits.TrailingZeros32(limb)
		}
	}
	return -1
}

// shiftLeftLimbs returns a copy of a shifted left by n bits (n >= 0),
// trimmed of leading zero limbs.
func shiftLeftLimbs(a []uint32, n int) []uint32 {
	if len(a) == 0 || n == 0 {
		return append([]uint32(nil), a...)
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	out := make([]uint32, len(a)+wordShift+1)
	if bitShift == 0 {
		copy(out[wordShift:], a)
	} else {
		var carry uint32
		for i, limb := range a {
			out[i+wordShift] = (limb << bitShift) | carry
			carry = limb >> (32 - bitShift)
		}
		out[len(a)+wordShift] = carry
	}
	return trim(out)
}

// shiftRightLimbs returns a copy of a shifted right by n bits (n >= 0).
func shiftRightLimbs(a []uint32, n int) []uint32 {
	wordShift := n / 32
	bitShift := uint(n % 32)
	if wordShift >= len(a) {
		return nil
	}
	src := a[wordShift:]
	out := make([]uint32, len(src))
	if bitShift == 0 {
		copy(out, src)
	} else {
		for i := 0; i < len(src); i++ {
			lo := src[i] >> bitShift
			var hi uint32
			if i+1 < len(src) {
				hi = src[i+1] << (32 - bitShift)
			}
			out[i] = lo | hi
		}
	}
	return trim(out)
}

// trim drops trailing (high-order) zero limbs.
func trim(a []uint32) []uint32 {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// getBlockLimbs returns the i-th n-limb block of a, i.e. limbs [i*n, i*n+n),
// zero-extended if a is shorter. The Burnikel-Ziegler code does not call it:
// it carves its *Integer operands with bitBlock/limbRange instead.
func getBlockLimbs(a []uint32, i, n int) []uint32 {
	out := make([]uint32, n)
	lo := i * n
	if lo >= len(a) {
		return out
	}
	hi := lo + n
	if hi > len(a) {
		hi = len(a)
	}
	copy(out, a[lo:hi])
	return out
}

// getLowerLimbs returns the lowest n limbs of a, zero-extended if shorter.
func getLowerLimbs(a []uint32, n int) []uint32 {
	out := make([]uint32, n)
	hi := n
	if hi > len(a) {
		hi = len(a)
	}
	copy(out, a[:hi])
	return out
}

// ShiftLeft returns x << n (n >= 0).
func (x *Integer) ShiftLeft(n int) *Integer {
	if x.length == 0 || n == 0 {
		return x.Copy()
	}
	return newFromLimbs(x.sign, shiftLeftLimbs(x.limbs, n))
}

// ShiftRight returns x >> n (n >= 0), using arithmetic (floor) shift for
// negative x, matching two's-complement shift semantics.
func (x *Integer) ShiftRight(n int) *Integer {
	if x.length == 0 || n == 0 {
		return x.Copy()
	}
	shifted := newFromLimbs(x.sign, shiftRightLimbs(x.limbs, n))
	if x.sign >= 0 {
		return shifted
	}
	// Floor division towards -infinity: if any of the discarded low bits
	// were set, round the magnitude away from zero.
	lost := false
	for i := 0; i < n && i < x.BitLen(); i++ {
		if x.TestBit(i) {
			lost = true
			break
		}
	}
	if lost {
		return shifted.Sub(ONE)
	}
	return shifted
}
