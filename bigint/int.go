// Package bigint implements the division and modular-arithmetic core of an
// arbitrary-precision signed integer: schoolbook and Burnikel-Ziegler
// division, Montgomery multiplication, modular exponentiation, modular
// inverse, and binary GCD.
//
// Integer values are immutable once returned from an exported function: no
// method mutates its receiver or arguments. Internal routines that need
// mutable scratch space work on plain limb slices that they own for the
// duration of a single call.
package bigint

import "math/bits"

// Integer is a signed arbitrary-precision integer, represented as a sign
// and a little-endian sequence of 32-bit limbs.
//
// Invariants (N1-N3 in the design): either length is 0 or limbs[length-1]
// is non-zero; sign is 0 iff length is 0; len(limbs) == length always holds
// for values returned from this package (no undefined trailing storage is
// ever exposed).
type Integer struct {
	sign   int8
	limbs  []uint32
	length int
}

// ZERO is the integer 0.
var ZERO = &Integer{}

// ONE is the integer 1.
var ONE = &Integer{sign: 1, limbs: []uint32{1}, length: 1}

// newFromLimbs builds a normalised Integer taking ownership of limbs.
func newFromLimbs(sign int8, limbs []uint32) *Integer {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return &Integer{}
	}
	return &Integer{sign: sign, limbs: limbs[:n], length: n}
}

// ValueOf converts a native int64 to an Integer.
func ValueOf(v int64) *Integer {
	if v == 0 {
		return &Integer{}
	}
	sign := int8(1)
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = uint64(-v)
	}
	limbs := []uint32{uint32(u), uint32(u >> 32)}
	return newFromLimbs(sign, limbs)
}

// getPowerOfTwo returns 2^j.
func getPowerOfTwo(j int) *Integer {
	limbs := make([]uint32, j/32+1)
	limbs[j/32] = 1 << (uint(j) % 32)
	return newFromLimbs(1, limbs)
}

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Integer) Sign() int {
	return int(x.sign)
}

// IsZero reports whether x is the integer 0.
func (x *Integer) IsZero() bool {
	return x.length == 0
}

// IsOne reports whether x is the integer 1.
func (x *Integer) IsOne() bool {
	return x.sign == 1 && x.length == 1 && x.limbs[0] == 1
}

// Copy returns a value equal to x, sharing no storage with it.
func (x *Integer) Copy() *Integer {
	if x.length == 0 {
		return &Integer{}
	}
	limbs := make([]uint32, x.length)
	copy(limbs, x.limbs)
	return &Integer{sign: x.sign, limbs: limbs, length: x.length}
}

// Negate returns -x.
func (x *Integer) Negate() *Integer {
	if x.length == 0 {
		return &Integer{}
	}
	return newFromLimbs(-x.sign, append([]uint32(nil), x.limbs...))
}

// Abs returns |x|.
func (x *Integer) Abs() *Integer {
	if x.sign < 0 {
		return x.Negate()
	}
	return x
}

// BitLen returns the number of bits required to represent |x|, i.e. 0 for
// the zero value.
func (x *Integer) BitLen() int {
	return bitLength(x.limbs)
}

// TestBit reports whether bit i of |x| is set.
func (x *Integer) TestBit(i int) bool {
	return testBit(x.limbs, i)
}

// GetLowestSetBit returns the index of the lowest set bit of |x|, or -1 if
// x is zero.
func (x *Integer) GetLowestSetBit() int {
	return getLowestSetBit(x.limbs)
}

// cmpMag compares the magnitudes of x and y: -1, 0, +1.
func cmpMag(x, y *Integer) int {
	return compare(x.limbs, y.limbs)
}

// Cmp compares x and y as signed integers, returning -1, 0 or +1.
func (x *Integer) Cmp(y *Integer) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	}
	// signs are equal
	switch x.sign {
	case 0:
		return 0
	case 1:
		return cmpMag(x, y)
	default:
		return -cmpMag(x, y)
	}
}

// Add returns x + y.
func (x *Integer) Add(y *Integer) *Integer {
	if x.sign == 0 {
		return y.Copy()
	}
	if y.sign == 0 {
		return x.Copy()
	}
	if x.sign == y.sign {
		sum := addMag(x.limbs, y.limbs)
		return newFromLimbs(x.sign, sum)
	}
	// Opposite signs: subtract the smaller magnitude from the larger.
	switch cmpMag(x, y) {
	case 0:
		return &Integer{}
	case 1:
		return newFromLimbs(x.sign, subMag(x.limbs, y.limbs))
	default:
		return newFromLimbs(y.sign, subMag(y.limbs, x.limbs))
	}
}

// Sub returns x - y.
func (x *Integer) Sub(y *Integer) *Integer {
	return x.Add(y.Negate())
}

// Mul returns x * y, via schoolbook multiplication.
func (x *Integer) Mul(y *Integer) *Integer {
	if x.sign == 0 || y.sign == 0 {
		return &Integer{}
	}
	product := mulMag(x.limbs, y.limbs)
	return newFromLimbs(x.sign*y.sign, product)
}

// addMag adds two non-negative magnitudes given as trimmed limb slices.
func addMag(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := 0; i < len(b); i++ {
		s := uint64(a[i]) + uint64(b[i]) + carry
		out[i] = uint32(s)
		carry = s >> 32
	}
	for i := len(b); i < len(a); i++ {
		s := uint64(a[i]) + carry
		out[i] = uint32(s)
		carry = s >> 32
	}
	out[len(a)] = uint32(carry)
	return out
}

// subMag subtracts b from a, where a >= b in magnitude, both trimmed.
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint64
	for i := 0; i < len(b); i++ {
		d := uint64(a[i]) - uint64(b[i]) - borrow
		out[i] = uint32(d)
		borrow = (d >> 63) & 1
	}
	for i := len(b); i < len(a); i++ {
		d := uint64(a[i]) - borrow
		out[i] = uint32(d)
		borrow = (d >> 63) & 1
	}
	return out
}

// mulMag multiplies two magnitudes given as trimmed limb slices.
func mulMag(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			hi, lo := bits.Mul32(ai, bj)
			s := uint64(out[i+j]) + (uint64(hi)<<32 | uint64(lo)) + carry
			out[i+j] = uint32(s)
			carry = s >> 32
		}
		k := i + len(b)
		for carry != 0 {
			s := uint64(out[k]) + carry
			out[k] = uint32(s)
			carry = s >> 32
			k++
		}
	}
	return out
}
