package bigint

import (
	"fmt"
	"math/bits"

	"github.com/taurusgroup/bigcore/params"
)

// QuotAndRem is the result of a division: both fields are normalised
// Integer values.
type QuotAndRem struct {
	Quotient  *Integer
	Remainder *Integer
}

// ZeroZero is the QuotAndRem sentinel for 0/b, b != 0.
var ZeroZero = QuotAndRem{Quotient: &Integer{}, Remainder: &Integer{}}

// Divide computes a/b, truncating towards zero. The quotient's sign is the
// product of the operand signs; the remainder's sign matches the dividend
// (or is zero). Divide dispatches to schoolbook division or, once the
// divisor is wide enough, to Burnikel-Ziegler.
func (a *Integer) Divide(b *Integer) (QuotAndRem, error) {
	if b.IsZero() {
		return QuotAndRem{}, fmt.Errorf("bigint: divide: %w", ErrDivisionByZero)
	}
	if a.IsZero() {
		return ZeroZero, nil
	}
	if cmpMag(a, b) < 0 {
		return QuotAndRem{Quotient: &Integer{}, Remainder: a.Copy()}, nil
	}
	qMag, rMag := divideMagnitude(a.limbs, b.limbs)
	return QuotAndRem{
		Quotient:  newFromLimbs(a.sign*b.sign, qMag),
		Remainder: newFromLimbs(a.sign, rMag),
	}, nil
}

// Mod returns a non-negative value in [0, |m|) congruent to a modulo m.
func (a *Integer) Mod(m *Integer) (*Integer, error) {
	qr, err := a.Divide(m)
	if err != nil {
		return nil, err
	}
	r := qr.Remainder
	if r.sign < 0 {
		r = r.Add(m.Abs())
	}
	return r, nil
}

// divideMagnitude divides two non-negative, trimmed limb slices and
// returns trimmed quotient and remainder limb slices. Callers must ensure
// len(a) >= len(b) >= 1 (checked by Divide via cmpMag) and b is non-zero.
func divideMagnitude(a, b []uint32) (quot, rem []uint32) {
	switch {
	case len(b) == 1:
		qMag, r := divideArrayByUint32(a, b[0])
		return trim(qMag), trimSingle(r)
	case len(b) < params.WhenBurnikelZiegler:
		return knuthDivide(a, b)
	default:
		return divideAndRemainderBZ(a, b)
	}
}

func trimSingle(r uint32) []uint32 {
	if r == 0 {
		return nil
	}
	return []uint32{r}
}

// divideArrayByUint32 divides a multi-limb magnitude by a single limb.
func divideArrayByUint32(a []uint32, d uint32) (quot []uint32, rem uint32) {
	quot = make([]uint32, len(a))
	var r uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := r<<32 | uint64(a[i])
		quot[i] = uint32(cur / uint64(d))
		r = cur % uint64(d)
	}
	return quot, uint32(r)
}

// knuthDivide implements Knuth's algorithm D (TAOCP vol. 2, §4.3.1).
// Callers must ensure len(b) >= 2 and len(a) >= len(b).
//
// The correction loop's overflow-detection branch (comparing r̂ against
// the limb base rather than dividing again) is kept exactly as specified:
// simplifying it risks an off-by-one quotient digit.
func knuthDivide(a, b []uint32) (quot, rem []uint32) {
	aLen, bLen := len(a), len(b)
	qLen := aLen - bLen + 1

	s := bits.LeadingZeros32(b[bLen-1])
	normB := shiftToWidth(b, s, bLen)
	normA := shiftToWidth(a, s, aLen+1)

	const base = uint64(1) << 32
	dHigh := uint64(normB[bLen-1])
	dLow := uint64(normB[bLen-2])

	quot = make([]uint32, qLen)
	for i := qLen - 1; i >= 0; i-- {
		j := i + bLen
		var qhat, rhat uint64
		top := uint64(normA[j])
		if top == dHigh {
			qhat = base - 1
			rhat = uint64(normA[j-1]) + dHigh
		} else {
			p := top<<32 | uint64(normA[j-1])
			qhat = p / dHigh
			rhat = p % dHigh
		}
		for rhat < base {
			lhs := qhat * dLow
			rhs := rhat<<32 + uint64(normA[j-2])
			if lhs <= rhs {
				break
			}
			qhat--
			rhat += dHigh
		}

		borrow := mulSub(normA[i:j+1], normB, uint32(qhat))
		if borrow != 0 {
			qhat--
			addBack(normA[i:j+1], normB)
		}
		quot[i] = uint32(qhat)
	}

	rem = shiftRightLimbs(normA[:bLen], s)
	return trim(quot), rem
}

// shiftToWidth left-shifts a by s bits (0 <= s < 32) and zero-extends or
// truncates the result to exactly width limbs.
func shiftToWidth(a []uint32, s, width int) []uint32 {
	shifted := shiftLeftLimbs(a, s)
	out := make([]uint32, width)
	n := len(shifted)
	if n > width {
		n = width
	}
	copy(out, shifted[:n])
	return out
}

// mulSub subtracts q*b from dst in place, where len(dst) == len(b)+1.
// It returns 1 if the subtraction underflowed (dst would be negative),
// signalling that the caller's digit guess was one too high.
func mulSub(dst, b []uint32, q uint32) uint32 {
	prod := mulMag([]uint32{q}, b)
	for len(prod) < len(dst) {
		prod = append(prod, 0)
	}
	var borrow uint64
	for i := 0; i < len(dst); i++ {
		d := int64(dst[i]) - int64(prod[i]) - int64(borrow)
		if d < 0 {
			d += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		dst[i] = uint32(d)
	}
	return uint32(borrow)
}

// addBack adds b into dst in place (len(dst) == len(b)+1), undoing an
// overshoot detected by mulSub. The final carry out of the top limb is
// discarded: it exactly cancels the borrow mulSub signalled.
func addBack(dst, b []uint32) {
	var carry uint64
	for i := 0; i < len(b); i++ {
		s := uint64(dst[i]) + uint64(b[i]) + carry
		dst[i] = uint32(s)
		carry = s >> 32
	}
	if len(dst) > len(b) {
		dst[len(b)] = uint32(uint64(dst[len(b)]) + carry)
	}
}

// DivideAndRemainderByInteger divides a by a native 32-bit divisor d,
// returning both quotient and remainder. The remainder's sign matches a.
func DivideAndRemainderByInteger(a *Integer, d int32) (quot *Integer, rem int32, err error) {
	if d == 0 {
		return nil, 0, fmt.Errorf("bigint: divide by int: %w", ErrDivisionByZero)
	}
	if a.IsZero() {
		return &Integer{}, 0, nil
	}
	dSign := int8(1)
	du := uint32(d)
	if d < 0 {
		dSign = -1
		du = uint32(-int64(d))
	}
	qMag, r := divideArrayByUint32(a.limbs, du)
	q := newFromLimbs(a.sign*dSign, qMag)
	remSigned := int32(r)
	if a.sign < 0 {
		remSigned = -remSigned
	}
	return q, remSigned, nil
}

// Remainder returns a mod d as a signed native remainder (sign matches a).
func (a *Integer) Remainder(d int32) (int32, error) {
	_, r, err := DivideAndRemainderByInteger(a, d)
	return r, err
}
