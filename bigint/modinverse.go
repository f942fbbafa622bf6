package bigint

import "fmt"

// This file implements modular inverse. An odd modulus uses the Savas-Koc
// "almost inverse" (a Kaliski-style binary algorithm that works in
// Montgomery scale and is corrected at the end), which is faster than
// general extended Euclid but relies on the modulus being odd. Any other
// modulus falls back to the extended Euclidean algorithm.

// ModInverse returns a^-1 mod m, or ErrNotInvertible if gcd(a, m) != 1.
func (a *Integer) ModInverse(m *Integer) (*Integer, error) {
	if m.sign <= 0 {
		return nil, fmt.Errorf("bigint: modinverse: %w", ErrNegativeModulus)
	}
	if m.IsOne() {
		return &Integer{}, nil
	}
	if m.TestBit(0) {
		return modInverseMontgomery(a, m)
	}
	return modInverseExtendedEuclid(a, m)
}

// modInverseMontgomery computes a^-1 mod m for an odd m using the
// Savas-Koc almost-inverse algorithm: a binary GCD variant that produces
// r = a^-1 * 2^k mod m alongside the shift count k, then removes the 2^k
// factor with k applications of "halve mod m".
func modInverseMontgomery(a, m *Integer) (*Integer, error) {
	aa, err := a.Mod(m)
	if err != nil {
		return nil, err
	}
	if aa.IsZero() {
		return nil, fmt.Errorf("bigint: modinverse: %w", ErrNotInvertible)
	}

	two := ValueOf(2)
	u := m.Copy()
	v := aa.Copy()
	r := &Integer{}
	s := ONE.Copy()
	k := 0

	for !v.IsZero() {
		switch {
		case !u.TestBit(0):
			u = u.ShiftRight(1)
			s = s.Mul(two)
			k++
		case !v.TestBit(0):
			v = v.ShiftRight(1)
			r = r.Mul(two)
			k++
		case u.Cmp(v) > 0:
			u = u.Sub(v).ShiftRight(1)
			r = r.Add(s)
			s = s.Mul(two)
			k++
		default:
			v = v.Sub(u).ShiftRight(1)
			s = s.Add(r)
			r = r.Mul(two)
			k++
		}
	}
	if !u.IsOne() {
		return nil, fmt.Errorf("bigint: modinverse: %w", ErrNotInvertible)
	}

	rModM, err := r.Mod(m)
	if err != nil {
		return nil, err
	}
	result := &Integer{}
	if !rModM.IsZero() {
		result = m.Sub(rModM)
	}

	// result == a^-1 * 2^k mod m (the "almost inverse"). Strip the 2^k
	// factor with k halving steps, each valid because m is odd.
	for i := 0; i < k; i++ {
		if result.TestBit(0) {
			result = result.Add(m)
		}
		result = result.ShiftRight(1)
	}
	return result, nil
}

// modInverseExtendedEuclid computes a^-1 mod m for an arbitrary modulus
// (odd or even) by running the extended Euclidean algorithm on (m, a mod m)
// and tracking the Bezout coefficient for a at each step, bounded by
// howManyIterations as a termination guard. A zero operand is rejected
// before the power-of-two special case is even considered, since no
// power-of-two check can rescue a non-invertible zero.
func modInverseExtendedEuclid(a, m *Integer) (*Integer, error) {
	if m.IsOne() {
		return &Integer{}, nil
	}
	aa, err := a.Mod(m)
	if err != nil {
		return nil, err
	}
	if aa.IsZero() {
		return nil, fmt.Errorf("bigint: modinverse: %w", ErrNotInvertible)
	}
	if isPowerOfTwo(m) {
		if !aa.TestBit(0) {
			return nil, fmt.Errorf("bigint: modinverse: %w", ErrNotInvertible)
		}
		return modPow2Inverse(aa, m.BitLen()-1), nil
	}

	r0, r1 := m.Copy(), aa.Copy()
	s0, s1 := &Integer{}, ONE.Copy()
	limit := howManyIterations(m)
	for i := 0; !r1.IsZero(); i++ {
		if i >= limit {
			return nil, fmt.Errorf("bigint: modinverse: %w", ErrNotInvertible)
		}
		qr, err := r0.Divide(r1)
		if err != nil {
			return nil, err
		}
		r0, r1 = r1, qr.Remainder
		s0, s1 = s1, s0.Sub(qr.Quotient.Mul(s1))
	}
	if !r0.IsOne() {
		return nil, fmt.Errorf("bigint: modinverse: %w", ErrNotInvertible)
	}
	return s0.Mod(m)
}

func isPowerOfTwo(x *Integer) bool {
	return x.sign > 0 && x.GetLowestSetBit() == x.BitLen()-1
}

// howManyIterations bounds the Euclidean recurrence: every two steps at
// least halve the remainder, so twice the bit length plus a small margin
// is enough.
func howManyIterations(m *Integer) int {
	return 2*m.BitLen() + 4
}
