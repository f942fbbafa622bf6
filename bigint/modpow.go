package bigint

import "fmt"

// This file implements modular exponentiation. An odd modulus is handled
// with Montgomery arithmetic, either plain square-and-multiply for a
// single-limb modulus or a sliding window for anything wider. An even
// modulus is factored into an odd part and a power of two, each
// exponentiated separately and recombined by CRT.

// ModPow returns base^exp mod m. A negative exponent requires base to be
// invertible modulo m.
func (base *Integer) ModPow(exp, m *Integer) (*Integer, error) {
	if m.sign <= 0 {
		return nil, fmt.Errorf("bigint: modpow: %w", ErrNegativeModulus)
	}
	if m.IsOne() {
		return &Integer{}, nil
	}
	if exp.sign < 0 {
		inv, err := base.ModInverse(m)
		if err != nil {
			return nil, fmt.Errorf("bigint: modpow: %w", ErrNegativeExponent)
		}
		return inv.ModPow(exp.Negate(), m)
	}
	if exp.IsZero() {
		return ONE.Copy(), nil
	}
	b, err := base.Mod(m)
	if err != nil {
		return nil, err
	}
	if m.TestBit(0) {
		return oddModPow(b, exp, m)
	}
	return evenModPow(b, exp, m)
}

// oddModPow computes base^exp mod m for an odd modulus m, via Montgomery
// arithmetic.
func oddModPow(base, exp, m *Integer) (*Integer, error) {
	ctx, err := NewMontgomeryContext(m)
	if err != nil {
		return nil, err
	}
	if m.length == 1 {
		return squareAndMultiply(base, exp, ctx), nil
	}
	return slidingWindow(base, exp, ctx), nil
}

// squareAndMultiply is the plain binary method, used for a single-limb
// modulus where a precomputed odd-power table would cost more than it
// saves.
func squareAndMultiply(base, exp *Integer, ctx *MontgomeryContext) *Integer {
	baseM := ctx.ToMontgomery(base)
	resultM := ctx.ToMontgomery(ONE)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		resultM = ctx.MonSquare(resultM)
		if exp.TestBit(i) {
			resultM = ctx.MonPro(resultM, baseM)
		}
	}
	return ctx.FromMontgomery(resultM)
}

// windowSizeFor returns the sliding-window width for an exponent of the
// given bit length. The thresholds are empirical (balancing the cost of
// precomputing odd powers against the savings from fewer multiplications)
// and are kept exactly as measured rather than re-derived.
func windowSizeFor(bitLen int) int {
	switch {
	case bitLen <= 7:
		return 2
	case bitLen <= 36:
		return 3
	case bitLen <= 140:
		return 4
	case bitLen <= 450:
		return 5
	case bitLen <= 1303:
		return 6
	case bitLen <= 3529:
		return 7
	default:
		return 8
	}
}

// slidingWindow implements left-to-right sliding-window exponentiation
// over a precomputed table of odd powers of base, all kept in Montgomery
// form throughout.
func slidingWindow(base, exp *Integer, ctx *MontgomeryContext) *Integer {
	k := windowSizeFor(exp.BitLen())
	numOdds := 1 << (k - 1)

	baseM := ctx.ToMontgomery(base)
	baseSquaredM := ctx.MonSquare(baseM)
	powers := make([]*Integer, numOdds)
	powers[0] = baseM
	for i := 1; i < numOdds; i++ {
		powers[i] = ctx.MonPro(powers[i-1], baseSquaredM)
	}

	resultM := ctx.ToMontgomery(ONE)
	bitLen := exp.BitLen()
	for i := bitLen - 1; i >= 0; {
		if !exp.TestBit(i) {
			resultM = ctx.MonSquare(resultM)
			i--
			continue
		}
		l := i - k + 1
		if l < 0 {
			l = 0
		}
		for !exp.TestBit(l) {
			l++
		}
		windowVal := 0
		for j := i; j >= l; j-- {
			windowVal <<= 1
			if exp.TestBit(j) {
				windowVal |= 1
			}
		}
		for j := i; j >= l; j-- {
			resultM = ctx.MonSquare(resultM)
		}
		resultM = ctx.MonPro(resultM, powers[(windowVal-1)/2])
		i = l - 1
	}
	return ctx.FromMontgomery(resultM)
}

// evenModPow computes base^exp mod m for an even modulus by factoring
// m = q * 2^j with q odd, exponentiating modulo each factor separately,
// and recombining with Garner's CRT formula.
func evenModPow(base, exp, m *Integer) (*Integer, error) {
	j := m.GetLowestSetBit()
	qr, err := m.Divide(getPowerOfTwo(j))
	if err != nil {
		return nil, err
	}
	q := qr.Quotient

	bq, err := base.Mod(q)
	if err != nil {
		return nil, err
	}
	rq, err := oddModPow(bq, exp, q)
	if err != nil {
		return nil, err
	}
	r2j, err := pow2ModPow(base, exp, j)
	if err != nil {
		return nil, err
	}

	twoJ := getPowerOfTwo(j)
	qInv := modPow2Inverse(q, j)

	diff, err := r2j.Sub(rq).Mod(twoJ)
	if err != nil {
		return nil, err
	}
	h, err := diff.Mul(qInv).Mod(twoJ)
	if err != nil {
		return nil, err
	}
	result, err := rq.Add(q.Mul(h)).Mod(m)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// pow2ModPow computes base^exp mod 2^j. Reduction modulo a power of two is
// a mask, so this needs no Montgomery machinery of its own.
func pow2ModPow(base, exp *Integer, j int) (*Integer, error) {
	modulus := getPowerOfTwo(j)
	b, err := base.Mod(modulus)
	if err != nil {
		return nil, err
	}
	result := ONE.Copy()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result, err = result.Mul(result).Mod(modulus)
		if err != nil {
			return nil, err
		}
		if exp.TestBit(i) {
			result, err = result.Mul(b).Mod(modulus)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// modPow2Inverse computes q^-1 mod 2^j for odd q, by 2-adic Newton
// iteration: y = 1 is already correct mod 2, and each round of
// y = y*(2 - q*y) mod 2^(2k) doubles the number of correct low bits.
func modPow2Inverse(q *Integer, j int) *Integer {
	y := ONE.Copy()
	correctBits := 1
	for correctBits < j {
		nextBits := correctBits * 2
		if nextBits > j {
			nextBits = j
		}
		modK := getPowerOfTwo(nextBits)
		qy := q.Mul(y)
		y = y.Mul(ValueOf(2).Sub(qy))
		y, _ = y.Mod(modK)
		correctBits = nextBits
	}
	return y
}
