// Package arith wraps bigint.Integer with CRT-accelerated modular
// exponentiation: a Modulus that knows its own prime factorization
// exponentiates mod each factor separately and recombines with Garner's
// formula, instead of paying for one exponentiation at full width.
package arith

import "github.com/taurusgroup/bigcore/bigint"

// Modulus wraps an odd (or arbitrary) bigint.Integer and, when the
// factorization into two coprime parts p, q is known, accelerates Exp by
// computing two smaller exponentiations instead of one large one.
type Modulus struct {
	n *bigint.Integer

	p, q       *bigint.Integer
	pNat, pInv *bigint.Integer // pInv = p^-1 (mod q)
}

// ModulusFromN wraps n with no known factorization: Exp falls back to a
// single call to bigint's ModPow.
func ModulusFromN(n *bigint.Integer) *Modulus {
	return &Modulus{n: n}
}

// ModulusFromFactors builds the cached values needed to accelerate
// exponentiation mod p*q.
func ModulusFromFactors(p, q *bigint.Integer) (*Modulus, error) {
	n := p.Mul(q)
	pInv, err := p.ModInverse(q)
	if err != nil {
		return nil, err
	}
	return &Modulus{
		n:    n,
		p:    p,
		q:    q,
		pNat: p.Copy(),
		pInv: pInv,
	}, nil
}

// N returns the wrapped modulus value.
func (m *Modulus) N() *bigint.Integer {
	return m.n
}

// Exp returns x^e mod n. When the factorization is known it computes
// x^e mod p and x^e mod q separately and recombines with Garner's CRT
// formula: r = xp + p * [p^-1 (mod q)] * (xq - xp) (mod n).
func (m *Modulus) Exp(x, e *bigint.Integer) (*bigint.Integer, error) {
	if !m.hasFactorization() {
		return x.ModPow(e, m.n)
	}
	xp, err := x.ModPow(e, m.p)
	if err != nil {
		return nil, err
	}
	xq, err := x.ModPow(e, m.q)
	if err != nil {
		return nil, err
	}
	diff, err := xq.Sub(xp).Mod(m.n)
	if err != nil {
		return nil, err
	}
	r := diff.Mul(m.pInv)
	r, err = r.Mod(m.n)
	if err != nil {
		return nil, err
	}
	r = r.Mul(m.pNat)
	r, err = r.Mod(m.n)
	if err != nil {
		return nil, err
	}
	r = r.Add(xp)
	return r.Mod(m.n)
}

// ExpI is Exp for a (possibly negative) signed exponent: a negative
// exponent inverts the result of exponentiating by its absolute value.
func (m *Modulus) ExpI(x *bigint.Integer, e *bigint.Integer) (*bigint.Integer, error) {
	y, err := m.Exp(x, e.Abs())
	if err != nil {
		return nil, err
	}
	if e.Sign() >= 0 {
		return y, nil
	}
	return y.ModInverse(m.n)
}

func (m *Modulus) hasFactorization() bool {
	return m.p != nil && m.q != nil && m.pNat != nil && m.pInv != nil
}
