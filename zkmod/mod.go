// Package zkmod implements a Fiat-Shamir, non-interactive Zero-Knowledge
// proof that a public modulus N is a Blum integer: N = p*q with p, q odd
// primes that are both 3 (mod 4). This is exactly the structural property
// a Paillier modulus needs to be safe for the CRT-based decryption arith
// implements.
package zkmod

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/taurusgroup/bigcore/arith"
	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/hash"
	"github.com/taurusgroup/bigcore/params"
	"github.com/taurusgroup/bigcore/pool"
	"github.com/taurusgroup/bigcore/sample"
)

// Public is the modulus being proven a Blum integer.
type Public struct {
	N *bigint.Integer
}

// Private is the factorization known only to the prover.
type Private struct {
	P, Q *bigint.Integer
	Phi  *bigint.Integer
}

// Response is one round's worth of evidence: y' = (-1)^A * W^B * y is a
// quadratic residue with fourth root X, and Z is y's N-th root mod N.
type Response struct {
	A, B bool
	X, Z *bigint.Integer
}

// Proof is a complete zkmod transcript: a quadratic non-residue W and one
// Response per challenge round.
type Proof struct {
	W         *bigint.Integer
	Responses [params.StatParam]Response
}

func probablyPrime(x *bigint.Integer) bool {
	return new(big.Int).SetBytes(x.Bytes()).ProbablyPrime(20)
}

func jacobi(x, n *bigint.Integer) int {
	xBig := new(big.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		xBig.Neg(xBig)
	}
	nBig := new(big.Int).SetBytes(n.Bytes())
	return big.Jacobi(xBig, nBig)
}

// isQRmodPQ reports whether y is a quadratic residue mod both p and q, via
// Euler's criterion: y^((p-1)/2) = 1 (mod p).
func isQRmodPQ(y, pHalf, qHalf, p, q *bigint.Integer) (bool, error) {
	yp, err := y.ModPow(pHalf, p)
	if err != nil {
		return false, err
	}
	yq, err := y.ModPow(qHalf, q)
	if err != nil {
		return false, err
	}
	return yp.IsOne() && yq.IsOne(), nil
}

// fourthRootExponent returns e such that (qr^e)^4 = qr for any quadratic
// residue qr mod n = p*q, given phi = (p-1)(q-1) and p = q = 3 (mod 4):
//
//	e' = (phi+4)/8,  e = e'^2 (mod phi)
func fourthRootExponent(phi *bigint.Integer) (*bigint.Integer, error) {
	e := bigint.ValueOf(4).Add(phi)
	qr, err := e.Divide(bigint.ValueOf(8))
	if err != nil {
		return nil, err
	}
	e = qr.Quotient
	e = e.Mul(e)
	return e.Mod(phi)
}

// makeQuadraticResidue finds a, b such that y' = (-1)^a * w^b * y is a QR
// mod both p and q, trying the four sign/w combinations in turn. Leaking
// a, b, y' is fine; leaking pHalf/qHalf (derived from the factorization)
// is not.
func makeQuadraticResidue(y, w, pHalf, qHalf, n, p, q *bigint.Integer) (a, b bool, out *bigint.Integer, err error) {
	out, err = y.Mod(n)
	if err != nil {
		return
	}
	if ok, e := isQRmodPQ(out, pHalf, qHalf, p, q); e != nil {
		return false, false, nil, e
	} else if ok {
		return
	}

	out = n.Sub(out)
	a, b = true, false
	if ok, e := isQRmodPQ(out, pHalf, qHalf, p, q); e != nil {
		return false, false, nil, e
	} else if ok {
		return
	}

	out = out.Mul(w)
	out, err = out.Mod(n)
	if err != nil {
		return
	}
	a, b = true, true
	if ok, e := isQRmodPQ(out, pHalf, qHalf, p, q); e != nil {
		return false, false, nil, e
	} else if ok {
		return
	}

	out = n.Sub(out)
	a, b = false, true
	return
}

func challenge(h *hash.Hash, n, w *bigint.Integer) ([]*bigint.Integer, error) {
	if err := h.WriteAny(n, w); err != nil {
		return nil, fmt.Errorf("zkmod: challenge: %w", err)
	}
	es := make([]*bigint.Integer, params.StatParam)
	digest := h.Digest()
	for i := range es {
		es[i] = sample.ModN(digest, n)
	}
	return es, nil
}

// NewProof produces a Proof that public.N is a Blum integer, using
// private's factorization. pl spreads the per-round work across workers.
func NewProof(h *hash.Hash, private Private, public Public, pl *pool.Pool) (*Proof, error) {
	n, p, q, phi := public.N, private.P, private.Q, private.Phi

	nModulus, err := arith.ModulusFromFactors(p, q)
	if err != nil {
		return nil, fmt.Errorf("zkmod: new proof: %w", err)
	}
	pHalf := p.ShiftRight(1)
	qHalf := q.ShiftRight(1)

	w := sample.QNR(rand.Reader, n)

	nInverse, err := n.ModInverse(phi)
	if err != nil {
		return nil, fmt.Errorf("zkmod: new proof: N not invertible mod phi: %w", err)
	}
	e, err := fourthRootExponent(phi)
	if err != nil {
		return nil, fmt.Errorf("zkmod: new proof: %w", err)
	}

	ys, err := challenge(h, n, w)
	if err != nil {
		return nil, err
	}

	var rs [params.StatParam]Response
	errs := pl.Parallelize(params.StatParam, func(i int) interface{} {
		y := ys[i]

		z, err := nModulus.Exp(y, nInverse)
		if err != nil {
			return err
		}

		a, b, yPrime, err := makeQuadraticResidue(y, w, pHalf, qHalf, n, p, q)
		if err != nil {
			return err
		}
		x, err := nModulus.Exp(yPrime, e)
		if err != nil {
			return err
		}

		rs[i] = Response{A: a, B: b, X: x, Z: z}
		return nil
	})
	for _, e := range errs {
		if err, ok := e.(error); ok {
			return nil, fmt.Errorf("zkmod: new proof: %w", err)
		}
	}

	return &Proof{W: w, Responses: rs}, nil
}

// IsValid does a cheap, factorization-free structural check of p against
// public's N: every X and Z value it carries is in range, and W is a
// quadratic non-residue. It does not recompute the Fiat-Shamir challenge,
// so it cannot replace Verify.
func (p *Proof) IsValid(public Public) bool {
	if p == nil {
		return false
	}
	n := public.N
	if jacobi(p.W, n) != -1 {
		return false
	}
	if !arith.IsValidModN(n, p.W) {
		return false
	}
	for _, r := range p.Responses {
		if !arith.IsValidModN(n, r.X, r.Z) {
			return false
		}
	}
	return true
}

// Verify checks r against the shared y = challenge value and w: x^4 = y'
// (mod n), z^n = y (mod n).
func (r *Response) Verify(n, w, y *bigint.Integer) (bool, error) {
	zn, err := r.Z.ModPow(n, n)
	if err != nil {
		return false, err
	}
	if zn.Cmp(y) != 0 {
		return false, nil
	}

	x2 := r.X.Mul(r.X)
	x4, err := x2.Mul(x2).Mod(n)
	if err != nil {
		return false, err
	}

	yPrime := y
	if r.A {
		yPrime = n.Sub(yPrime)
	}
	if r.B {
		yPrime = yPrime.Mul(w)
	}
	yPrime, err = yPrime.Mod(n)
	if err != nil {
		return false, err
	}

	return x4.Cmp(yPrime) == 0, nil
}

// Verify checks that p is a valid Blum-integer proof for public, using h
// to recompute the Fiat-Shamir challenge and pl to parallelize the
// per-round checks.
func (p *Proof) Verify(public Public, h *hash.Hash, pl *pool.Pool) bool {
	if p == nil {
		return false
	}
	n := public.N

	if !n.TestBit(0) || probablyPrime(n) {
		return false
	}
	if jacobi(p.W, n) != -1 {
		return false
	}
	if !arith.IsValidModN(n, p.W) {
		return false
	}

	ys, err := challenge(h, n, p.W)
	if err != nil {
		return false
	}

	verifications := pl.Parallelize(params.StatParam, func(i int) interface{} {
		if !arith.IsValidModN(n, p.Responses[i].X, p.Responses[i].Z) {
			return false
		}
		ok, err := p.Responses[i].Verify(n, p.W, ys[i])
		if err != nil {
			return false
		}
		return ok
	})
	for _, v := range verifications {
		if !v.(bool) {
			return false
		}
	}
	return true
}
