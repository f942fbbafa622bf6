package sample

import (
	"io"
	"math/big"

	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/params"
)

// ModN samples a uniform element of Z_n by rejection sampling: draw
// ceil(bitlen(n)/8) random bytes and retry until the result lands below n.
func ModN(rand io.Reader, n *bigint.Integer) *bigint.Integer {
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out := bigint.FromBytes(buf)
		if out.Cmp(n) < 0 {
			return out
		}
	}
}

// UnitModN samples a uniform unit of Z_n*, i.e. a value coprime to n.
func UnitModN(rand io.Reader, n *bigint.Integer) *bigint.Integer {
	for i := 0; i < maxIterations; i++ {
		u := ModN(rand, n)
		if bigint.GCDBinary(u, n).IsOne() {
			return u
		}
	}
	panic(ErrMaxIterations)
}

// QNR samples a random quadratic non-residue mod n, using math/big's
// Jacobi symbol as the collaborator that decides residuosity.
func QNR(rand io.Reader, n *bigint.Integer) *bigint.Integer {
	nBig := new(big.Int).SetBytes(n.Bytes())
	buf := make([]byte, params.BitsPaillier/8)
	w := new(big.Int)
	for i := 0; i < maxIterations; i++ {
		mustReadBits(rand, buf)
		w.SetBytes(buf)
		w.Mod(w, nBig)
		if big.Jacobi(w, nBig) == -1 {
			return fromBig(w)
		}
	}
	panic(ErrMaxIterations)
}
