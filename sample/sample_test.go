package sample

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taurusgroup/bigcore/bigint"
)

func TestModNStaysBelowModulus(t *testing.T) {
	n := bigint.ValueOf(1_000_003)
	for i := 0; i < 64; i++ {
		x := ModN(rand.Reader, n)
		assert.True(t, x.Cmp(n) < 0)
		assert.True(t, x.Sign() >= 0)
	}
}

func TestUnitModNIsCoprime(t *testing.T) {
	n := bigint.ValueOf(97 * 89)
	for i := 0; i < 32; i++ {
		u := UnitModN(rand.Reader, n)
		assert.True(t, bigint.GCDBinary(u, n).IsOne())
	}
}

func TestQNRIsNonResidue(t *testing.T) {
	n := bigint.ValueOf(97 * 89)
	w := QNR(rand.Reader, n)
	assert.True(t, w.Sign() >= 0)
	assert.True(t, w.Cmp(n) < 0)
	assert.Equal(t, -1, big.Jacobi(new(big.Int).SetBytes(w.Bytes()), big.NewInt(97*89)))
}
