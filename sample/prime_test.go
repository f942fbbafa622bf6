package sample

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/bigcore/pool"
)

func TestPrimesSieveMatchesTrialDivision(t *testing.T) {
	ps := primes(1000)
	require.NotEmpty(t, ps)
	for _, p := range ps {
		assert.True(t, big.NewInt(int64(p)).ProbablyPrime(20), "%d reported prime but isn't", p)
	}
	// 997 is the largest prime below 1000.
	assert.Equal(t, uint32(997), ps[len(ps)-1])
}

func TestPaillierReturnsDistinctBlumPrimes(t *testing.T) {
	if testing.Short() {
		t.Skip("prime search is slow")
	}
	pl := pool.NewPool(0)
	defer pl.TearDown()

	p, q := Paillier(rand.Reader, pl)
	require.NotEqual(t, 0, p.Cmp(q))

	pBig := new(big.Int).SetBytes(p.Bytes())
	qBig := new(big.Int).SetBytes(q.Bytes())
	assert.True(t, pBig.ProbablyPrime(20))
	assert.True(t, qBig.ProbablyPrime(20))

	pm1 := new(big.Int).Sub(pBig, big.NewInt(1))
	pm1.Rsh(pm1, 1)
	assert.True(t, pm1.ProbablyPrime(20))
}
