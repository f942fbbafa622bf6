package arith

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taurusgroup/bigcore/bigint"
)

func randPrimeish(r *mrand.Rand, bits int) *bigint.Integer {
	buf := make([]byte, (bits+7)/8)
	r.Read(buf)
	x := bigint.FromBytes(buf)
	limbs := x.Bytes()
	if len(limbs) == 0 {
		return bigint.ValueOf(3)
	}
	limbs[len(limbs)-1] |= 1 // force odd, never a literal primality claim
	x = bigint.FromBytes(limbs)
	if x.Cmp(bigint.ValueOf(3)) < 0 {
		return bigint.ValueOf(3)
	}
	return x
}

// sampleCoprime returns two odd, pairwise coprime values a, b and their
// product c.
func sampleCoprime(r *mrand.Rand) (a, b, c *bigint.Integer) {
	for {
		a = randPrimeish(r, 128)
		b = randPrimeish(r, 128)
		if bigint.GCDBinary(a, b).IsOne() {
			return a, b, a.Mul(b)
		}
	}
}

func TestModulusExpMatchesFactoredAndUnfactored(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	p, q, n := sampleCoprime(r)

	mFast, err := ModulusFromFactors(p, q)
	require.NoError(t, err)
	mSlow := ModulusFromN(n)
	assert.Equal(t, 0, mFast.N().Cmp(mSlow.N()))

	x, err := bigint.FromBytes([]byte{7, 9, 11}).Mod(n)
	require.NoError(t, err)
	e := bigint.ValueOf(12345)

	want, err := x.ModPow(e, n)
	require.NoError(t, err)

	gotFast, err := mFast.Exp(x, e)
	require.NoError(t, err)
	gotSlow, err := mSlow.Exp(x, e)
	require.NoError(t, err)

	assert.Equal(t, 0, want.Cmp(gotFast))
	assert.Equal(t, 0, want.Cmp(gotSlow))
}

func TestModulusExpIMatchesNegativeExponent(t *testing.T) {
	r := mrand.New(mrand.NewSource(1))
	p, q, n := sampleCoprime(r)

	mFast, err := ModulusFromFactors(p, q)
	require.NoError(t, err)
	mSlow := ModulusFromN(n)

	x, err := bigint.ValueOf(5).Mod(n)
	require.NoError(t, err)
	eNeg := bigint.ValueOf(-17)

	want, err := x.ModPow(eNeg, n)
	require.NoError(t, err)

	gotFast, err := mFast.ExpI(x, eNeg)
	require.NoError(t, err)
	gotSlow, err := mSlow.ExpI(x, eNeg)
	require.NoError(t, err)

	assert.Equal(t, 0, want.Cmp(gotFast))
	assert.Equal(t, 0, want.Cmp(gotSlow))
}

func TestIsCoprime(t *testing.T) {
	assert.True(t, IsCoprime(bigint.ValueOf(7), bigint.ValueOf(15)))
	assert.False(t, IsCoprime(bigint.ValueOf(6), bigint.ValueOf(15)))
}

func TestIsValidModN(t *testing.T) {
	n := bigint.ValueOf(97)
	assert.True(t, IsValidModN(n, bigint.ValueOf(0), bigint.ValueOf(96)))
	assert.False(t, IsValidModN(n, bigint.ValueOf(97)))
	assert.False(t, IsValidModN(n, bigint.ValueOf(-1)))
	assert.False(t, IsValidModN(n, nil))
}
