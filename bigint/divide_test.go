package bigint

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivideByZeroReturnsError(t *testing.T) {
	_, err := ONE.Divide(ZERO)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivideOfZeroIsZeroZero(t *testing.T) {
	qr, err := ZERO.Divide(ValueOf(7))
	require.NoError(t, err)
	assert.True(t, qr.Quotient.IsZero())
	assert.True(t, qr.Remainder.IsZero())
}

// TestDivideMatchesMathBig exercises the schoolbook path (small divisors)
// and relies on math/big's truncating QuoRem as the oracle.
func TestDivideMatchesMathBig(t *testing.T) {
	r := mrand.New(mrand.NewSource(20))
	for i := 0; i < 300; i++ {
		a := randInt(r, 400)
		b := randInt(r, 128)
		if b.IsZero() {
			continue
		}

		qr, err := a.Divide(b)
		require.NoError(t, err)

		wantQ, wantR := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
		assert.Equal(t, wantQ.String(), toBig(qr.Quotient).String(), "a=%s b=%s", toBig(a), toBig(b))
		assert.Equal(t, wantR.String(), toBig(qr.Remainder).String(), "a=%s b=%s", toBig(a), toBig(b))
	}
}

func TestDivideReconstructsDividend(t *testing.T) {
	r := mrand.New(mrand.NewSource(21))
	for i := 0; i < 200; i++ {
		a := randInt(r, 512)
		b := randInt(r, 200)
		if b.IsZero() {
			continue
		}

		qr, err := a.Divide(b)
		require.NoError(t, err)

		reconstructed := qr.Quotient.Mul(b).Add(qr.Remainder)
		assert.Equal(t, 0, a.Cmp(reconstructed))
	}
}

func TestModIsAlwaysNonNegative(t *testing.T) {
	r := mrand.New(mrand.NewSource(22))
	for i := 0; i < 200; i++ {
		a := randInt(r, 300)
		m := randInt(r, 128).Abs()
		if m.IsZero() {
			continue
		}

		rem, err := a.Mod(m)
		require.NoError(t, err)
		assert.True(t, rem.Sign() >= 0)
		assert.True(t, rem.Cmp(m) < 0)

		want := new(big.Int).Mod(toBig(a), toBig(m))
		assert.Equal(t, want.String(), toBig(rem).String())
	}
}

func TestDivideAndRemainderByIntegerMatchesDivide(t *testing.T) {
	r := mrand.New(mrand.NewSource(23))
	for i := 0; i < 100; i++ {
		a := randInt(r, 256)
		d := int32(r.Int31())
		if d == 0 {
			d = 1
		}

		q, rem, err := DivideAndRemainderByInteger(a, d)
		require.NoError(t, err)

		qr, err := a.Divide(ValueOf(int64(d)))
		require.NoError(t, err)

		assert.Equal(t, 0, q.Cmp(qr.Quotient))
		assert.Equal(t, 0, ValueOf(int64(rem)).Cmp(qr.Remainder))
	}
}

func TestDivideAndRemainderByIntegerRejectsZero(t *testing.T) {
	_, _, err := DivideAndRemainderByInteger(ValueOf(1), 0)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

// TestDivideHandlesSingleLimbDivisor exercises divideArrayByUint32 directly
// through Divide.
func TestDivideHandlesSingleLimbDivisor(t *testing.T) {
	a := ValueOf(1_000_000_007)
	b := ValueOf(97)
	qr, err := a.Divide(b)
	require.NoError(t, err)

	want := new(big.Int).Quo(toBig(a), toBig(b))
	assert.Equal(t, want.String(), toBig(qr.Quotient).String())
}

func TestDivideDividendSmallerThanDivisor(t *testing.T) {
	a := ValueOf(5)
	b := ValueOf(9999)
	qr, err := a.Divide(b)
	require.NoError(t, err)
	assert.True(t, qr.Quotient.IsZero())
	assert.Equal(t, 0, a.Cmp(qr.Remainder))
}
