package zkmod

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/hash"
	"github.com/taurusgroup/bigcore/pool"
)

// p, q are small Blum primes (3 mod 4); big enough that the structural
// checks in IsValid/Verify are meaningful without paying for a real
// 1024-bit search in every test run.
func testFactors(t *testing.T) (p, q *bigint.Integer) {
	t.Helper()
	// 10007 and 10103 are both prime and both 3 (mod 4).
	return bigint.ValueOf(10007), bigint.ValueOf(10103)
}

func testSetup(t *testing.T) (Private, Public, *pool.Pool) {
	t.Helper()
	p, q := testFactors(t)
	phi := p.Sub(bigint.ONE).Mul(q.Sub(bigint.ONE))
	n := p.Mul(q)
	return Private{P: p, Q: q, Phi: phi}, Public{N: n}, pool.NewPool(4)
}

func TestProofRoundTrip(t *testing.T) {
	priv, pub, pl := testSetup(t)
	defer pl.TearDown()

	proof, err := NewProof(hash.New(), priv, pub, pl)
	require.NoError(t, err)

	assert.True(t, proof.IsValid(pub))
	assert.True(t, proof.Verify(pub, hash.New(), pl))
}

func TestProofRejectsWrongModulus(t *testing.T) {
	priv, pub, pl := testSetup(t)
	defer pl.TearDown()

	proof, err := NewProof(hash.New(), priv, pub, pl)
	require.NoError(t, err)

	wrongPub := Public{N: pub.N.Add(bigint.ValueOf(2))}
	assert.False(t, proof.Verify(wrongPub, hash.New(), pl))
}

func TestProofRejectsTamperedResponse(t *testing.T) {
	priv, pub, pl := testSetup(t)
	defer pl.TearDown()

	proof, err := NewProof(hash.New(), priv, pub, pl)
	require.NoError(t, err)

	proof.Responses[0].X = proof.Responses[0].X.Add(bigint.ONE)
	assert.False(t, proof.Verify(pub, hash.New(), pl))
}

type wireResponse struct {
	A, B bool
	X, Z []byte
}

type wireProof struct {
	W         []byte
	Responses []wireResponse
}

func toWire(p *Proof) wireProof {
	w := wireProof{W: p.W.Bytes(), Responses: make([]wireResponse, len(p.Responses))}
	for i, r := range p.Responses {
		w.Responses[i] = wireResponse{A: r.A, B: r.B, X: r.X.Bytes(), Z: r.Z.Bytes()}
	}
	return w
}

func TestProofCBORRoundTrip(t *testing.T) {
	priv, pub, pl := testSetup(t)
	defer pl.TearDown()

	proof, err := NewProof(hash.New(), priv, pub, pl)
	require.NoError(t, err)

	data, err := cbor.Marshal(toWire(proof))
	require.NoError(t, err)

	var decoded wireProof
	require.NoError(t, cbor.Unmarshal(data, &decoded))

	assert.Equal(t, proof.W.Bytes(), decoded.W)
	require.Len(t, decoded.Responses, len(proof.Responses))
	assert.Equal(t, proof.Responses[0].X.Bytes(), decoded.Responses[0].X)
}

func TestVerifyIsSafeForConcurrentCallers(t *testing.T) {
	priv, pub, pl := testSetup(t)
	defer pl.TearDown()

	proof, err := NewProof(hash.New(), priv, pub, pl)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			if !proof.Verify(pub, hash.New(), pl) {
				return assert.AnError
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
