package paillier

import (
	"crypto/rand"

	"github.com/taurusgroup/bigcore/pool"
	"github.com/taurusgroup/bigcore/sample"
)

// KeyGen generates a fresh Paillier key pair, spreading the Blum-prime
// search across pl's workers.
func KeyGen(pl *pool.Pool) (pk *PublicKey, sk *SecretKey) {
	p, q := sample.Paillier(rand.Reader, pl)
	sk = NewSecretKeyFromPrimes(p, q)
	pk = sk.PublicKey
	return
}
