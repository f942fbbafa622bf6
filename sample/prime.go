// Package sample generates the random values the division/modular-
// arithmetic core treats as opaque inputs: Blum primes for a Paillier
// modulus, and units and non-units mod N.
//
// Primality testing itself is explicitly not part of the arithmetic core:
// this package uses math/big.Int.ProbablyPrime as that collaborator,
// converting across the boundary with bigint's big-endian Bytes/FromBytes.
package sample

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"sync"

	"github.com/taurusgroup/bigcore/bigint"
	"github.com/taurusgroup/bigcore/params"
	"github.com/taurusgroup/bigcore/pool"
)

const maxIterations = 255

// ErrMaxIterations is returned by the bounded retry loops below when rand
// keeps producing unusable candidates.
var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

func fromBig(b *big.Int) *bigint.Integer {
	x := bigint.FromBytes(b.Bytes())
	if b.Sign() < 0 {
		x = x.Negate()
	}
	return x
}

// primes returns all odd primes below the given bound, via a sieve of
// Eratosthenes.
func primes(below uint32) []uint32 {
	sieve := make([]bool, below)
	for i := 2; i < len(sieve); i++ {
		sieve[i] = true
	}
	for p := 2; p*p < len(sieve); p++ {
		if !sieve[p] {
			continue
		}
		for i := p << 1; i < len(sieve); i += p {
			sieve[i] = false
		}
	}
	nF := float64(below)
	out := make([]uint32, 0, int(nF/math.Log(nF)))
	for p := uint32(3); p < below; p++ {
		if sieve[p] {
			out = append(out, p)
		}
	}
	return out
}

// sieveSize is how many candidates past the initial random guess get
// checked in one sieve pass.
const sieveSize = 1 << 18

// primeBound is the upper bound on the sieving primes used to cross off
// composite candidates before running an expensive primality test.
const primeBound = 1 << 20

// blumPrimalityIterations matches the round count Go's own
// math/big.Int.ProbablyPrime uses for a non-Lucas-verified check.
const blumPrimalityIterations = 20

var (
	thePrimes  []uint32
	initPrimes sync.Once
)

var sievePool = sync.Pool{
	New: func() interface{} {
		sieve := make([]bool, sieveSize)
		return &sieve
	},
}

// tryBlumPrime draws one random params.BitsBlumPrime-bit candidate and
// sieves sieveSize numbers above it for the first p with p and (p-1)/2
// both prime. Returns nil, meaning "try again", far more often than it
// returns a prime.
func tryBlumPrime(rand io.Reader) *bigint.Integer {
	initPrimes.Do(func() {
		thePrimes = primes(primeBound)
	})

	bytes := make([]byte, (params.BitsBlumPrime+7)/8)
	if _, err := io.ReadFull(rand, bytes); err != nil {
		return nil
	}
	// p = 3 mod 4 is necessary for both p and (p-1)/2 to be prime.
	bytes[len(bytes)-1] |= 3
	// Setting the top two bits means p*q always has exactly twice p's bit
	// length, with no chance of falling one bit short.
	bytes[0] |= 0xC0
	base := new(big.Int).SetBytes(bytes)

	sievePtr := sievePool.Get().(*[]bool)
	sieve := *sievePtr
	defer sievePool.Put(sievePtr)
	for i := 0; i < len(sieve); i++ {
		sieve[i] = true
	}
	for i := 1; i+2 < len(sieve); i += 4 {
		sieve[i] = false
		sieve[i+1] = false
		sieve[i+2] = false
	}

	remainder := new(big.Int)
	for _, prime := range thePrimes {
		// x = 0 mod r rules out x; x = 1 mod r rules out (x-1)/2, so both
		// get crossed off starting from the first such offset past base.
		remainder.SetUint64(uint64(prime))
		remainder.Mod(base, remainder)
		r := int(remainder.Uint64())
		primeInt := int(prime)
		firstMultiple := primeInt - r
		if r == 0 {
			firstMultiple = 0
		}
		for i := firstMultiple; i+1 < len(sieve); i += primeInt {
			sieve[i] = false
			sieve[i+1] = false
		}
	}

	p := new(big.Int)
	q := new(big.Int)
	for delta := 0; delta < len(sieve); delta++ {
		if !sieve[delta] {
			continue
		}
		p.SetUint64(uint64(delta))
		p.Add(p, base)
		if p.BitLen() > params.BitsBlumPrime {
			return nil
		}
		q.Rsh(p, 1)
		// q fails far more often than p, so check it first.
		if !q.ProbablyPrime(blumPrimalityIterations) {
			continue
		}
		// A single Miller-Rabin round suffices once q is known prime.
		if !p.ProbablyPrime(0) {
			continue
		}
		return fromBig(p)
	}
	return nil
}

// Paillier searches for the two Blum primes p, q needed for a Paillier
// modulus N = p*q, spreading candidate draws across pl's workers.
func Paillier(rand io.Reader, pl *pool.Pool) (p, q *bigint.Integer) {
	reader := pool.NewLockedReader(rand)
	results := pl.Search(2, func() interface{} {
		cand := tryBlumPrime(reader)
		if cand == nil {
			return nil
		}
		return cand
	})
	p, q = results[0].(*bigint.Integer), results[1].(*bigint.Integer)
	return
}
