// Package params collects the compile-time tunables shared by the
// division/modular-arithmetic core and the domain packages built on top of
// it.
package params

const (
	// LimbBits is the width of a single limb in the little-endian
	// magnitude representation used throughout package bigint.
	LimbBits = 32

	// WhenBurnikelZiegler is the divisor length, in limbs, at or above
	// which Divide switches from schoolbook (Knuth algorithm D) division to the
	// recursive Burnikel-Ziegler algorithm.
	WhenBurnikelZiegler = 80

	StatParam = 80

	// SecParam is the computational security parameter, in bits: the
	// length of commitment decommitment strings. Hash digests
	// (hash.DigestLengthBytes) are twice SecBytes long.
	SecParam = 256
	SecBytes = SecParam / 8

	// ZKModIterations is a smaller challenge count for the Paillier-Blum
	// modulus proof than StatParam. Package zkmod does not use it: its
	// proofs always carry StatParam challenge rounds.
	ZKModIterations = 12

	BitsBlumPrime = 1024
	BitsPaillier  = 2 * BitsBlumPrime // = 2048

	BytesPaillier   = BitsPaillier / 8
	BytesCiphertext = 2 * BytesPaillier
)
