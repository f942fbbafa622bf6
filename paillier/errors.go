package paillier

import "errors"

var (
	ErrPrimeNil          = errors.New("paillier: prime is nil")
	ErrPrimeBadLength    = errors.New("paillier: prime factor is not the right bit length")
	ErrNotBlum           = errors.New("paillier: prime factor is not 3 (mod 4)")
	ErrNotSafePrime      = errors.New("paillier: (p-1)/2 is not prime")
	ErrInvalidCiphertext = errors.New("paillier: ciphertext out of range or not coprime to N")
)
