package arith

import "github.com/taurusgroup/bigcore/bigint"

// IsCoprime returns true if gcd(a, b) == 1.
func IsCoprime(a, b *bigint.Integer) bool {
	return bigint.GCDBinary(a, b).IsOne()
}

// IsValidModN reports whether every one of xs lies in [0, n), the range a
// value reduced mod n is always expected to occupy.
func IsValidModN(n *bigint.Integer, xs ...*bigint.Integer) bool {
	for _, x := range xs {
		if x == nil || x.Sign() < 0 || x.Cmp(n) >= 0 {
			return false
		}
	}
	return true
}
