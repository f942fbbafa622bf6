package bigint

import "errors"

// Sentinel errors this package returns. Wrap these with
// fmt.Errorf("bigint: ...: %w", ErrXxx) at the point of failure so callers
// can still errors.Is against the sentinel.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNegativeModulus = errors.New("modulus must be positive")
	ErrNotInvertible   = errors.New("value has no modular inverse")
	ErrNegativeExponent = errors.New("negative exponent requires an invertible base")
)
