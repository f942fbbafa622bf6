package bigint

// This file is the one place the core reaches outside its own limb
// representation: big-endian byte encoding, the same convention
// math/big.Int uses for SetBytes/Bytes. It exists so collaborators (random
// sampling, serialization) can cross the boundary without the core
// exposing its internal little-endian limb layout. It is not a text
// format: decimal/hex parsing stays out of scope.

// FromBytes interprets buf as a non-negative integer in big-endian byte
// order, the same convention as math/big.Int.SetBytes.
func FromBytes(buf []byte) *Integer {
	limbs := make([]uint32, (len(buf)+3)/4)
	for i, b := range buf {
		pos := len(buf) - 1 - i
		limbs[pos/4] |= uint32(b) << (8 * uint(pos%4))
	}
	return newFromLimbs(1, limbs)
}

// Bytes returns the big-endian byte encoding of |x|, with no leading zero
// byte, the same convention as math/big.Int.Bytes.
func (x *Integer) Bytes() []byte {
	if x.length == 0 {
		return nil
	}
	n := x.length * 4
	out := make([]byte, n)
	for i, limb := range x.limbs {
		out[n-4*i-1] = byte(limb)
		out[n-4*i-2] = byte(limb >> 8)
		out[n-4*i-3] = byte(limb >> 16)
		out[n-4*i-4] = byte(limb >> 24)
	}
	i := 0
	for i < len(out)-1 && out[i] == 0 {
		i++
	}
	return out[i:]
}
