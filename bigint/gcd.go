package bigint

// GCDBinary implements the binary (Stein's) GCD algorithm. The result is
// always non-negative; GCDBinary(0, 0) is 0.
//
// Once both operands have been stripped to odd values, iterations that
// would otherwise keep subtracting a short operand from a much longer one
// reduce instead with an ordinary Mod: once the longer operand's limb
// count exceeds 1.2x the shorter's, a single division converges faster
// than repeated shift-and-subtract.
func GCDBinary(x, y *Integer) *Integer {
	ax, ay := x.Abs(), y.Abs()
	if ax.IsZero() {
		return ay.Copy()
	}
	if ay.IsZero() {
		return ax.Copy()
	}
	if ax.length == 1 && ay.length == 1 {
		return ValueOf(int64(gcdUint32(ax.limbs[0], ay.limbs[0])))
	}

	shift := ax.GetLowestSetBit()
	if s := ay.GetLowestSetBit(); s < shift {
		shift = s
	}
	u := ax.ShiftRight(shift)
	v := ay.ShiftRight(shift)
	if s := u.GetLowestSetBit(); s > 0 {
		u = u.ShiftRight(s)
	}
	if s := v.GetLowestSetBit(); s > 0 {
		v = v.ShiftRight(s)
	}

	for !v.IsZero() {
		if s := v.GetLowestSetBit(); s > 0 {
			v = v.ShiftRight(s)
		}
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		if v.length*5 > u.length*6 {
			r, _ := v.Mod(u)
			v = r
		} else {
			v = v.Sub(u)
		}
	}
	return u.ShiftLeft(shift)
}

func gcdUint32(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
