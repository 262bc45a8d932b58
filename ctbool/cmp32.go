package ctbool

// U32Neq0 returns true if x is different from 0.
func U32Neq0(x uint32) Bool {
	q := x | -x
	return Bool{(q | -q) >> 31}
}

// U32Eq0 returns true if x is equal to 0.
func U32Eq0(x uint32) Bool {
	return U32Neq0(x).Not()
}

// S32Neq0 returns true if x is different from 0.
func S32Neq0(x int32) Bool {
	q := uint32(x) | -uint32(x)
	return Bool{(q | -q) >> 31}
}

// S32Eq0 returns true if x is equal to 0.
func S32Eq0(x int32) Bool {
	return S32Neq0(x).Not()
}

// U32Eq returns true if x and y hold the same value.
func U32Eq(x, y uint32) Bool {
	return U32Eq0(x ^ y)
}

// U32Neq returns true if x and y hold different values.
func U32Neq(x, y uint32) Bool {
	return U32Neq0(x ^ y)
}

// S32Eq returns true if x and y hold the same value.
func S32Eq(x, y int32) Bool {
	return S32Eq0(x ^ y)
}

// S32Neq returns true if x and y hold different values.
func S32Neq(x, y int32) Bool {
	return S32Neq0(x ^ y)
}

// U32Gt returns true if x is strictly greater than y.
func U32Gt(x, y uint32) Bool {
	// If both operands are below 2^31, y-x has its high bit set
	// exactly when x > y. If exactly one operand is 2^31 or more,
	// the result is the high bit of x. If both are, subtracting
	// 2^31 from each brings us back to the first case with the
	// same difference.
	z := y - x
	return Bool{(z ^ ((x ^ y) & (x ^ z))) >> 31}
}

// U32Geq returns true if x is greater than or equal to y.
func U32Geq(x, y uint32) Bool {
	return U32Gt(y, x).Not()
}

// U32Lt returns true if x is strictly lower than y.
func U32Lt(x, y uint32) Bool {
	return U32Gt(y, x)
}

// U32Leq returns true if x is lower than or equal to y.
func U32Leq(x, y uint32) Bool {
	return U32Gt(x, y).Not()
}

// S32Gt returns true if x is strictly greater than y.
func S32Gt(x, y int32) Bool {
	// Unsigned arithmetic avoids any signed overflow. For operands
	// of identical sign, y-x has its high bit set exactly when
	// x > y; for operands of opposite signs, the result is the high
	// bit of y.
	ux := uint32(x)
	uy := uint32(y)
	z := uy - ux
	return Bool{(z ^ ((ux ^ uy) & (uy ^ z))) >> 31}
}

// S32Geq returns true if x is greater than or equal to y.
func S32Geq(x, y int32) Bool {
	return S32Gt(y, x).Not()
}

// S32Lt returns true if x is strictly lower than y.
func S32Lt(x, y int32) Bool {
	return S32Gt(y, x)
}

// S32Leq returns true if x is lower than or equal to y.
func S32Leq(x, y int32) Bool {
	return S32Gt(x, y).Not()
}

// S32Gt0 returns true if x is strictly greater than 0.
func S32Gt0(x int32) Bool {
	// High bit of -x is 0 if x == 0, but 1 if x > 0.
	q := uint32(x)
	return Bool{(^q & -q) >> 31}
}

// S32Lt0 returns true if x is strictly lower than 0.
func S32Lt0(x int32) Bool {
	return Bool{uint32(x) >> 31}
}

// S32Geq0 returns true if x is greater than or equal to 0.
func S32Geq0(x int32) Bool {
	return Bool{(uint32(x) >> 31) ^ 1}
}

// S32Leq0 returns true if x is lower than or equal to 0.
func S32Leq0(x int32) Bool {
	return S32Gt0(x).Not()
}

// S32Sign returns -1, 0 or 1, matching the sign of x.
func S32Sign(x int32) int32 {
	q := uint32(x)
	return -int32(q>>31) | int32(-q>>31)
}

// S32Mux returns x if ctl is true, y otherwise.
func S32Mux(ctl Bool, x, y int32) int32 {
	return y ^ (-int32(ctl.v) & (x ^ y))
}

// U32Mux returns x if ctl is true, y otherwise.
func U32Mux(ctl Bool, x, y uint32) uint32 {
	return y ^ (-ctl.v & (x ^ y))
}
