package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// tstNaN2 returns true if either operand (or both) is NaN.
func tstNaN2(x, y *Int) ctbool.Bool {
	return ctbool.FromU32((x.w[0] | y.w[0]) >> 31)
}

// valEq compares two same-size integers for equality, ignoring NaN flags.
func valEq(x, y *Int) ctbool.Bool {
	ln := wordLen(x.w[0] & 0x7FFFFFFF)
	var r uint32
	for u := 0; u < ln; u++ {
		r |= x.w[1+u] ^ y.w[1+u]
	}
	return ctbool.U32Eq0(r)
}

// valLt compares two same-size integers, ignoring NaN flags. It performs
// a full subtraction and combines the final borrow with the operand sign
// bits: the mathematical sign of x-y is the XOR of the two sign bits and
// of the borrow.
func valLt(x, y *Int) ctbool.Bool {
	ln := wordLen(x.w[0] & 0x7FFFFFFF)
	var cc uint32
	for u := 0; u < ln; u++ {
		wz := x.w[u+1] - y.w[u+1] - cc
		cc = wz >> 31
	}
	cc ^= (x.w[ln] ^ y.w[ln]) >> 30
	return ctbool.FromU32(cc)
}

// valCmp is the three-way variant of valLt; it additionally accumulates a
// zero detector over the difference words. Result is -1, 0 or 1 as a
// uint32.
func valCmp(x, y *Int) uint32 {
	ln := wordLen(x.w[0] & 0x7FFFFFFF)
	var cc, t uint32
	for u := 0; u < ln; u++ {
		wz := x.w[u+1] - y.w[u+1] - cc
		cc = wz >> 31
		t |= wz
	}
	cc ^= (x.w[ln] ^ y.w[ln]) >> 30
	return ctbool.U32Neq0(t).U32() | -cc
}

// Eq0 returns true if x is zero. A NaN operand compares false under
// every predicate.
func (x *Int) Eq0() ctbool.Bool {
	return valEq0(x).And(x.IsNaN().Not())
}

// Neq0 returns true if x is non-zero and not NaN.
func (x *Int) Neq0() ctbool.Bool {
	return valEq0(x).Or(x.IsNaN()).Not()
}

// Gt0 returns true if x is strictly positive.
func (x *Int) Gt0() ctbool.Bool {
	return valEq0(x).Or(valLt0(x)).Or(x.IsNaN()).Not()
}

// Lt0 returns true if x is strictly negative.
func (x *Int) Lt0() ctbool.Bool {
	return valLt0(x).And(x.IsNaN().Not())
}

// Geq0 returns true if x is zero or positive.
func (x *Int) Geq0() ctbool.Bool {
	return valLt0(x).Or(x.IsNaN()).Not()
}

// Leq0 returns true if x is zero or negative.
func (x *Int) Leq0() ctbool.Bool {
	return valEq0(x).Or(valLt0(x)).And(x.IsNaN().Not())
}

// Eq returns true if x and y hold the same value. The result is false on
// a shape mismatch or when either operand is NaN (a NaN is not even equal
// to itself, mirroring floating-point behavior).
func (x *Int) Eq(y *Int) ctbool.Bool {
	if !sameShape(x.w[0], y.w[0]) {
		return ctbool.False
	}
	return valEq(x, y).And(tstNaN2(x, y).Not())
}

// Neq returns true if x and y hold different values; false on shape
// mismatch or NaN.
func (x *Int) Neq(y *Int) ctbool.Bool {
	if !sameShape(x.w[0], y.w[0]) {
		return ctbool.False
	}
	return valEq(x, y).Or(tstNaN2(x, y)).Not()
}

// Lt returns true if x < y; false on shape mismatch or NaN.
func (x *Int) Lt(y *Int) ctbool.Bool {
	if !sameShape(x.w[0], y.w[0]) {
		return ctbool.False
	}
	return valLt(x, y).And(tstNaN2(x, y).Not())
}

// Leq returns true if x <= y; false on shape mismatch or NaN.
func (x *Int) Leq(y *Int) ctbool.Bool {
	if !sameShape(x.w[0], y.w[0]) {
		return ctbool.False
	}
	return valLt(y, x).Or(tstNaN2(x, y)).Not()
}

// Gt returns true if x > y; false on shape mismatch or NaN.
func (x *Int) Gt(y *Int) ctbool.Bool {
	if !sameShape(x.w[0], y.w[0]) {
		return ctbool.False
	}
	return valLt(y, x).And(tstNaN2(x, y).Not())
}

// Geq returns true if x >= y; false on shape mismatch or NaN.
func (x *Int) Geq(y *Int) ctbool.Bool {
	if !sameShape(x.w[0], y.w[0]) {
		return ctbool.False
	}
	return valLt(x, y).Or(tstNaN2(x, y)).Not()
}

// Sign returns -1, 0 or 1 matching the sign of x, or 0 if x is NaN.
func (x *Int) Sign() int32 {
	w := (valEq0(x).U32() ^ 1) | -valLt0(x).U32()
	w &= (x.w[0] >> 31) - 1
	return int32(w)
}

// Cmp returns -1, 0 or 1 as x is lower than, equal to, or greater than
// y; 0 on shape mismatch or when either operand is NaN.
func (x *Int) Cmp(y *Int) int32 {
	if !sameShape(x.w[0], y.w[0]) {
		return 0
	}
	w := valCmp(x, y) & (((x.w[0] | y.w[0]) >> 31) - 1)
	return int32(w)
}
