package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// SetU32 sets x to the unsigned 32-bit value v. If v does not fit the
// width of x, x becomes NaN.
func (x *Int) SetU32(v uint32) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	size := h - h>>5
	for u := 2; u <= ln; u++ {
		x.w[u] = 0
	}
	x.w[1] = v & 0x7FFFFFFF

	// On overflow we get a NaN; otherwise the value is positive, so
	// the sign extends as a 0.
	if size >= 32 {
		x.w[2] = v >> 31
	}
	if size <= 32 {
		x.w[0] |= ctbool.U32Neq0(v>>(size-1)).U32() << 31
	}
}

// SetU32Trunc sets x to v reduced modulo 2^width, reinterpreted in the
// representable range. It never produces NaN.
func (x *Int) SetU32Trunc(v uint32) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	size := h - h>>5
	for u := 1; u <= ln; u++ {
		x.w[u] = 0
	}
	switch {
	case size > 32:
		x.w[1] = v & 0x7FFFFFFF
		x.w[2] = v >> 31
	case size == 32:
		x.w[1] = v & 0x7FFFFFFF
		x.w[2] = -(v >> 31) >> 1
	default:
		x.w[1] = signext(v, uint(size)) & 0x7FFFFFFF
	}
}

// SetU64 sets x to the unsigned 64-bit value v. If v does not fit the
// width of x, x becomes NaN.
func (x *Int) SetU64(v uint64) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	size := h - h>>5
	for u := 1; u <= ln; u++ {
		x.w[u] = 0
	}
	x.w[1] = uint32(v) & 0x7FFFFFFF
	if size > 31 {
		x.w[2] = uint32(v>>31) & 0x7FFFFFFF
	}
	if size > 62 {
		x.w[3] = uint32(v >> 62)
	}
	if size <= 64 {
		x.w[0] |= ctbool.U64Neq0(v>>(size-1)).U32() << 31
	}
}

// SetU64Trunc sets x to v reduced modulo 2^width, reinterpreted in the
// representable range. It never produces NaN.
func (x *Int) SetU64Trunc(v uint64) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	size := h - h>>5
	for u := 1; u <= ln; u++ {
		x.w[u] = 0
	}
	switch {
	case size >= 65:
		// The 64-bit value fits unmodified (positive).
		x.w[1] = uint32(v) & 0x7FFFFFFF
		x.w[2] = uint32(v>>31) & 0x7FFFFFFF
		x.w[3] = uint32(v >> 62)
	case size >= 63:
		// Three words; truncate and sign-extend the top one.
		x.w[1] = uint32(v) & 0x7FFFFFFF
		x.w[2] = uint32(v>>31) & 0x7FFFFFFF
		x.w[3] = signext(uint32(v>>62), uint(size-62)) & 0x7FFFFFFF
	case size >= 32:
		// Two words; truncate and sign-extend the top one.
		x.w[1] = uint32(v) & 0x7FFFFFFF
		x.w[2] = signext(uint32(v>>31), uint(size-31)) & 0x7FFFFFFF
	default:
		x.w[1] = signext(uint32(v), uint(size)) & 0x7FFFFFFF
	}
}

// SetS32 sets x to the signed 32-bit value v. If v does not fit the
// width of x, x becomes NaN.
func (x *Int) SetS32(v int32) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	size := h - h>>5
	w := uint32(v)
	for u := 2; u <= ln; u++ {
		x.w[u] = 0
	}
	x.w[1] = w & 0x7FFFFFFF

	// With at least 32 bits of width there can be no overflow, but
	// the sign bit must extend over all remaining words. Below 32
	// bits, all top bits of the source must be equal to each other.
	if size >= 32 {
		w = -(w >> 31) >> 1
		for u := 1; u < ln; u++ {
			x.w[u+1] = w
		}
	} else {
		m := ^uint32(0) << (size - 1)
		w &= m
		x.w[0] |= (ctbool.U32Neq0(w).U32() & ctbool.U32Neq0(w^m).U32()) << 31
	}
}

// SetS32Trunc sets x to v reduced modulo 2^width, reinterpreted in the
// representable range. It never produces NaN.
func (x *Int) SetS32Trunc(v int32) {
	x.SetS64Trunc(int64(v))
}

// SetS64 sets x to the signed 64-bit value v. If v does not fit the
// width of x, x becomes NaN.
func (x *Int) SetS64(v int64) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	size := h - h>>5
	w := uint64(v)
	for u := 1; u <= ln; u++ {
		x.w[u] = 0
	}
	x.w[1] = uint32(w) & 0x7FFFFFFF
	if size >= 63 {
		x.w[2] = uint32(w>>31) & 0x7FFFFFFF
		x.w[3] = signext(uint32(w>>62), 2) & 0x7FFFFFFF
		hw := -uint32(w>>63) >> 1
		for u := 3; u < ln; u++ {
			x.w[u+1] = hw
		}
	} else if size >= 32 {
		x.w[2] = uint32(w>>31) & 0x7FFFFFFF
	}

	// Overflow check: the top bits must be equal to each other.
	if size < 64 {
		m := ^uint64(0) << (size - 1)
		w &= m
		x.w[0] |= (ctbool.U64Neq0(w).U32() & ctbool.U64Neq0(w^m).U32()) << 31
	}
}

// SetS64Trunc sets x to v reduced modulo 2^width, reinterpreted in the
// representable range. It never produces NaN.
func (x *Int) SetS64Trunc(v int64) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	x.w[1] = uint32(v) & 0x7FFFFFFF
	if ln >= 2 {
		x.w[2] = uint32(v>>31) & 0x7FFFFFFF
	}
	if ln >= 3 {
		x.w[3] = uint32(v>>62) & 0x7FFFFFFF
	}
	hw := -uint32(uint64(v)>>63) >> 1
	for u := 4; u <= ln; u++ {
		x.w[u] = hw
	}
	x.w[ln] = signext(x.w[ln], topIndex(h)+1) & 0x7FFFFFFF
}

// Set copies the value of a into d. The operands need not have the same
// width: the value is sign-extended into a wider destination, and d
// becomes NaN when the value does not fit a narrower one. NaN-ness is
// carried over.
func (d *Int) Set(a *Int) {
	// Full aliasing leaves nothing to do; the operands otherwise do
	// not overlap.
	if aliases(d, a) {
		return
	}

	h := a.w[0] & 0x7FFFFFFF
	alen := wordLen(h)

	h = d.w[0] & 0x7FFFFFFF
	dlen := wordLen(h)
	d.w[0] = h | (a.w[0] & 0x80000000)

	if dlen > alen {
		copy(d.w[1:], a.w[1:1+alen])
		w := -(a.w[alen] >> 30) >> 1
		for u := alen; u < dlen; u++ {
			d.w[1+u] = w
		}
	} else {
		copy(d.w[1:], a.w[1:1+dlen])
		m := -(a.w[alen] >> 30) >> 1
		w := (d.w[dlen] ^ m) & (^uint32(0) << topIndex(h))
		for u := dlen; u < alen; u++ {
			w |= a.w[u+1] ^ m
		}
		d.w[0] |= (w | -w) & 0x80000000
	}
}

// SetTrunc copies the value of a into d, reducing modulo 2^width of d
// when a is wider. NaN-ness is carried over but no range NaN is produced.
func (d *Int) SetTrunc(a *Int) {
	if aliases(d, a) {
		return
	}

	h := a.w[0] & 0x7FFFFFFF
	alen := wordLen(h)

	h = d.w[0] & 0x7FFFFFFF
	dlen := wordLen(h)
	d.w[0] = h | (a.w[0] & 0x80000000)

	if dlen > alen {
		copy(d.w[1:], a.w[1:1+alen])
		w := -(a.w[alen] >> 30) >> 1
		for u := alen; u < dlen; u++ {
			d.w[1+u] = w
		}
	} else {
		copy(d.w[1:], a.w[1:1+dlen])
		m := uint32(1) << topIndex(h)
		sb := d.w[dlen] & m
		d.w[dlen] &= m - 1
		d.w[dlen] |= -sb & 0x7FFFFFFF
	}
}

// ToU32Trunc returns the value of x reduced modulo 2^32, or 0 if x is NaN.
func (x *Int) ToU32Trunc() uint32 {
	r := x.w[1]
	if (x.w[0] & 0x7FFFFFFF) > 32 {
		r |= x.w[2] << 31
	} else {
		r |= (r & 0x40000000) << 1
	}
	return r & ((x.w[0] >> 31) - 1)
}

// ToS32Trunc returns the value of x reduced modulo 2^32, reinterpreted as
// signed, or 0 if x is NaN.
func (x *Int) ToS32Trunc() int32 {
	return int32(x.ToU32Trunc())
}

// ToU64Trunc returns the value of x reduced modulo 2^64, or 0 if x is NaN.
func (x *Int) ToU64Trunc() uint64 {
	h := x.w[0] & 0x7FFFFFFF
	r := uint64(x.w[1])
	switch {
	case h > 64:
		r |= uint64(x.w[2])<<31 | uint64(x.w[3])<<62
	case h > 32:
		r |= uint64(x.w[2]) << 31
		r |= -(r & (uint64(1) << 61))
	default:
		r |= -(r & (uint64(1) << 30))
	}
	return r & (uint64(x.w[0]>>31) - 1)
}

// ToS64Trunc returns the value of x reduced modulo 2^64, reinterpreted as
// signed, or 0 if x is NaN.
func (x *Int) ToS64Trunc() int64 {
	return int64(x.ToU64Trunc())
}

// ToU32 returns the value of x, or 0 if x is NaN, negative, or does not
// fit an unsigned 32-bit integer.
func (x *Int) ToU32() uint32 {
	r := x.ToU32Trunc()
	r &= -ctbool.U32Lt(realBitlength(x), 33).U32()
	r &= valLt0(x).U32() - 1
	return r
}

// ToS32 returns the value of x, or 0 if x is NaN or does not fit a
// signed 32-bit integer.
func (x *Int) ToS32() int32 {
	r := x.ToU32Trunc()
	r &= -ctbool.U32Lt(realBitlength(x), 32).U32()
	return int32(r)
}

// ToU64 returns the value of x, or 0 if x is NaN, negative, or does not
// fit an unsigned 64-bit integer.
func (x *Int) ToU64() uint64 {
	r := x.ToU64Trunc()
	r &= -uint64(ctbool.U32Lt(realBitlength(x), 65).U32())
	r &= uint64(valLt0(x).U32()) - 1
	return r
}

// ToS64 returns the value of x, or 0 if x is NaN or does not fit a
// signed 64-bit integer.
func (x *Int) ToS64() int64 {
	r := x.ToU64Trunc()
	r &= -uint64(ctbool.U32Lt(realBitlength(x), 64).U32())
	return int64(r)
}

// valEq0 compares x with zero, ignoring the NaN flag.
func valEq0(x *Int) ctbool.Bool {
	h := x.w[0] & 0x7FFFFFFF
	ln := wordLen(h)
	var r uint32
	for u := 0; u < ln; u++ {
		r |= x.w[u+1]
	}
	return ctbool.U32Eq0(r)
}

// valLt0 tests whether x is lower than zero, ignoring the NaN flag. It
// only reads the sign bit, so it is cheap even for large integers.
func valLt0(x *Int) ctbool.Bool {
	h := x.w[0] & 0x7FFFFFFF
	ln := wordLen(h)
	return ctbool.FromU32((x.w[ln] >> 30) & 1)
}

// realBitlength returns the minimal number of bits needed to hold the
// value of x, excluding the sign bit (-1 has bitlength 0). It ignores
// the NaN flag.
func realBitlength(x *Int) uint32 {
	h := x.w[0] & 0x7FFFFFFF
	ln := wordLen(h)
	k := topIndex(h)
	mx := -((x.w[ln] >> k) & 1) >> 1

	// mx is an all-zero or all-one 31-bit pattern matching the sign.
	// XOR it into the words to normalize on the positive case, then
	// locate the index (g) and value (t) of the topmost non-zero word.
	t := x.w[1] ^ mx
	var g uint32
	for u := 1; u < ln; u++ {
		w := x.w[u+1] ^ mx
		nz := ctbool.U32Neq0(w)
		t = ctbool.U32Mux(nz, w, t)
		g = ctbool.U32Mux(nz, uint32(u), g)
	}

	return ctbool.U32Bitlength(t) + (g << 5) - g
}
