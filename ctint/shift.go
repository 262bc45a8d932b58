package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// p2m31 holds the powers of two split as (2^i / 31, 2^i % 31) pairs, for
// the protected shifts.
var p2m31 [64]uint32

func init() {
	for i := uint(0); i < 32; i++ {
		p := uint32(1) << i
		p2m31[i<<1] = p / 31
		p2m31[i<<1|1] = p % 31
	}
}

// genlsh is the left-shift kernel. The operands must have been verified
// to share a shape; the count is nd*31+nm with 0 <= nm < 31, and both
// parts may leak. If ctl is false the shift is not actually performed.
// The returned flag is false when the shift overflows/underflows.
func genlsh(d, a *Int, nd uint32, nm uint, ctl ctbool.Bool) ctbool.Bool {
	d.w[0] = a.w[0]
	h := d.w[0] & 0x7FFFFFFF
	ln := wordLen(h)
	bl := h - h>>5
	n := 31*nd + uint32(nm)
	ssa := -(a.w[ln] >> 30) & 0x7FFFFFFF

	// Shifting by the type size or more can only yield zero, which
	// is an overflow/underflow unless the source is 0.
	if n >= bl {
		r := ctbool.True
		for u := 0; u < ln; u++ {
			wa := a.w[1+u]
			r = r.And(ctbool.U32Eq0(wa))
			d.w[1+u] = wa & (ctl.U32() - 1)
		}
		return r.Or(ctl.Not())
	}

	// n < bl implies nd < ln, since ln*31 >= bl and n >= 31*nd.
	ndi := int(nd)

	// Source and destination may be the same array, so the shift
	// must proceed from high to low.
	r := ctbool.True
	for u := ln; u > ln-ndi; u-- {
		r = r.And(ctbool.U32Eq(ssa, a.w[u]))
	}
	if nm == 0 {
		for u := ln; u > ndi; u-- {
			d.w[u] = ctbool.U32Mux(ctl, a.w[u-ndi], a.w[u])
		}
	} else {
		r = r.And(ctbool.U32Eq0((a.w[ln-ndi] ^ ssa) >> (31 - nm)))
		for u := ln; u > ndi; u-- {
			wa := a.w[u-ndi]
			wd := (wa << nm) & 0x7FFFFFFF
			if u-ndi > 1 {
				wd |= a.w[u-ndi-1] >> (31 - nm)
			}
			d.w[u] = ctbool.U32Mux(ctl, wd, a.w[u])
		}
	}
	for u := ndi; u > 0; u-- {
		d.w[u] = a.w[u] & (ctl.U32() - 1)
	}

	// r covers the dropped bits; the top bits of the high word must
	// additionally all equal the expected sign, and are normalized
	// for truncation support.
	hk := topIndex(h)
	tt := signext(d.w[ln], hk+1) & 0x7FFFFFFF
	r = r.And(ctbool.U32Eq(d.w[ln], tt))
	d.w[ln] = tt
	r = r.And(ctbool.U32Eq0((tt ^ ssa) >> hk))

	return r.Or(ctl.Not())
}

// genrsh is the right-shift kernel (arithmetic, sign-extending). Same
// conventions as genlsh; a right shift cannot overflow.
func genrsh(d, a *Int, nd uint32, nm uint, ctl ctbool.Bool) {
	d.w[0] = a.w[0]
	h := d.w[0] & 0x7FFFFFFF
	ln := wordLen(h)
	bl := h - h>>5
	n := 31*nd + uint32(nm)
	ssa := -(a.w[ln] >> 30) & 0x7FFFFFFF

	// Shifting right by at least bl-1 bits yields 0 or -1, depending
	// on the source sign.
	if n+1 >= bl {
		for u := 0; u < ln; u++ {
			d.w[1+u] = ctbool.U32Mux(ctl, ssa, a.w[1+u])
		}
		return
	}

	ndi := int(nd)
	if nm == 0 {
		for u := 0; u < ln-ndi; u++ {
			d.w[1+u] = ctbool.U32Mux(ctl, a.w[1+u+ndi], a.w[1+u])
		}
	} else {
		for u := 0; u < ln-ndi-1; u++ {
			wa := ((a.w[1+u+ndi] >> nm) |
				(a.w[2+u+ndi] << (31 - nm))) & 0x7FFFFFFF
			d.w[1+u] = ctbool.U32Mux(ctl, wa, a.w[1+u])
		}
		d.w[ln-ndi] = ctbool.U32Mux(ctl,
			((a.w[ln]>>nm)|(ssa<<(31-nm)))&0x7FFFFFFF,
			a.w[ln-ndi])
	}
	for u := ln - ndi; u < ln; u++ {
		d.w[1+u] = ctbool.U32Mux(ctl, ssa, a.w[1+u])
	}
}

// Lsh sets d to a shifted left by n bits. The count may leak through
// timing; use [Int.LshProt] when it is secret. d becomes NaN on shape
// mismatch, NaN input, or when a shifted-out bit differs from the sign.
func (d *Int) Lsh(a *Int, n uint32) {
	if !sameShape(d.w[0], a.w[0]) {
		d.w[0] |= 0x80000000
		return
	}
	r := genlsh(d, a, n/31, uint(n%31), ctbool.True)
	d.w[0] |= (r.U32() ^ 1) << 31
}

// LshProt is [Int.Lsh] with a protected count: execution profile is
// independent of n, at the cost of 32 kernel passes.
func (d *Int) LshProt(a *Int, n uint32) {
	if !sameShape(d.w[0], a.w[0]) {
		d.w[0] |= 0x80000000
		return
	}
	src := a
	for i := uint(0); i < 32; i++ {
		r := genlsh(d, src, p2m31[i<<1], uint(p2m31[i<<1|1]),
			ctbool.U32Neq0(n&(uint32(1)<<i)))
		d.w[0] |= (r.U32() ^ 1) << 31
		src = d
	}
}

// LshTrunc sets d to a shifted left by n bits, reduced modulo 2^width.
// The count may leak through timing.
func (d *Int) LshTrunc(a *Int, n uint32) {
	if !sameShape(d.w[0], a.w[0]) {
		d.w[0] |= 0x80000000
		return
	}
	genlsh(d, a, n/31, uint(n%31), ctbool.True)
}

// LshTruncProt is [Int.LshTrunc] with a protected count.
func (d *Int) LshTruncProt(a *Int, n uint32) {
	if !sameShape(d.w[0], a.w[0]) {
		d.w[0] |= 0x80000000
		return
	}
	src := a
	for i := uint(0); i < 32; i++ {
		genlsh(d, src, p2m31[i<<1], uint(p2m31[i<<1|1]),
			ctbool.U32Neq0(n&(uint32(1)<<i)))
		src = d
	}
}

// Rsh sets d to a shifted right by n bits (arithmetic shift; the sign
// is extended). The count may leak through timing. A right shift cannot
// overflow and has no truncating variant.
func (d *Int) Rsh(a *Int, n uint32) {
	if !sameShape(d.w[0], a.w[0]) {
		d.w[0] |= 0x80000000
		return
	}
	genrsh(d, a, n/31, uint(n%31), ctbool.True)
}

// RshProt is [Int.Rsh] with a protected count.
func (d *Int) RshProt(a *Int, n uint32) {
	if !sameShape(d.w[0], a.w[0]) {
		d.w[0] |= 0x80000000
		return
	}
	src := a
	for i := uint(0); i < 32; i++ {
		genrsh(d, src, p2m31[i<<1], uint(p2m31[i<<1|1]),
			ctbool.U32Neq0(n&(uint32(1)<<i)))
		src = d
	}
}
