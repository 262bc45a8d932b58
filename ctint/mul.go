package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// genmulSeparate computes a truncated product and returns true if and
// only if the truncation did not change the value. It ignores the NaN
// flags, assumes all operands have the same size, and requires the
// destination storage to be distinct from both sources.
//
// TODO: use Karatsuba for large inputs.
func genmulSeparate(d, a, b *Int) ctbool.Bool {
	h := d.w[0] & 0x7FFFFFFF
	ln := wordLen(h)
	ssa := -(a.w[ln] >> 30) >> 1
	ssb := -(b.w[ln] >> 30) >> 1
	only0 := ctbool.True
	only1 := ctbool.True
	opz := a.Eq0().Or(b.Eq0())

	// Schoolbook over 31-bit limbs. The sources are extended with
	// their sign patterns so that all 2L output limbs of the exact
	// two's-complement product are produced; the upper L limbs are
	// not stored, only folded into the only0/only1 detectors.
	var cc uint64
	for u := 0; u < ln<<1; u++ {
		zd := cc
		cc = 0
		for v := 0; v <= u; v++ {
			var wa, wb uint32
			if v < ln {
				wa = a.w[1+v]
			} else {
				wa = ssa
			}
			if v+ln > u {
				wb = b.w[1+u-v]
			} else {
				wb = ssb
			}
			zr := ctbool.MulU32W(wa, wb)
			zd += zr & 0x7FFFFFFF
			cc += zr >> 31
		}
		cc += zd >> 31
		wd := uint32(zd) & 0x7FFFFFFF
		if u < ln {
			d.w[1+u] = wd
		} else {
			only0 = only0.And(ctbool.U32Eq0(wd))
			only1 = only1.And(ctbool.U32Eq0(wd ^ 0x7FFFFFFF))
		}
	}

	// All upper bits must match the expected result sign. A zero
	// operand forces the expectation to the all-zero pattern, no
	// matter the other operand's sign.
	ssd := ssa ^ ssb
	ssd &= opz.U32() - 1
	fit := ctbool.FromU32(ctbool.U32Mux(
		ctbool.FromU32(ssd&1), only1.U32(), only0.U32()))
	return fit.And(ctbool.U32Eq0((d.w[ln] ^ ssd) >> topIndex(h)))
}

// genmul handles shape checks, NaN propagation, and aliasing. The
// returned flag is true when the full product fit the width.
func genmul(d, a, b *Int) ctbool.Bool {
	h := d.w[0] & 0x7FFFFFFF
	if h != a.w[0]&0x7FFFFFFF || h != b.w[0]&0x7FFFFFFF {
		d.w[0] |= 0x80000000
		return ctbool.False
	}
	d.w[0] = a.w[0] | b.w[0]

	if !aliases(d, a) && !aliases(d, b) {
		return genmulSeparate(d, a, b)
	}

	// Destination aliases a source: compute into scratch first.
	bufs, ok := scratchWords(wordLen(h)+1, 1)
	if !ok {
		d.w[0] |= 0x80000000
		return ctbool.False
	}
	t := &Int{w: bufs[0]}
	t.w[0] = h
	r := genmulSeparate(t, a, b)
	copy(d.w[1:], t.w[1:1+wordLen(h)])
	return r
}

// Mul sets d to a*b. All operands must share d's shape (else d becomes
// NaN); NaN inputs and overflow also produce NaN. Any aliasing between
// d, a and b is allowed.
func (d *Int) Mul(a, b *Int) {
	r := genmul(d, a, b)
	d.w[0] |= (r.U32() ^ 1) << 31
}

// MulTrunc sets d to a*b reduced modulo 2^width. Shape mismatch and NaN
// inputs produce NaN; overflow does not.
func (d *Int) MulTrunc(a, b *Int) {
	genmul(d, a, b)
	h := d.w[0] & 0x7FFFFFFF
	ln := wordLen(h)
	d.w[ln] = signext(d.w[ln], topIndex(h)+1) & 0x7FFFFFFF
}
