package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// gendec is the generic decoding routine behind the eight Dec* variants.
// The execution profile depends only on the source length, the width of x,
// and the variant selectors, all of which are public.
func (x *Int) gendec(src []byte, be, sig, trunc bool) {
	x.w[0] &= 0x7FFFFFFF
	h := x.w[0]
	ln := wordLen(h)
	for u := 1; u <= ln; u++ {
		x.w[u] = 0
	}
	srcLen := len(src)
	if srcLen == 0 {
		if sig {
			x.w[0] |= 0x80000000
		}
		return
	}
	hk := topIndex(h)

	// ssb is the value used for bytes beyond the source buffer.
	var ssb uint32
	if sig {
		if be {
			ssb = -uint32(src[0]>>7) & 0xFF
		} else {
			ssb = -uint32(src[srcLen-1]>>7) & 0xFF
		}
	}

	// u:k points to the next bits to fill in x (u is word index, k is
	// bit index); v is the source byte index, counting from the least
	// significant byte. inRange turns false when the value is out of
	// range (ignored if truncating); ssx is set to 0x00 or 0xFF once
	// the sign bit of x is reached. extraBits are bits spilling past
	// the top word boundary, to be checked against the final sign.
	u := 0
	k := uint(0)
	v := 0
	inRange := ctbool.True
	var ssx uint32
	var extraBits uint32
	var extraBitsLen uint

	for u < ln || v < srcLen {
		var b uint32
		if v < srcLen {
			if be {
				b = uint32(src[srcLen-1-v])
			} else {
				b = uint32(src[v])
			}
		} else {
			b = ssb
		}
		v++

		if u < ln {
			if k <= 23 {
				x.w[1+u] |= b << k
			} else {
				x.w[1+u] |= (b << k) & 0x7FFFFFFF
				if u+1 < ln {
					x.w[2+u] |= b >> (31 - k)
				} else {
					extraBits = b >> (31 - k)
					extraBitsLen = k - 23
				}
			}

			k += 8
			if k >= 31 {
				k -= 31
				u++
				if u == ln {
					ssx = -((x.w[ln] >> hk) & 1) & 0xFF
				}
			}
		} else {
			// All words are filled; extra bytes must agree
			// with the sign pattern.
			inRange = inRange.And(ctbool.U32Eq(b, ssx))
		}
	}

	// All value words are filled and all source bytes read. If
	// truncating, replace the extra top-word bits with a sign
	// extension; otherwise check them (and the spilled extraBits)
	// against the sign, and for unsigned sources require a
	// nonnegative result.
	top := x.w[ln]
	top2 := signext(top, hk+1) & 0x7FFFFFFF
	if trunc {
		x.w[ln] = top2
	} else {
		inRange = inRange.And(ctbool.U32Eq(top, top2))
		if extraBitsLen > 0 {
			inRange = inRange.And(
				ctbool.U32Eq(extraBits, ssx>>(8-extraBitsLen)))
		}
		if !sig {
			inRange = inRange.And(ctbool.U32Eq0(ssx))
		}
		x.w[0] |= inRange.Not().U32() << 31
	}
}

// genenc is the generic encoding routine behind EncBE and EncLE.
func (x *Int) genenc(dst []byte, be bool) {
	h := x.w[0]
	mask := (h >> 31) - 1
	h &= 0x7FFFFFFF
	ln := wordLen(h)

	ssx := -((x.w[ln] >> topIndex(h)) & 1) >> 1
	acc := x.w[1]
	accLen := uint(31)
	u := 1
	for v := 0; v < len(dst); v++ {
		var b uint32
		if accLen >= 8 {
			b = acc & 0xFF
			acc >>= 8
			accLen -= 8
		} else {
			b = acc
			if u < ln {
				acc = x.w[1+u]
				u++
			} else {
				acc = ssx
			}
			b |= acc << accLen
			acc >>= 8 - accLen
			accLen += 23
		}
		b &= mask
		if be {
			dst[len(dst)-1-v] = byte(b)
		} else {
			dst[v] = byte(b)
		}
	}
}

// DecBESigned decodes src as a signed big-endian integer into x. The top
// bit of the most significant byte is the sign. x becomes NaN if the
// value does not fit its width, or if src is empty.
func (x *Int) DecBESigned(src []byte) {
	x.gendec(src, true, true, false)
}

// DecBEUnsigned decodes src as an unsigned big-endian integer into x.
// x becomes NaN if the value does not fit positive in its width. An
// empty src yields 0.
func (x *Int) DecBEUnsigned(src []byte) {
	x.gendec(src, true, false, false)
}

// DecBESignedTrunc decodes src as a signed big-endian integer, reducing
// modulo 2^width instead of producing a range NaN.
func (x *Int) DecBESignedTrunc(src []byte) {
	x.gendec(src, true, true, true)
}

// DecBEUnsignedTrunc decodes src as an unsigned big-endian integer,
// reducing modulo 2^width instead of producing a range NaN.
func (x *Int) DecBEUnsignedTrunc(src []byte) {
	x.gendec(src, true, false, true)
}

// DecLESigned decodes src as a signed little-endian integer into x. See
// [Int.DecBESigned] for the range rules.
func (x *Int) DecLESigned(src []byte) {
	x.gendec(src, false, true, false)
}

// DecLEUnsigned decodes src as an unsigned little-endian integer into x.
// See [Int.DecBEUnsigned] for the range rules.
func (x *Int) DecLEUnsigned(src []byte) {
	x.gendec(src, false, false, false)
}

// DecLESignedTrunc decodes src as a signed little-endian integer,
// reducing modulo 2^width instead of producing a range NaN.
func (x *Int) DecLESignedTrunc(src []byte) {
	x.gendec(src, false, true, true)
}

// DecLEUnsignedTrunc decodes src as an unsigned little-endian integer,
// reducing modulo 2^width instead of producing a range NaN.
func (x *Int) DecLEUnsignedTrunc(src []byte) {
	x.gendec(src, false, false, true)
}

// EncBE encodes x into dst as fixed-length two's-complement big-endian,
// sign-extending or truncating to len(dst) bytes. A NaN source emits all
// zeros; the written length never depends on the value.
func (x *Int) EncBE(dst []byte) {
	x.genenc(dst, true)
}

// EncLE encodes x into dst as fixed-length two's-complement
// little-endian. See [Int.EncBE].
func (x *Int) EncLE(dst []byte) {
	x.genenc(dst, false)
}
