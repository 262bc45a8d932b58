// Package ctint implements variable-precision signed integers whose
// operations are safe to use on secret values: instruction sequences and
// memory-access patterns depend only on the declared bit width (and other
// public parameters), never on the values themselves.
//
// An [Int] has a bit width fixed at construction. Its value is either a
// signed integer in [-2^(w-1), 2^(w-1)-1], or NaN. NaN is the sole error
// channel: every operation whose result would be undefined, out of range
// (for non-truncating variants), or fed by a NaN operand produces NaN, and
// the state propagates stickily through further operations. Callers check
// outcomes with [Int.IsNaN]; there are no error returns.
//
// Memory layout: a header word followed by payload words of 31 value bits
// each, little-endian. The header holds S = width + width/31 in its low 31
// bits and the NaN flag in bit 31. The top bit of every payload word is
// always 0, so limb carries never spill; the sign bit sits at position
// (width-1) mod 31 of the top word and is replicated through that word's
// remaining value bits. Widths are public: code may branch on them freely.
package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// Int is a fixed-width signed integer with constant-time operations.
// The zero value is not usable; obtain values through [New].
type Int struct {
	w []uint32
}

// New returns a new Int of the given bit width, initialized to NaN.
// The width must be at least 1.
func New(width uint32) *Int {
	x := &Int{}
	x.Init(width)
	return x
}

// Init re-initializes x to a NaN of the given bit width, discarding any
// previous shape and contents. The width must be at least 1.
func (x *Int) Init(width uint32) {
	h := width + width/31
	n := int((h+31)>>5) + 1
	if cap(x.w) < n {
		x.w = make([]uint32, n)
	} else {
		x.w = x.w[:n]
		for i := range x.w {
			x.w[i] = 0
		}
	}
	x.w[0] = h | 0x80000000
}

// Width returns the declared bit width of x.
func (x *Int) Width() uint32 {
	h := x.w[0] & 0x7FFFFFFF
	return h - h>>5
}

// IsNaN returns true if x is NaN.
func (x *Int) IsNaN() ctbool.Bool {
	return ctbool.FromU32(x.w[0] >> 31)
}

// header returns the header word of x with the NaN flag masked out.
func (x *Int) header() uint32 {
	return x.w[0] & 0x7FFFFFFF
}

// wordLen returns the number of payload words for the header value h.
func wordLen(h uint32) int {
	return int((h + 31) >> 5)
}

// topIndex returns the index of the sign bit within the top payload word,
// given the header value (without the NaN flag).
func topIndex(h uint32) uint {
	h = (h & 31) - 1
	return uint((h + (31 & (h >> 5))) & 31)
}

// signext sign-extends an n-bit value to 32 bits (1 <= n <= 32).
func signext(v uint32, n uint) uint32 {
	hi := -((v >> (n - 1)) & 1) << (n - 1)
	lo := v & (^uint32(0) >> (32 - n))
	return hi | lo
}

// sameShape reports whether the two header words declare the same width.
// Shape is public; the NaN flags are masked out before comparing since
// they may be secret.
func sameShape(h1, h2 uint32) bool {
	return (h1^h2)<<1 == 0
}

// aliases reports whether two Ints share their backing storage. Operand
// aliasing is allowed everywhere; this check only routes full aliases to
// their fast paths.
func aliases(x, y *Int) bool {
	return &x.w[0] == &y.w[0]
}
