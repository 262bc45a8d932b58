package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// Copy copies s into d. The operands must have the same shape; otherwise
// d becomes NaN. NaN-ness is copied along with the value.
func (d *Int) Copy(s *Int) {
	if aliases(d, s) {
		return
	}
	if !sameShape(d.w[0], s.w[0]) {
		d.w[0] |= 0x80000000
		return
	}
	copy(d.w, s.w[:wordLen(s.w[0]&0x7FFFFFFF)+1])
}

// CondCopy copies s into d if ctl is true, and leaves d unchanged
// otherwise; d is rewritten either way. Shape mismatch makes d NaN.
func (d *Int) CondCopy(ctl ctbool.Bool, s *Int) {
	d.Mux(ctl, s, d)
}

// Swap exchanges the contents of a and b. The operands must have the
// same shape; otherwise both become NaN.
func Swap(a, b *Int) {
	if aliases(a, b) {
		return
	}
	if !sameShape(a.w[0], b.w[0]) {
		a.w[0] |= 0x80000000
		b.w[0] |= 0x80000000
		return
	}
	ln := wordLen(a.w[0]&0x7FFFFFFF) + 1
	for u := 0; u < ln; u++ {
		a.w[u], b.w[u] = b.w[u], a.w[u]
	}
}

// CondSwap exchanges the contents of a and b if ctl is true; both are
// rewritten either way. Shape mismatch makes both NaN.
func CondSwap(ctl ctbool.Bool, a, b *Int) {
	if aliases(a, b) {
		return
	}
	if !sameShape(a.w[0], b.w[0]) {
		a.w[0] |= 0x80000000
		b.w[0] |= 0x80000000
		return
	}
	ln := wordLen(a.w[0]&0x7FFFFFFF) + 1
	m := -ctl.U32()
	for u := 0; u < ln; u++ {
		wt := (a.w[u] ^ b.w[u]) & m
		a.w[u] ^= wt
		b.w[u] ^= wt
	}
}

// Mux sets d to a if ctl is true, to b otherwise. All three operands
// must share d's shape; otherwise d becomes NaN. Any aliasing between
// d, a and b is allowed.
func (d *Int) Mux(ctl ctbool.Bool, a, b *Int) {
	h := d.w[0] & 0x7FFFFFFF
	if h != a.w[0]&0x7FFFFFFF || h != b.w[0]&0x7FFFFFFF {
		d.w[0] |= 0x80000000
		return
	}
	ln := wordLen(h) + 1
	for u := 0; u < ln; u++ {
		d.w[u] = ctbool.U32Mux(ctl, a.w[u], b.w[u])
	}
}
