package ctint

import (
	"github.com/agbru/ctkit/ctbool"
)

// gendivInner is the division core. It requires:
//
//   - r non-nil; only q may be nil.
//   - q, r, t1 and t2 distinct storage from each other, and t1, t2
//     distinct from a and b. q and r may alias a or b.
//   - All operands of the same size; t1 and t2 zero-payload with a's
//     header word.
//
// It computes on absolute values and restores signs at the end, which
// needs special handling for the values whose absolute value is not
// representable:
//
//   - If a == MinValue, |b| is added to a before the loop and a +1 or -1
//     is folded into q afterwards, so the loop operates on nonnegative
//     values throughout.
//   - If b == MinValue, the |b| computation yields NaN, every loop check
//     is false, and r ends as a copy of a; q is then forced to 0, or to
//     1 with r forced to 0 when a == MinValue too.
//
// NaN inputs, a zero divisor, and the unrepresentable MinValue / -1
// quotient are applied as final masks.
func gendivInner(q, r, a, b *Int, t1, t2 *Int, mod bool) {
	h := b.w[0] & 0x7FFFFFFF
	hk := topIndex(h)
	n := h - h>>5
	ln := wordLen(h)

	aIsNaN := a.IsNaN()
	bIsNaN := b.IsNaN()
	aIsMinv := ctbool.True
	bIsMinv := ctbool.True
	bIsZero := ctbool.True
	bIsMone := ctbool.True
	for u := 0; u+1 < ln; u++ {
		aIsMinv = aIsMinv.And(ctbool.U32Eq0(a.w[1+u]))
		bIsMinv = bIsMinv.And(ctbool.U32Eq0(b.w[1+u]))
		bIsZero = bIsZero.And(ctbool.U32Eq0(b.w[1+u]))
		bIsMone = bIsMone.And(ctbool.U32Eq(b.w[1+u], 0x7FFFFFFF))
	}
	aIsMinv = aIsMinv.And(ctbool.U32Eq(a.w[ln], (^uint32(0)<<hk)&0x7FFFFFFF))
	bIsMinv = bIsMinv.And(ctbool.U32Eq(b.w[ln], (^uint32(0)<<hk)&0x7FFFFFFF))
	bIsZero = bIsZero.And(ctbool.U32Eq0(b.w[ln]))
	bIsMone = bIsMone.And(ctbool.U32Eq(b.w[ln], 0x7FFFFFFF))

	sa := a.w[ln] >> 30
	sb := b.w[ln] >> 30

	// t2 <- |b|.
	t2.Neg(b)
	t2.CondCopy(ctbool.U32Eq0(sb), b)

	// r <- |a| or |a + |b||; t1 is free at this point. r may alias a
	// or b, but not t1.
	t1.Add(a, t2)
	t1.CondCopy(aIsMinv.Not(), a)
	r.Neg(t1)
	r.CondCopy(ctbool.FromU32(t1.w[ln]>>30).Not(), t1)

	// From here on the divisor is |b|.
	bb := t2

	if q != nil {
		q.w[0] &= 0x7FFFFFFF
		for u := 1; u <= ln; u++ {
			q.w[u] = 0
		}
	}

	// Division on the nonnegative values. The shift on |b| may yield
	// NaN; the comparison is then false and the conditional copy puts
	// back the non-NaN value of r.
	ud := int(h >> 5)
	um := h & 31
	for n > 0 {
		n--
		t1.Lsh(bb, n)
		e := t1.Leq(r)
		t1.Sub(r, t1)
		r.CondCopy(e, t1)
		if q != nil {
			if um == 0 {
				um = 30
				ud--
			} else {
				um--
			}
			q.w[1+ud] |= e.U32() << um
		}
	}

	// Adjust values and signs; t1 is free again.
	if q != nil {
		// If b == MinValue, q must be 0 for now; when
		// a == MinValue too, a 1 is put back below.
		t1.SetU32Trunc(0)
		q.CondCopy(bIsMinv, t1)

		// q is negative when the signs of a and b differ.
		t1.Neg(q)
		q.CondCopy(ctbool.FromU32(sa^sb), t1)

		// The a == MinValue adjustment. The +1 is normally due
		// before the sign flip, but when the exact quotient is
		// MinValue that order would hit MaxValue+1 (NaN); setting
		// the sign first and subtracting 1 lands on MinValue,
		// which is correct and not NaN.
		p := int32(aIsMinv.ToInt())
		t1.SetS32(ctbool.S32Mux(ctbool.FromU32(sa^sb), -p, p))
		q.Add(q, t1)
	}
	t1.Neg(r)
	r.CondCopy(ctbool.FromU32(sa), t1)

	// b == MinValue cleanup: at this point r holds a copy of a (which
	// is correct when a != MinValue); fix up q, and both when
	// a == MinValue too.
	t1.SetU32Trunc(0)
	if q != nil {
		q.CondCopy(bIsMinv.And(aIsMinv.Not()), t1)
	}
	r.CondCopy(bIsMinv.And(aIsMinv), t1)
	if q != nil {
		t1.SetU32(1)
		q.CondCopy(bIsMinv.And(aIsMinv), t1)
	}

	// NaN conditions.
	bothNaN := aIsNaN.Or(bIsNaN).Or(bIsZero)
	halfNaN := aIsMinv.And(bIsMone)
	if q != nil {
		q.w[0] |= bothNaN.Or(halfNaN).U32() << 31
	}
	r.w[0] |= bothNaN.U32() << 31
	t1.SetU32Trunc(0)
	r.CondCopy(halfNaN, t1)

	// Extra step for modular reduction: a negative remainder gets
	// |b| added (which, since |r| < |b|, can neither overflow nor
	// underflow). |b| is NaN when b == MinValue; subtracting MinValue
	// from r is flipping its sign bit instead.
	if mod {
		sr := r.w[ln] >> 30
		t1.Add(r, bb)
		r.CondCopy(ctbool.FromU32(sr).And(bIsMinv.Not()), t1)
		r.w[ln] ^= (-(sr & bIsMinv.U32()) << hk) & 0x7FFFFFFF
	}
}

// gendiv acquires the temporaries and runs the division core. Sizes must
// have been verified equal. Either q or r may be nil, but not both, and
// q != r. With mod set, an extra step ensures a nonnegative remainder.
func gendiv(q, r, a, b *Int, mod bool) {
	h := a.w[0] & 0x7FFFFFFF
	wlen := wordLen(h) + 1

	// The core needs a non-nil r, a temporary for |b|, and one more
	// temporary: two scratch buffers when the caller wants the
	// remainder, three otherwise.
	count := 2
	if r == nil {
		count = 3
	}
	bufs, ok := scratchWords(wlen, count)
	if !ok {
		if q != nil {
			q.w[0] |= 0x80000000
		}
		if r != nil {
			r.w[0] |= 0x80000000
		}
		return
	}
	t1 := &Int{w: bufs[0]}
	t2 := &Int{w: bufs[1]}
	t1.w[0] = a.w[0]
	t2.w[0] = a.w[0]
	if r == nil {
		r = &Int{w: bufs[2]}
		r.w[0] = a.w[0]
	}
	gendivInner(q, r, a, b, t1, t2, mod)
}

// DivRem computes the Euclidean quotient and remainder of a divided by
// b, with truncation toward zero: a = q*b + r, |r| < |b|, and r has the
// sign of a (or is 0). Either q or r may be nil when the caller does not
// want that output.
//
// Both outputs become NaN when an input is NaN or b is zero. When a is
// the most negative value and b is -1, the true quotient is not
// representable: q becomes NaN and r is 0. A shape mismatch makes the
// offending outputs NaN; if q and r are the same storage, both become
// NaN.
func DivRem(q, r, a, b *Int) {
	h := a.w[0] & 0x7FFFFFFF
	if h != b.w[0]&0x7FFFFFFF {
		if q != nil {
			q.w[0] |= 0x80000000
		}
		if r != nil {
			r.w[0] |= 0x80000000
		}
		return
	}
	if q != nil && h != q.w[0]&0x7FFFFFFF {
		q.w[0] |= 0x80000000
		q = nil
	}
	if r != nil && h != r.w[0]&0x7FFFFFFF {
		r.w[0] |= 0x80000000
		r = nil
	}
	if q == nil && r == nil {
		return
	}
	if q != nil && r != nil && aliases(q, r) {
		q.w[0] |= 0x80000000
		r.w[0] |= 0x80000000
		return
	}

	gendiv(q, r, a, b, false)
}

// Div sets d to the quotient of a divided by b (truncation toward
// zero). See [DivRem] for the special cases.
func (d *Int) Div(a, b *Int) {
	DivRem(d, nil, a, b)
}

// Rem sets d to the remainder of a divided by b (truncation toward
// zero). See [DivRem] for the special cases.
func (d *Int) Rem(a, b *Int) {
	DivRem(nil, d, a, b)
}

// Mod sets d to a modulo b, with a nonnegative result in [0, |b|): the
// truncation-toward-zero remainder, plus |b| when that remainder is
// negative. NaN inputs, a zero divisor, or a shape mismatch make d NaN.
func (d *Int) Mod(a, b *Int) {
	h := d.w[0] & 0x7FFFFFFF
	if h != a.w[0]&0x7FFFFFFF || h != b.w[0]&0x7FFFFFFF {
		d.w[0] |= 0x80000000
		return
	}
	gendiv(nil, d, a, b, true)
}
