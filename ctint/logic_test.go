package ctint

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestLogicRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(14))
	for _, width := range testWidths {
		a := New(width)
		b := New(width)
		d := New(width)
		for j := 0; j < 100; j++ {
			va := randInRange(rnd, width)
			vb := randInRange(rnd, width)
			setBig(a, va)
			setBig(b, vb)

			// big.Int implements two's-complement semantics for
			// bitwise operations, matching the representation.
			d.And(a, b)
			mustValue(t, d, new(big.Int).And(va, vb), "And")
			d.Or(a, b)
			mustValue(t, d, new(big.Int).Or(va, vb), "Or")
			d.Xor(a, b)
			mustValue(t, d, new(big.Int).Xor(va, vb), "Xor")

			d.Eqv(a, b)
			want := new(big.Int).Not(new(big.Int).Xor(va, vb))
			mustValue(t, d, want, "Eqv")

			d.Not(a)
			mustValue(t, d, new(big.Int).Not(va), "Not")
		}
	}
}

func TestLogicIdentities(t *testing.T) {
	rnd := rand.New(rand.NewSource(15))
	for _, width := range testWidths {
		a := New(width)
		d := New(width)
		e := New(width)
		for j := 0; j < 20; j++ {
			va := randInRange(rnd, width)
			setBig(a, va)

			// x XOR x == 0, x AND x == x, NOT NOT x == x.
			d.Xor(a, a)
			mustValue(t, d, big.NewInt(0), "x^x")
			d.And(a, a)
			mustValue(t, d, va, "x&x")
			d.Not(a)
			e.Not(d)
			mustValue(t, e, va, "^^x")

			// Eqv(x, x) is all ones, i.e. -1.
			d.Eqv(a, a)
			mustValue(t, d, big.NewInt(-1), "eqv(x,x)")
		}
	}
}
