package ctint

import (
	"math/big"
	"math/rand"
	"testing"
)

// The tests in this package check the engine against math/big as the
// reference implementation, the reverse of production where math/big is
// banned for secret data.

// bigOf returns the value of x as a big.Int. x must not be NaN.
func bigOf(t *testing.T, x *Int) *big.Int {
	t.Helper()
	if x.IsNaN().ToBool() {
		t.Fatal("bigOf on NaN value")
	}
	n := int(x.Width())/8 + 2
	buf := make([]byte, n)
	x.EncBE(buf)
	v := new(big.Int).SetBytes(buf)
	if buf[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*n)))
	}
	return v
}

// setBig stores v into x with truncating semantics.
func setBig(x *Int, v *big.Int) {
	n := int(x.Width())/8 + 2
	m := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	w := new(big.Int).Mod(v, m) // nonnegative representative
	buf := make([]byte, n)
	w.FillBytes(buf)
	x.DecBESignedTrunc(buf)
}

// truncBig reduces v modulo 2^width into the signed representable range.
func truncBig(v *big.Int, width uint32) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	r := new(big.Int).Mod(v, m)
	half := new(big.Int).Rsh(m, 1)
	if r.Cmp(half) >= 0 {
		r.Sub(r, m)
	}
	return r
}

// minVal and maxVal bound the representable range for a width.
func minVal(width uint32) *big.Int {
	return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(width-1)))
}

func maxVal(width uint32) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width-1)), big.NewInt(1))
}

func inRange(v *big.Int, width uint32) bool {
	return v.Cmp(minVal(width)) >= 0 && v.Cmp(maxVal(width)) <= 0
}

// randBig draws a uniform value of up to bits bits, negated half the
// time.
func randBig(rnd *rand.Rand, bits uint32) *big.Int {
	n := (int(bits) + 7) / 8
	buf := make([]byte, n)
	rnd.Read(buf)
	v := new(big.Int).SetBytes(buf)
	v.And(v, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1)))
	if rnd.Intn(2) == 1 {
		v.Neg(v)
	}
	return v
}

// randInRange draws a uniform representable value for the width.
func randInRange(rnd *rand.Rand, width uint32) *big.Int {
	for {
		v := randBig(rnd, width)
		if inRange(v, width) {
			return v
		}
	}
}

// mustValue checks that x is not NaN and holds exactly want.
func mustValue(t *testing.T, x *Int, want *big.Int, what string) {
	t.Helper()
	if x.IsNaN().ToBool() {
		t.Fatalf("%s: got NaN, want %s", what, want)
	}
	if got := bigOf(t, x); got.Cmp(want) != 0 {
		t.Fatalf("%s: got %s, want %s", what, got, want)
	}
}

// mustNaN checks that x is NaN.
func mustNaN(t *testing.T, x *Int, what string) {
	t.Helper()
	if !x.IsNaN().ToBool() {
		t.Fatalf("%s: got %s, want NaN", what, bigOf(t, x))
	}
}

// testWidths is the width grid shared by the randomized tests: every
// width near the limb boundaries plus a few larger ones.
var testWidths = []uint32{
	1, 2, 3, 7, 8, 9, 15, 16, 17, 30, 31, 32, 33,
	61, 62, 63, 64, 65, 92, 93, 94, 127, 128, 129, 200,
}
