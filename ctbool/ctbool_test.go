package ctbool

import (
	"math"
	"math/rand"
	"testing"
)

func TestBoolLogic(t *testing.T) {
	if True.ToInt() != 1 || False.ToInt() != 0 {
		t.Fatal("constants broken")
	}
	if !True.ToBool() || False.ToBool() {
		t.Fatal("ToBool broken")
	}
	cases := []struct{ a, b Bool }{
		{True, True}, {True, False}, {False, True}, {False, False},
	}
	for _, c := range cases {
		ab, bb := c.a.ToBool(), c.b.ToBool()
		if c.a.Not().ToBool() != !ab {
			t.Errorf("Not(%t)", ab)
		}
		if c.a.And(c.b).ToBool() != (ab && bb) {
			t.Errorf("And(%t,%t)", ab, bb)
		}
		if c.a.Or(c.b).ToBool() != (ab || bb) {
			t.Errorf("Or(%t,%t)", ab, bb)
		}
		if c.a.Xor(c.b).ToBool() != (ab != bb) {
			t.Errorf("Xor(%t,%t)", ab, bb)
		}
		if c.a.Eqv(c.b).ToBool() != (ab == bb) {
			t.Errorf("Eqv(%t,%t)", ab, bb)
		}
	}
}

// interesting32 and interesting64 cover zero, boundaries around the sign
// bit, and values that stress the borrow propagation in the comparison
// formulas.
var interesting32 = []uint32{
	0, 1, 2, 0x7FFFFFFE, 0x7FFFFFFF, 0x80000000, 0x80000001,
	0xFFFFFFFE, 0xFFFFFFFF, 0x55555555, 0xAAAAAAAA,
}

var interesting64 = []uint64{
	0, 1, 2, 1<<31 - 1, 1 << 31, 1 << 32,
	1<<63 - 1, 1 << 63, 1<<63 + 1, ^uint64(0) - 1, ^uint64(0),
}

func TestU32Comparisons(t *testing.T) {
	for _, x := range interesting32 {
		for _, y := range interesting32 {
			if U32Eq(x, y).ToBool() != (x == y) {
				t.Errorf("U32Eq(%#x,%#x)", x, y)
			}
			if U32Neq(x, y).ToBool() != (x != y) {
				t.Errorf("U32Neq(%#x,%#x)", x, y)
			}
			if U32Gt(x, y).ToBool() != (x > y) {
				t.Errorf("U32Gt(%#x,%#x)", x, y)
			}
			if U32Geq(x, y).ToBool() != (x >= y) {
				t.Errorf("U32Geq(%#x,%#x)", x, y)
			}
			if U32Lt(x, y).ToBool() != (x < y) {
				t.Errorf("U32Lt(%#x,%#x)", x, y)
			}
			if U32Leq(x, y).ToBool() != (x <= y) {
				t.Errorf("U32Leq(%#x,%#x)", x, y)
			}

			sx, sy := int32(x), int32(y)
			if S32Eq(sx, sy).ToBool() != (sx == sy) {
				t.Errorf("S32Eq(%d,%d)", sx, sy)
			}
			if S32Gt(sx, sy).ToBool() != (sx > sy) {
				t.Errorf("S32Gt(%d,%d)", sx, sy)
			}
			if S32Lt(sx, sy).ToBool() != (sx < sy) {
				t.Errorf("S32Lt(%d,%d)", sx, sy)
			}
			if S32Leq(sx, sy).ToBool() != (sx <= sy) {
				t.Errorf("S32Leq(%d,%d)", sx, sy)
			}
			if S32Geq(sx, sy).ToBool() != (sx >= sy) {
				t.Errorf("S32Geq(%d,%d)", sx, sy)
			}
		}
		if U32Eq0(x).ToBool() != (x == 0) {
			t.Errorf("U32Eq0(%#x)", x)
		}
		if U32Neq0(x).ToBool() != (x != 0) {
			t.Errorf("U32Neq0(%#x)", x)
		}
		sx := int32(x)
		if S32Gt0(sx).ToBool() != (sx > 0) {
			t.Errorf("S32Gt0(%d)", sx)
		}
		if S32Lt0(sx).ToBool() != (sx < 0) {
			t.Errorf("S32Lt0(%d)", sx)
		}
		if S32Geq0(sx).ToBool() != (sx >= 0) {
			t.Errorf("S32Geq0(%d)", sx)
		}
		if S32Leq0(sx).ToBool() != (sx <= 0) {
			t.Errorf("S32Leq0(%d)", sx)
		}
		var want int32
		switch {
		case sx > 0:
			want = 1
		case sx < 0:
			want = -1
		}
		if S32Sign(sx) != want {
			t.Errorf("S32Sign(%d) = %d", sx, S32Sign(sx))
		}
	}
}

func TestU64Comparisons(t *testing.T) {
	for _, x := range interesting64 {
		for _, y := range interesting64 {
			if U64Eq(x, y).ToBool() != (x == y) {
				t.Errorf("U64Eq(%#x,%#x)", x, y)
			}
			if U64Gt(x, y).ToBool() != (x > y) {
				t.Errorf("U64Gt(%#x,%#x)", x, y)
			}
			if U64Leq(x, y).ToBool() != (x <= y) {
				t.Errorf("U64Leq(%#x,%#x)", x, y)
			}

			sx, sy := int64(x), int64(y)
			if S64Gt(sx, sy).ToBool() != (sx > sy) {
				t.Errorf("S64Gt(%d,%d)", sx, sy)
			}
			if S64Lt(sx, sy).ToBool() != (sx < sy) {
				t.Errorf("S64Lt(%d,%d)", sx, sy)
			}
			if S64Geq(sx, sy).ToBool() != (sx >= sy) {
				t.Errorf("S64Geq(%d,%d)", sx, sy)
			}
		}
		if U64Eq0(x).ToBool() != (x == 0) {
			t.Errorf("U64Eq0(%#x)", x)
		}
		sx := int64(x)
		if S64Lt0(sx).ToBool() != (sx < 0) {
			t.Errorf("S64Lt0(%d)", sx)
		}
		if S64Gt0(sx).ToBool() != (sx > 0) {
			t.Errorf("S64Gt0(%d)", sx)
		}
	}
}

func TestMux(t *testing.T) {
	if U32Mux(True, 5, 9) != 5 || U32Mux(False, 5, 9) != 9 {
		t.Error("U32Mux")
	}
	if S32Mux(True, -5, 9) != -5 || S32Mux(False, -5, 9) != 9 {
		t.Error("S32Mux")
	}
	if U64Mux(True, 1<<63, 3) != 1<<63 || U64Mux(False, 1<<63, 3) != 3 {
		t.Error("U64Mux")
	}
	if S64Mux(True, math.MinInt64, 3) != math.MinInt64 {
		t.Error("S64Mux")
	}
}

func TestU32Bitlength(t *testing.T) {
	if U32Bitlength(0) != 0 {
		t.Error("bitlength(0)")
	}
	for k := uint(0); k < 32; k++ {
		v := uint32(1) << k
		if got := U32Bitlength(v); got != uint32(k)+1 {
			t.Errorf("bitlength(1<<%d) = %d", k, got)
		}
		if got := U32Bitlength(v | (v - 1)); got != uint32(k)+1 {
			t.Errorf("bitlength(2^%d-ish) = %d", k+1, got)
		}
	}
}

func TestMulFallbackMatchesHardware(t *testing.T) {
	defer SetHardwareMul(false)
	rnd := rand.New(rand.NewSource(20))
	for i := 0; i < 2000; i++ {
		x := rnd.Uint32()
		y := rnd.Uint32()
		SetHardwareMul(false)
		soft := MulU32W(x, y)
		softLo := MulU32(x, y)
		SetHardwareMul(true)
		if hard := MulU32W(x, y); hard != soft {
			t.Fatalf("MulU32W(%#x,%#x): soft %#x, hard %#x", x, y, soft, hard)
		}
		if hardLo := MulU32(x, y); hardLo != softLo {
			t.Fatalf("MulU32(%#x,%#x): soft %#x, hard %#x", x, y, softLo, hardLo)
		}

		sx, sy := int32(x), int32(y)
		SetHardwareMul(false)
		if got := MulS32W(sx, sy); got != int64(sx)*int64(sy) {
			t.Fatalf("MulS32W(%d,%d) = %d", sx, sy, got)
		}
		if got := MulS32(sx, sy); got != sx*sy {
			t.Fatalf("MulS32(%d,%d) = %d", sx, sy, got)
		}

		ux, uy := rnd.Uint64(), rnd.Uint64()
		soft64 := MulU64(ux, uy)
		SetHardwareMul(true)
		if hard64 := MulU64(ux, uy); hard64 != soft64 {
			t.Fatalf("MulU64(%#x,%#x): soft %#x, hard %#x", ux, uy, soft64, hard64)
		}
		SetHardwareMul(false)
		if got := MulS64(int64(ux), int64(uy)); got != int64(ux)*int64(uy) {
			t.Fatalf("MulS64(%d,%d) = %d", int64(ux), int64(uy), got)
		}
	}
}
