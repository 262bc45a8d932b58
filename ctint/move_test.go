package ctint

import (
	"math/big"
	"testing"

	"github.com/agbru/ctkit/ctbool"
)

func TestCopyCondCopy(t *testing.T) {
	d := New(100)
	s := New(100)
	s.SetS64(-42)

	d.Copy(s)
	mustValue(t, d, big.NewInt(-42), "Copy")

	s.SetS64(7)
	d.CondCopy(ctbool.False, s)
	mustValue(t, d, big.NewInt(-42), "CondCopy false")
	d.CondCopy(ctbool.True, s)
	mustValue(t, d, big.NewInt(7), "CondCopy true")

	// NaN-ness travels with the value.
	nan := New(100)
	d.Copy(nan)
	mustNaN(t, d, "Copy of NaN")

	// Shape mismatch poisons the destination.
	w64 := New(64)
	w64.SetU32(1)
	d.SetU32(2)
	d.Copy(w64)
	mustNaN(t, d, "Copy across widths")
}

func TestSwapCondSwap(t *testing.T) {
	a := New(65)
	b := New(65)
	a.SetS64(-5)
	b.SetU64(1 << 60)

	Swap(a, b)
	mustValue(t, a, new(big.Int).Lsh(big.NewInt(1), 60), "Swap a")
	mustValue(t, b, big.NewInt(-5), "Swap b")

	CondSwap(ctbool.False, a, b)
	mustValue(t, b, big.NewInt(-5), "CondSwap false")
	CondSwap(ctbool.True, a, b)
	mustValue(t, a, big.NewInt(-5), "CondSwap true a")
	mustValue(t, b, new(big.Int).Lsh(big.NewInt(1), 60), "CondSwap true b")

	// Swapping NaN with a value exchanges the NaN flag too.
	nan := New(65)
	Swap(a, nan)
	mustNaN(t, a, "Swap moved NaN in")
	mustValue(t, nan, big.NewInt(-5), "Swap moved value out")

	// Shape mismatch poisons both.
	c := New(66)
	c.SetU32(3)
	b.SetU32(4)
	Swap(b, c)
	mustNaN(t, b, "Swap across widths, a")
	mustNaN(t, c, "Swap across widths, b")
}

func TestMux(t *testing.T) {
	a := New(40)
	b := New(40)
	d := New(40)
	a.SetS64(123)
	b.SetS64(-456)

	d.Mux(ctbool.True, a, b)
	mustValue(t, d, big.NewInt(123), "Mux true")
	d.Mux(ctbool.False, a, b)
	mustValue(t, d, big.NewInt(-456), "Mux false")

	// Aliasing: d may be one of the sources.
	d.Mux(ctbool.True, d, a)
	mustValue(t, d, big.NewInt(-456), "Mux alias")

	// The NaN flag follows the selected operand.
	nan := New(40)
	d.Mux(ctbool.True, nan, a)
	mustNaN(t, d, "Mux selected NaN")
	d.Mux(ctbool.False, nan, a)
	mustValue(t, d, big.NewInt(123), "Mux rejected NaN")
}
