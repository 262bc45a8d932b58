package ctint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestAddSubInverse_PropertyBased verifies that subtraction undoes
// addition whenever the addition is representable:
//
//	add(a,b) != NaN  =>  sub(add(a,b), b) == a
func TestAddSubInverse_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("sub undoes add", prop.ForAll(
		func(av, bv int64, width uint8) bool {
			w := uint32(width%120) + 8
			a := New(w)
			b := New(w)
			d := New(w)
			a.SetS64Trunc(av)
			b.SetS64Trunc(bv)

			d.Add(a, b)
			if d.IsNaN().ToBool() {
				return true
			}
			d.Sub(d, b)
			return d.Eq(a).ToBool()
		},
		gen.Int64(), gen.Int64(), gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestDivRemIdentity_PropertyBased verifies the Euclidean identity
// a = q*b + r with |r| < |b| and sign(r) in {0, sign(a)}.
func TestDivRemIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("divrem satisfies the Euclidean identity", prop.ForAll(
		func(av, bv int64, width uint8) bool {
			w := uint32(width%120) + 8
			a := New(w)
			b := New(w)
			q := New(w)
			r := New(w)
			a.SetS64Trunc(av)
			b.SetS64Trunc(bv)
			if b.Eq0().ToBool() {
				return true
			}

			DivRem(q, r, a, b)
			if q.IsNaN().ToBool() {
				// Only MinValue / -1 may fail.
				return r.Eq0().ToBool()
			}

			check := New(w)
			check.Mul(q, b)
			check.Add(check, r)
			if !check.Eq(a).ToBool() {
				return false
			}

			// |b| is not representable when b is MinValue, so the
			// magnitude checks go through the oracle integers.
			vr := bigOfAny(r, w)
			vb := bigOfAny(b, w)
			if vr.CmpAbs(vb) >= 0 {
				return false
			}
			return r.Eq0().ToBool() || r.Lt0().ToBool() == a.Lt0().ToBool()
		},
		gen.Int64(), gen.Int64(), gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestModRange_PropertyBased verifies that mod yields a nonnegative
// result below |b| that differs from a by a multiple of b.
func TestModRange_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("mod lands in [0, |b|)", prop.ForAll(
		func(av, bv int64, width uint8) bool {
			w := uint32(width%120) + 8
			a := New(w)
			b := New(w)
			m := New(w)
			a.SetS64Trunc(av)
			b.SetS64Trunc(bv)
			if b.Eq0().ToBool() {
				return true
			}

			m.Mod(a, b)
			if m.IsNaN().ToBool() {
				return false
			}
			va := bigOfAny(a, w)
			vb := bigOfAny(b, w)
			vm := bigOfAny(m, w)
			if vm.Sign() < 0 || vm.CmpAbs(vb) >= 0 {
				return false
			}
			diff := new(big.Int).Sub(va, vm)
			return new(big.Int).Mod(diff, new(big.Int).Abs(vb)).Sign() == 0
		},
		gen.Int64(), gen.Int64(), gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestCodecRoundTrip_PropertyBased verifies that, when the buffer is wide
// enough for the integer width, dec_trunc(enc(dec_trunc(B))) yields the
// same integer as dec_trunc(B).
func TestCodecRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("byte codec round-trips modulo 2^n", prop.ForAll(
		func(raw []byte, width uint8) bool {
			w := uint32(width%63) + 1
			if len(raw) == 0 || len(raw)*8 < int(w) {
				return true
			}
			x := New(w)
			x.DecBESignedTrunc(raw)
			out := make([]byte, len(raw))
			x.EncBE(out)

			// The round trip preserves the value modulo 2^w:
			// re-decoding must reproduce the same integer.
			y := New(w)
			y.DecBESignedTrunc(out)
			return x.Eq(y).ToBool()
		},
		gen.SliceOf(gen.UInt8()), gen.UInt8(),
	))

	properties.TestingRun(t)
}

// bigOfAny converts without a testing.T, for use inside properties.
func bigOfAny(x *Int, width uint32) *big.Int {
	n := int(width)/8 + 2
	buf := make([]byte, n)
	x.EncBE(buf)
	v := new(big.Int).SetBytes(buf)
	if buf[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*n)))
	}
	return v
}
