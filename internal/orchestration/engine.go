package orchestration

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agbru/ctkit/ctint"
	"github.com/agbru/ctkit/internal/metrics"
)

// fractionScale is 10^FractionDigits.
const fractionScale = 1_000_000_000_000

// Engine is the Averager backed by the constant-time integer engine.
// The whole computation runs on ctint values; only the final, public
// result is converted to decimal for display.
type Engine struct {
	// Width is the bit width of the working integers. It must be
	// large enough for the sum of the inputs plus the fraction
	// scaling, or the engine reports a NaN outcome.
	Width uint32

	// Metrics receives operation counters when non-nil.
	Metrics *metrics.Collector
}

// Name identifies the engine.
func (e *Engine) Name() string { return "ctint" }

// Average computes the rounded average through ctint arithmetic.
func (e *Engine) Average(ctx context.Context, values []uint64) (AverageResult, error) {
	sum := ctint.New(e.Width)
	sum.SetU32(0)
	t := ctint.New(e.Width)
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return AverageResult{}, err
		}
		t.SetU64(v)
		sum.Add(sum, t)
		e.count("add")
	}

	num := ctint.New(e.Width)
	num.SetU64(uint64(len(values)))

	q := ctint.New(e.Width)
	r := ctint.New(e.Width)
	ctint.DivRem(q, r, sum, num)
	e.count("divrem")

	// Fractional part: (r*10^12 + num/2) / num, the num/2 term
	// rounding to nearest.
	scale := ctint.New(e.Width)
	scale.SetU64(fractionScale)
	fr := ctint.New(e.Width)
	fr.Mul(r, scale)
	e.count("mul")
	half := ctint.New(e.Width)
	half.Rsh(num, 1)
	fr.Add(fr, half)
	fq := ctint.New(e.Width)
	ctint.DivRem(fq, nil, fr, num)
	e.count("divrem")

	if q.IsNaN().ToBool() || fq.IsNaN().ToBool() {
		if e.Metrics != nil {
			e.Metrics.NaNOutcomes.Inc()
		}
		return AverageResult{}, fmt.Errorf("engine produced NaN at width %d (width too small for the inputs?)", e.Width)
	}

	return AverageResult{
		Quotient: FormatDecimal(q),
		Fraction: fmt.Sprintf("%012d", fq.ToU64()),
	}, nil
}

func (e *Engine) count(kind string) {
	if e.Metrics != nil {
		e.Metrics.Operations.WithLabelValues(kind).Inc()
	}
}

// FormatDecimal renders a ctint value in decimal ("NaN" for NaN). A
// value is public by the time it is displayed, so routing it through
// math/big here is not a side-channel concern.
func FormatDecimal(x *ctint.Int) string {
	if x.IsNaN().ToBool() {
		return "NaN"
	}
	n := int(x.Width())/8 + 2
	buf := make([]byte, n)
	x.EncBE(buf)
	v := new(big.Int).SetBytes(buf)
	if buf[0]&0x80 != 0 {
		m := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
		v.Sub(v, m)
	}
	return v.String()
}
