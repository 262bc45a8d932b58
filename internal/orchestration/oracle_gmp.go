//go:build cgo

package orchestration

import (
	"context"
	"fmt"

	"github.com/ncw/gmp"
)

func init() {
	extraOracles = append(extraOracles, GMPOracle{})
}

// GMPOracle recomputes the average with GMP through cgo. Like
// [BigOracle] it is variable-time and serves only as an independent
// cross-check; it is compiled in only when cgo is available.
type GMPOracle struct{}

// Name identifies the oracle.
func (GMPOracle) Name() string { return "gmp" }

// Average computes the rounded average with gmp.Int arithmetic.
func (GMPOracle) Average(ctx context.Context, values []uint64) (AverageResult, error) {
	if err := ctx.Err(); err != nil {
		return AverageResult{}, err
	}
	if len(values) == 0 {
		return AverageResult{}, fmt.Errorf("empty input")
	}

	sum := new(gmp.Int)
	t := new(gmp.Int)
	for _, v := range values {
		sum.Add(sum, t.SetUint64(v))
	}
	num := gmp.NewInt(int64(len(values)))

	q := new(gmp.Int).Div(sum, num)
	r := new(gmp.Int).Mod(sum, num)

	fr := new(gmp.Int).Mul(r, gmp.NewInt(fractionScale))
	fr.Add(fr, new(gmp.Int).Rsh(num, 1))
	fr.Div(fr, num)

	return AverageResult{
		Quotient: q.String(),
		Fraction: fmt.Sprintf("%012d", fr),
	}, nil
}
