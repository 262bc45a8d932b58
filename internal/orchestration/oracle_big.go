package orchestration

import (
	"context"
	"fmt"
	"math/big"
)

// BigOracle recomputes the average with math/big. It is variable-time
// and exists only to cross-check the constant-time engine.
type BigOracle struct{}

// Name identifies the oracle.
func (BigOracle) Name() string { return "math/big" }

// Average computes the rounded average with big.Int arithmetic.
func (BigOracle) Average(ctx context.Context, values []uint64) (AverageResult, error) {
	if err := ctx.Err(); err != nil {
		return AverageResult{}, err
	}
	if len(values) == 0 {
		return AverageResult{}, fmt.Errorf("empty input")
	}

	sum := new(big.Int)
	t := new(big.Int)
	for _, v := range values {
		sum.Add(sum, t.SetUint64(v))
	}
	num := big.NewInt(int64(len(values)))

	q, r := new(big.Int), new(big.Int)
	q.QuoRem(sum, num, r)

	fr := new(big.Int).Mul(r, big.NewInt(fractionScale))
	fr.Add(fr, new(big.Int).Rsh(num, 1))
	fr.Quo(fr, num)

	return AverageResult{
		Quotient: q.String(),
		Fraction: fmt.Sprintf("%012d", fr),
	}, nil
}
