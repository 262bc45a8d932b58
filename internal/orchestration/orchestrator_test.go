package orchestration

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/ctkit/ctint"
	apperrors "github.com/agbru/ctkit/internal/errors"
)

func TestEngineAverageKnown(t *testing.T) {
	engine := &Engine{Width: 129}
	got, err := engine.Average(context.Background(), []uint64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "3.000000000000" {
		t.Fatalf("average of 1..5 = %s", got)
	}

	got, err = engine.Average(context.Background(), []uint64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "1.500000000000" {
		t.Fatalf("average of 1,2 = %s", got)
	}

	// Rounding of the fractional digits: 1/3 -> .333333333333.
	got, err = engine.Average(context.Background(), []uint64{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "0.333333333333" {
		t.Fatalf("average of 0,0,1 = %s", got)
	}
}

func TestEngineMatchesBigOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(50))
	engine := &Engine{Width: 129}
	oracle := BigOracle{}
	for i := 0; i < 50; i++ {
		n := rnd.Intn(20) + 1
		values := make([]uint64, n)
		for j := range values {
			values[j] = rnd.Uint64()
		}
		got, err := engine.Average(context.Background(), values)
		if err != nil {
			t.Fatal(err)
		}
		want, err := oracle.Average(context.Background(), values)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("engine %s, oracle %s for %v", got, want, values)
		}
	}
}

func TestEngineWidthTooSmall(t *testing.T) {
	engine := &Engine{Width: 8}
	_, err := engine.Average(context.Background(), []uint64{200, 200})
	if err == nil {
		t.Fatal("expected a NaN outcome error")
	}
}

func TestExecuteAverageCollectsAll(t *testing.T) {
	engine := &Engine{Width: 129}
	results := ExecuteAverage(context.Background(),
		Averagers(engine, true), []uint64{10, 20})
	if len(results) != 1 {
		t.Fatalf("expected engine only, got %d results", len(results))
	}
	if results[0].Name != "ctint" || results[0].Err != nil {
		t.Fatalf("unexpected result %+v", results[0])
	}
	if err := CompareResults(results); err != nil {
		t.Fatal(err)
	}

	results = ExecuteAverage(context.Background(),
		Averagers(engine, false), []uint64{10, 20})
	if len(results) < 2 {
		t.Fatalf("expected oracles, got %d results", len(results))
	}
	if err := CompareResults(results); err != nil {
		t.Fatal(err)
	}
}

func TestCompareResultsMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	good := NewMockAverager(ctrl)
	good.EXPECT().Name().Return("good").AnyTimes()
	good.EXPECT().Average(gomock.Any(), gomock.Any()).
		Return(AverageResult{Quotient: "3", Fraction: "000000000000"}, nil)

	bad := NewMockAverager(ctrl)
	bad.EXPECT().Name().Return("bad").AnyTimes()
	bad.EXPECT().Average(gomock.Any(), gomock.Any()).
		Return(AverageResult{Quotient: "4", Fraction: "000000000000"}, nil)

	results := ExecuteAverage(context.Background(),
		[]Averager{good, bad}, []uint64{1})
	err := CompareResults(results)
	var mm apperrors.MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if mm.Engine != "bad" {
		t.Fatalf("mismatch attributed to %q", mm.Engine)
	}
}

func TestCompareResultsPropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := NewMockAverager(ctrl)
	failing.EXPECT().Name().Return("failing").AnyTimes()
	failing.EXPECT().Average(gomock.Any(), gomock.Any()).
		Return(AverageResult{}, errors.New("boom"))

	results := ExecuteAverage(context.Background(),
		[]Averager{failing}, []uint64{1})
	if err := CompareResults(results); err == nil {
		t.Fatal("expected the averager error to surface")
	}
}

func TestFormatDecimal(t *testing.T) {
	x := ctint.New(64)
	x.SetS64(-1234567890123)
	if got := FormatDecimal(x); got != "-1234567890123" {
		t.Fatalf("FormatDecimal = %q", got)
	}
	x.SetU64(0)
	if got := FormatDecimal(x); got != "0" {
		t.Fatalf("FormatDecimal zero = %q", got)
	}
	nan := ctint.New(64)
	if got := FormatDecimal(nan); got != "NaN" {
		t.Fatalf("FormatDecimal NaN = %q", got)
	}
}
