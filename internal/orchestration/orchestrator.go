package orchestration

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/ctkit/internal/errors"
)

// extraOracles collects oracles that are only available in some builds
// (the GMP oracle needs cgo).
var extraOracles []Averager

// Result encapsulates the outcome of a single average computation.
type Result struct {
	// Name is the identifier of the Averager used.
	Name string
	// Value is the computed average. It is meaningful only if Err is nil.
	Value AverageResult
	// Duration is the time taken to complete the computation.
	Duration time.Duration
	// Err contains any error that occurred.
	Err error
}

// Averagers returns the set of implementations to run: the given engine
// first, then the oracles unless skipped.
func Averagers(engine Averager, skipOracles bool) []Averager {
	list := []Averager{engine}
	if !skipOracles {
		list = append(list, BigOracle{})
		list = append(list, extraOracles...)
	}
	return list
}

// ExecuteAverage runs every Averager concurrently on the same input and
// collects their results in input order. A failing averager does not
// cancel the others; each result carries its own error.
func ExecuteAverage(ctx context.Context, averagers []Averager, values []uint64) []Result {
	tracer := otel.Tracer("ctcalc/orchestration")
	ctx, span := tracer.Start(ctx, "average")
	span.SetAttributes(
		attribute.Int("values", len(values)),
		attribute.Int("averagers", len(averagers)),
	)
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]Result, len(averagers))
	for i, avg := range averagers {
		i, avg := i, avg
		g.Go(func() error {
			start := time.Now()
			value, err := avg.Average(ctx, values)
			results[i] = Result{
				Name:     avg.Name(),
				Value:    value,
				Duration: time.Since(start),
				Err:      err,
			}
			// Errors are reported per result; the group only
			// propagates cancellation.
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// CompareResults checks that all successful results agree with the first
// one (the engine). It returns the first per-averager error if any, then
// a MismatchError on disagreement, and nil when everything matches.
func CompareResults(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return apperrors.ComputationError{Cause: r.Err}
		}
	}
	if len(results) < 2 {
		return nil
	}
	want := results[0].Value.String()
	for _, r := range results[1:] {
		if got := r.Value.String(); got != want {
			return apperrors.MismatchError{
				Engine: r.Name,
				Got:    got,
				Want:   want,
			}
		}
	}
	return nil
}
