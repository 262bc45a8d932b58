// Package metrics collects operational counters for the average
// pipeline and point-in-time memory readings. Counters are Prometheus
// collectors on a private registry; the application dumps them in
// verbose mode rather than serving them.
package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector aggregates the pipeline counters.
type Collector struct {
	registry *prometheus.Registry

	// Operations counts engine operations by kind (add, divrem, ...).
	Operations *prometheus.CounterVec

	// NaNOutcomes counts engine averages whose result turned out NaN.
	NaNOutcomes prometheus.Counter

	// Runs counts completed pipeline executions.
	Runs prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctcalc_engine_operations_total",
			Help: "Engine operations executed, by kind.",
		}, []string{"kind"}),
		NaNOutcomes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ctcalc_engine_nan_outcomes_total",
			Help: "Engine averages whose result was NaN.",
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ctcalc_pipeline_runs_total",
			Help: "Completed pipeline executions.",
		}),
	}
	c.registry.MustRegister(c.Operations, c.NaNOutcomes, c.Runs)
	return c
}

// Dump writes the current counter values to w, sorted by metric name.
func (c *Collector) Dump(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			label := ""
			for _, lp := range m.GetLabel() {
				label += fmt.Sprintf("{%s=%s}", lp.GetName(), lp.GetValue())
			}
			fmt.Fprintf(w, "%s%s %v\n", mf.GetName(), label, m.GetCounter().GetValue())
		}
	}
	return nil
}
