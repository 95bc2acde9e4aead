// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sweep outcomes used as the result label of SweeperRuns.
const (
	SweepResultOK      = "ok"
	SweepResultError   = "error"
	SweepResultSkipped = "skipped"
)

// Sweeper provides observability for the expiration sweeper.
type Sweeper struct {
	// Runs counts sweeps by outcome.
	Runs *prometheus.CounterVec

	// PoliciesNotified counts policies flagged as expired.
	PoliciesNotified prometheus.Counter

	// Duration observes how long each sweep took.
	Duration prometheus.Histogram
}

// NewSweeper registers the sweeper collectors with reg.
// A nil reg registers with the default Prometheus registry.
func NewSweeper(reg prometheus.Registerer) *Sweeper {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Sweeper{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carinsurance_sweeper_runs_total",
			Help: "Total expiration sweeps by result",
		}, []string{"result"}), // result: "ok", "error", "skipped"

		PoliciesNotified: factory.NewCounter(prometheus.CounterOpts{
			Name: "carinsurance_sweeper_policies_notified_total",
			Help: "Total policies flagged as expired by the sweeper",
		}),

		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "carinsurance_sweeper_duration_seconds",
			Help:    "Duration of a single expiration sweep",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// ObserveRun records a finished sweep.
func (m *Sweeper) ObserveRun(result string, d time.Duration) {
	if m != nil {
		m.Runs.WithLabelValues(result).Inc()
		m.Duration.Observe(d.Seconds())
	}
}

// AddNotified records policies flagged in one sweep.
func (m *Sweeper) AddNotified(n int) {
	if m != nil && n > 0 {
		m.PoliciesNotified.Add(float64(n))
	}
}
