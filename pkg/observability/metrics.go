package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics records toolkit activity.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	DFAStates  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chomsky_operations_total",
				Help: "Total number of toolkit operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chomsky_operation_duration_seconds",
				Help:    "Duration of toolkit operations",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"operation"},
		),
		DFAStates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chomsky_dfa_states",
				Help:    "Number of states produced by subset construction",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Operations, m.Duration, m.DFAStates)
	}
	return m
}

// Observe records one finished operation.
func (m *Metrics) Observe(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.Duration.WithLabelValues(operation).Observe(seconds)
}

// ObserveDFA records the size of a constructed DFA.
func (m *Metrics) ObserveDFA(states int) {
	if m == nil {
		return
	}
	m.DFAStates.Observe(float64(states))
}
