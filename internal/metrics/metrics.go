// Package metrics exposes Prometheus instrumentation for record fetches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels used by FetchOutcome.
const (
	OutcomeOK = "ok"

	// OutcomeUnknown labels errors that carry no fetch error type.
	OutcomeUnknown = "unknown"
)

// Metrics provides observability for the remote API client.
type Metrics struct {
	// Fetch outcomes by resource ("actresses", "actors"), operation and outcome
	FetchOutcome *prometheus.CounterVec

	// Upstream request latency by resource
	FetchLatency *prometheus.HistogramVec

	// Records dropped from bulk fetches because they failed shape validation
	DroppedRecords *prometheus.CounterVec

	// Couples composed, by result ("paired", "no_pairing")
	Couples *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "castfetch_fetch_total",
			Help: "Record fetches by resource, operation and outcome",
		}, []string{"resource", "operation", "outcome"}), // outcome: "ok" or an error type

		FetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "castfetch_upstream_request_duration_seconds",
			Help:    "Duration of requests to the remote API",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource"}),

		DroppedRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "castfetch_dropped_records_total",
			Help: "Records discarded from collections because they failed validation",
		}, []string{"resource"}),

		Couples: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "castfetch_couples_total",
			Help: "Random couples requested, by result",
		}, []string{"result"}),
	}
}

// IncFetch records the outcome of one fetch operation.
func (m *Metrics) IncFetch(resource, operation, outcome string) {
	if m != nil {
		m.FetchOutcome.WithLabelValues(resource, operation, outcome).Inc()
	}
}

// ObserveLatency records the duration of one upstream request.
func (m *Metrics) ObserveLatency(resource string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(resource).Observe(d.Seconds())
	}
}

// AddDropped counts records removed from a collection.
func (m *Metrics) AddDropped(resource string, n int) {
	if m != nil && n > 0 {
		m.DroppedRecords.WithLabelValues(resource).Add(float64(n))
	}
}

// IncCouple records the result of a couple request.
func (m *Metrics) IncCouple(result string) {
	if m != nil {
		m.Couples.WithLabelValues(result).Inc()
	}
}
