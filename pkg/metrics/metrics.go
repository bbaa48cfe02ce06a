// Package metrics exposes Prometheus instrumentation for the parsing
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is a
// valid no-op so library callers and tests can skip instrumentation.
type Metrics struct {
	parseTotal      *prometheus.CounterVec
	parseConfidence prometheus.Histogram
	remoteOutcome   *prometheus.CounterVec
	remoteLatency   prometheus.Histogram
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		parseTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moneybee",
			Subsystem: "parser",
			Name:      "parse_total",
			Help:      "Parse requests by resulting parsing method.",
		}, []string{"method"}),
		parseConfidence: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moneybee",
			Subsystem: "parser",
			Name:      "overall_confidence",
			Help:      "Distribution of overall parse confidence.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
		remoteOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moneybee",
			Subsystem: "parser",
			Name:      "remote_augmentation_total",
			Help:      "Remote AI augmentation attempts by outcome.",
		}, []string{"outcome"}),
		remoteLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moneybee",
			Subsystem: "parser",
			Name:      "remote_latency_seconds",
			Help:      "Latency of remote AI augmentation calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveParse records one completed parse.
func (m *Metrics) ObserveParse(method string, overallConfidence float64) {
	if m == nil {
		return
	}
	m.parseTotal.WithLabelValues(method).Inc()
	m.parseConfidence.Observe(overallConfidence)
}

// ObserveRemote records one remote augmentation attempt.
func (m *Metrics) ObserveRemote(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.remoteOutcome.WithLabelValues(outcome).Inc()
	m.remoteLatency.Observe(elapsed.Seconds())
}
