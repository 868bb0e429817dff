// Package metric provides Prometheus metrics for the query boundary.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the platform-level metrics for store queries.
type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semscope",
				Subsystem: "store",
				Name:      "queries_total",
				Help:      "Total number of store queries issued",
			},
			[]string{"operation"},
		),

		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semscope",
				Subsystem: "store",
				Name:      "query_duration_seconds",
				Help:      "Store query round-trip duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		QueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semscope",
				Subsystem: "store",
				Name:      "query_errors_total",
				Help:      "Total number of failed store queries by error kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

// Register registers all metrics with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.QueriesTotal,
		m.QueryDuration,
		m.QueryErrors,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveQuery records one completed query.
func (m *Metrics) ObserveQuery(operation string, start time.Time, errKind string) {
	m.QueriesTotal.WithLabelValues(operation).Inc()
	m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if errKind != "" {
		m.QueryErrors.WithLabelValues(operation, errKind).Inc()
	}
}
