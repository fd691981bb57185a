package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration prometheus.Histogram
	resultCount   prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		queriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_queries_total",
				Help: "Total number of transaction listing queries",
			},
			[]string{"status"},
		),
		queryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_query_duration_milliseconds",
				Help:    "Transaction listing query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		resultCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_query_result_count",
				Help:    "Number of rows returned per transaction listing page",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordQuery(status string, durationMs float64) {
	m.queriesTotal.WithLabelValues(status).Inc()
	m.queryDuration.Observe(durationMs)
}

func (m *PrometheusMetrics) RecordResultCount(count int) {
	m.resultCount.Observe(float64(count))
}

// NoopMetrics is a MetricsRecorderInterface that records nothing. Used in tests
// to avoid duplicate registration on the default Prometheus registry.
type NoopMetrics struct{}

func (NoopMetrics) RecordQuery(status string, durationMs float64) {}

func (NoopMetrics) RecordResultCount(count int) {}
