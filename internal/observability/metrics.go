package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	requestsTotal         *prometheus.CounterVec
	requestLatencySeconds *prometheus.HistogramVec
	requestErrorsTotal    *prometheus.CounterVec
	reconciliationsTotal  *prometheus.CounterVec
	reconciliationLatency prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "siakad_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		requestLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "siakad_request_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		requestErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "siakad_request_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		reconciliationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "siakad_record_reconciliations_total",
			Help: "Grade submissions by reconciliation outcome.",
		}, []string{"outcome"})

		reconciliationLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "siakad_record_reconciliation_latency_seconds",
			Help:    "Latency distribution for grade submission reconciliation.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		})

		prometheus.MustRegister(
			requestsTotal,
			requestLatencySeconds,
			requestErrorsTotal,
			reconciliationsTotal,
			reconciliationLatency,
		)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// RequestLatency exposes the latency histogram for API requests.
func RequestLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return requestLatencySeconds
}

// RequestErrors exposes the counter for API error responses.
func RequestErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return requestErrorsTotal
}

// Reconciliations exposes the counter for reconciliation outcomes. The
// partial_failure outcome marks a record written without its grade sheet
// follow-up.
func Reconciliations() *prometheus.CounterVec {
	RegisterMetrics()
	return reconciliationsTotal
}

// ReconciliationLatency exposes the reconciliation latency histogram.
func ReconciliationLatency() prometheus.Histogram {
	RegisterMetrics()
	return reconciliationLatency
}
