// Package metrics registra las métricas Prometheus del servicio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	DosageCalculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dosage_calculations_total",
			Help: "Dosage calculator invocations by operation and result",
		},
		[]string{"operation", "result"},
	)

	RateLimitedRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(DosageCalculations)
	prometheus.MustRegister(RateLimitedRequests)
}

// ObserveCalculation cuenta una llamada al calculador (result = ok | error).
func ObserveCalculation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	DosageCalculations.WithLabelValues(operation, result).Inc()
}
