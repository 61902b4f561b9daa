package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var HTTPRequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "golf_http_requests_total",
	Help: "The total number of HTTP requests by route pattern and status code",
}, []string{"route", "status_code"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "golf_http_request_duration_seconds",
	Help:    "Duration of HTTP requests by route pattern",
	Buckets: prometheus.DefBuckets,
}, []string{"route"})

var SummaryComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "golf_summary_compute_duration_seconds",
	Help:    "Duration of in-memory summary computations by view",
	Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
}, []string{"view"})

var SummaryRowsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "golf_summary_input_rows",
	Help: "Number of flat score rows fed into the most recent summary computation",
})

var RoundsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "golf_rounds_created_total",
	Help: "The total number of rounds recorded",
})

var AuthRequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "golf_auth_requests_total",
	Help: "The total number of requests to the auth provider by operation and outcome",
}, []string{"operation", "outcome"})

var CircuitStateGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "golf_circuit_breaker_open",
	Help: "1 when the named circuit breaker is open or half-open, 0 when closed",
}, []string{"name"})

func Handler() http.Handler {
	return promhttp.Handler()
}
