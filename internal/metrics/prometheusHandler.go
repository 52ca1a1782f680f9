package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var extractionsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "invoice_extractions_in_flight",
	Help: "Number of invoice extractions currently submitted or polling",
})

var extractionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invoice_extraction_outcomes_total",
	Help: "Finished extractions labelled by outcome (ok or error kind)",
}, []string{"outcome"})

var pollAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "docintel_poll_attempts",
	Help:    "Poll requests issued per analysis operation.",
	Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 60},
})

var rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "http_rate_limited_total",
	Help: "Requests rejected by the per-IP rate limiter",
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementExtractionsInFlight() {
	extractionsInFlight.Inc()
}

func DecrementExtractionsInFlight() {
	extractionsInFlight.Dec()
}

func CountExtractionOutcome(outcome string) {
	extractionOutcomes.WithLabelValues(outcome).Inc()
}

func ObservePollAttempts(attempts int) {
	pollAttempts.Observe(float64(attempts))
}

func IncrementRateLimited() {
	rateLimitedTotal.Inc()
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "process_document_duration_seconds",
	Help:    "Total time spent in ProcessDocument.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"outcome"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureJobMetrics(label string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
