package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	httpRequestsTotal     *prometheus.CounterVec
	httpLatencySeconds    *prometheus.HistogramVec
	registrationsTotal    *prometheus.CounterVec
	allocationsTotal      *prometheus.CounterVec
	screeningMatchesTotal prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the front
// desk API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdesk_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "frontdesk_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		registrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdesk_registrations_total",
			Help: "Total number of visitor registrations created, by session type.",
		}, []string{"session_type"})

		allocationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdesk_allocations_total",
			Help: "Recruiter allocation attempts by outcome.",
		}, []string{"outcome"})

		screeningMatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frontdesk_screening_matches_total",
			Help: "Total number of screenings that matched the exclusion list.",
		})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, registrationsTotal, allocationsTotal, screeningMatchesTotal)
	})
}

// HTTPRequests exposes the request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// Registrations exposes the registration counter.
func Registrations() *prometheus.CounterVec {
	RegisterMetrics()
	return registrationsTotal
}

// Allocations exposes the allocation outcome counter.
func Allocations() *prometheus.CounterVec {
	RegisterMetrics()
	return allocationsTotal
}

// ScreeningMatches exposes the exclusion match counter.
func ScreeningMatches() prometheus.Counter {
	RegisterMetrics()
	return screeningMatchesTotal
}
