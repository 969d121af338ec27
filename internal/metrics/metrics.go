// Package metrics exposes Prometheus collectors for the prober.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	probeAttemptsTotal    *prometheus.CounterVec
	probeCompaniesTotal   *prometheus.CounterVec
	probeInFlight         prometheus.Gauge
	probeAttemptSeconds   prometheus.Histogram
	rateLimitDelaySeconds prometheus.Histogram
	batchesTotal          *prometheus.CounterVec
	batchDurationSeconds  *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		probeAttemptsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prober_attempts_total",
				Help: "Total number of candidate URL attempts, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		probeCompaniesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prober_companies_total",
				Help: "Total number of companies probed, labeled by result.",
			},
			[]string{"result"},
		)

		probeInFlight = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "prober_in_flight",
				Help: "Number of probe attempts currently in flight.",
			},
		)

		probeAttemptSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prober_attempt_duration_seconds",
				Help:    "Histogram of per-attempt latencies.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
		)

		rateLimitDelaySeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prober_rate_limit_delay_seconds",
				Help:    "Histogram of time spent waiting on the dispatch rate limiter.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
			},
		)

		batchesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prober_batches_total",
				Help: "Total number of batch runs, labeled by strategy.",
			},
			[]string{"strategy"},
		)

		batchDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prober_batch_duration_seconds",
				Help:    "Histogram of whole-batch wall clock durations, labeled by strategy.",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"strategy"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAttempt records one candidate URL attempt.
func ObserveAttempt(outcome string, latency time.Duration) {
	if probeAttemptsTotal == nil {
		return
	}
	probeAttemptsTotal.WithLabelValues(outcome).Inc()
	probeAttemptSeconds.Observe(latency.Seconds())
}

// ObserveCompany records a finished company probe.
func ObserveCompany(succeeded bool) {
	if probeCompaniesTotal == nil {
		return
	}
	result := "reachable"
	if !succeeded {
		result = "exhausted"
	}
	probeCompaniesTotal.WithLabelValues(result).Inc()
}

// IncInFlight increments the in-flight attempts gauge.
func IncInFlight() {
	if probeInFlight != nil {
		probeInFlight.Inc()
	}
}

// DecInFlight decrements the in-flight attempts gauge.
func DecInFlight() {
	if probeInFlight != nil {
		probeInFlight.Dec()
	}
}

// ObserveRateLimitDelay records time spent waiting for a dispatch grant.
func ObserveRateLimitDelay(delay time.Duration) {
	if rateLimitDelaySeconds != nil {
		rateLimitDelaySeconds.Observe(delay.Seconds())
	}
}

// ObserveBatch records a completed batch run for a strategy.
func ObserveBatch(strategy string, duration time.Duration) {
	if batchesTotal == nil {
		return
	}
	batchesTotal.WithLabelValues(strategy).Inc()
	batchDurationSeconds.WithLabelValues(strategy).Observe(duration.Seconds())
}
