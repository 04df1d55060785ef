package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamFetches *prometheus.CounterVec
	cacheOps        *prometheus.CounterVec
	rateLimited     prometheus.Counter
	lastPrice       *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		upstreamFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_upstream_fetches_total",
				Help: "Total upstream market-data fetches by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		cacheOps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_cache_requests_total",
				Help: "Cache lookups by outcome (hit or miss)",
			},
			[]string{"outcome"},
		),
		rateLimited: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goldpulse_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "goldpulse_last_price",
				Help: "Last recorded price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goldpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordUpstreamFetch records one provider request and its outcome.
func (r *Recorder) RecordUpstreamFetch(endpoint, outcome string) {
	r.upstreamFetches.WithLabelValues(endpoint, outcome).Inc()
}

// RecordCache records a cache lookup outcome.
func (r *Recorder) RecordCache(outcome string) {
	r.cacheOps.WithLabelValues(outcome).Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func (r *Recorder) RecordRateLimited() {
	r.rateLimited.Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
