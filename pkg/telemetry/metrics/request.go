package metrics

import (
	"time"

	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics tracks metrics for requests handled by the dispatcher.
//
// Metrics:
//   - callisto_gateway_requests_total: dispatches by provider, model, outcome
//   - callisto_gateway_request_duration_seconds: dispatch duration histogram
//   - callisto_gateway_request_tokens_total: tokens by provider, model, type
//   - callisto_gateway_request_token_count: total tokens per request
//   - callisto_gateway_request_size_bytes: request/response body sizes
type RequestMetrics struct {
	requestsTotal *prometheus.CounterVec

	requestDuration *prometheus.HistogramVec

	// Token counts (prompt and completion)
	tokensTotal *prometheus.CounterVec

	// Per-request token totals
	tokenCount *prometheus.HistogramVec

	sizeBytes *prometheus.HistogramVec
}

// NewRequestMetrics creates and registers request metrics with the provided registry.
func NewRequestMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of chat requests dispatched",
			},
			[]string{"provider", "model", "outcome"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "Duration of chat request dispatch in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"provider", "model"},
		),

		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_tokens_total",
				Help:      "Total number of tokens reported by providers",
			},
			[]string{"provider", "model", "type"},
		),

		tokenCount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_token_count",
				Help:      "Total tokens per successful request",
				Buckets:   cfg.TokenCountBuckets,
			},
			[]string{"provider"},
		),

		sizeBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_size_bytes",
				Help:      "Size of upstream request/response bodies in bytes",
				Buckets:   prometheus.ExponentialBuckets(1024, 2, 12), // 1KB to 4MB
			},
			[]string{"provider", "direction"},
		),
	}

	registry.MustRegister(
		rm.requestsTotal,
		rm.requestDuration,
		rm.tokensTotal,
		rm.tokenCount,
		rm.sizeBytes,
	)

	return rm
}

// RecordRequest records a completed dispatch.
func (rm *RequestMetrics) RecordRequest(provider, model, outcome string, duration time.Duration) {
	rm.requestsTotal.WithLabelValues(provider, model, outcome).Inc()
	rm.requestDuration.WithLabelValues(provider, model).Observe(duration.Seconds())
}

// RecordTokens records token counts separately for prompt and completion,
// and observes their sum in the per-request histogram.
func (rm *RequestMetrics) RecordTokens(provider, model string, promptTokens, completionTokens int) {
	if promptTokens > 0 {
		rm.tokensTotal.WithLabelValues(provider, model, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		rm.tokensTotal.WithLabelValues(provider, model, "completion").Add(float64(completionTokens))
	}
	if total := promptTokens + completionTokens; total > 0 {
		rm.tokenCount.WithLabelValues(provider).Observe(float64(total))
	}
}

// RecordSize records the size of a request or response body.
func (rm *RequestMetrics) RecordSize(provider, direction string, sizeBytes int) {
	if sizeBytes > 0 {
		rm.sizeBytes.WithLabelValues(provider, direction).Observe(float64(sizeBytes))
	}
}
