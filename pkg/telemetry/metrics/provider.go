package metrics

import (
	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderMetrics tracks upstream provider behaviour.
//
// Metrics:
//   - callisto_gateway_provider_configured: 1 when the provider has credentials
//   - callisto_gateway_provider_latency_seconds: upstream round trip latency
//   - callisto_gateway_provider_errors_total: failed dispatches by fault kind
//   - callisto_gateway_provider_requests_total: upstream calls by status class
type ProviderMetrics struct {
	configured *prometheus.GaugeVec

	latency *prometheus.HistogramVec

	errors *prometheus.CounterVec

	requests *prometheus.CounterVec
}

// NewProviderMetrics creates and registers provider metrics with the provided registry.
func NewProviderMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ProviderMetrics {
	pm := &ProviderMetrics{
		configured: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_configured",
				Help:      "Whether a provider has credentials (1=configured, 0=missing)",
			},
			[]string{"provider"},
		),

		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_latency_seconds",
				Help:      "Provider API call latency in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"provider", "model"},
		),

		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_errors_total",
				Help:      "Total number of failed dispatches by fault kind",
			},
			[]string{"provider", "kind"},
		),

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_requests_total",
				Help:      "Total number of upstream calls by HTTP status class",
			},
			[]string{"provider", "status_class"},
		),
	}

	registry.MustRegister(
		pm.configured,
		pm.latency,
		pm.errors,
		pm.requests,
	)

	return pm
}

// UpdateConfigured sets the configured gauge for a provider.
func (pm *ProviderMetrics) UpdateConfigured(provider string, configured bool) {
	value := 0.0
	if configured {
		value = 1.0
	}
	pm.configured.WithLabelValues(provider).Set(value)
}

// RecordLatency records the latency of a provider API call.
func (pm *ProviderMetrics) RecordLatency(provider, model string, latencySeconds float64) {
	pm.latency.WithLabelValues(provider, model).Observe(latencySeconds)
}

// RecordError records a failed dispatch.
//
// Kinds mirror the gateway fault kinds:
//   - "unknown_provider": the request named an unsupported provider
//   - "configuration": the provider has no API key
//   - "transport": the upstream call failed or its reply was unreadable
//   - "upstream": the provider answered with a non-2xx status
//   - "invalid_request": the request could not be prepared
func (pm *ProviderMetrics) RecordError(provider, kind string) {
	pm.errors.WithLabelValues(provider, kind).Inc()
}

// RecordRequest records an upstream call.
func (pm *ProviderMetrics) RecordRequest(provider, statusClass string) {
	pm.requests.WithLabelValues(provider, statusClass).Inc()
}
