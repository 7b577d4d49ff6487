package metrics

import (
	"fmt"
	"sync"
	"time"

	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for dispatched requests.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// otherModel replaces model labels once the cardinality limit is reached.
const otherModel = "other"

// Collector owns every Prometheus metric exported by the gateway.
//
// Model names come from client requests and are therefore unbounded; the
// collector routes them through a CardinalityLimiter so a misbehaving
// client cannot grow the label space without limit.
//
// A nil *Collector is valid and records nothing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	requestMetrics  *RequestMetrics
	providerMetrics *ProviderMetrics

	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := config.Default().Telemetry.Metrics
//	collector := metrics.NewCollector(&cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		cfg.RequestDurationBuckets = append([]float64(nil), config.DefaultRequestDurationBuckets...)
	}
	if len(cfg.TokenCountBuckets) == 0 {
		cfg.TokenCountBuckets = append([]float64(nil), config.DefaultTokenCountBuckets...)
	}
	maxCardinality := cfg.MaxCardinality
	if maxCardinality <= 0 {
		maxCardinality = config.DefaultMaxCardinality
	}

	c := &Collector{
		config:             cfg,
		registry:           registry,
		cardinalityLimiter: NewCardinalityLimiter(maxCardinality),
	}

	c.requestMetrics = NewRequestMetrics(cfg, registry)
	c.providerMetrics = NewProviderMetrics(cfg, registry)

	return c
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// model returns the label to use for model, collapsing it to "other" once
// the limiter refuses new label sets.
func (c *Collector) model(provider, model string) string {
	if !c.cardinalityLimiter.Allow(fmt.Sprintf("%s:%s", provider, model)) {
		return otherModel
	}
	return model
}

// RecordDispatch records a completed dispatch.
//
// Parameters:
//   - provider: provider identifier from the request
//   - model: resolved model name (empty when the request never reached an adapter)
//   - outcome: OutcomeSuccess or OutcomeError
//   - duration: total time spent in the dispatcher
func (c *Collector) RecordDispatch(provider, model, outcome string, duration time.Duration) {
	if !c.enabled() {
		return
	}

	c.requestMetrics.RecordRequest(provider, c.model(provider, model), outcome, duration)
}

// RecordUsage records token usage reported for a successful completion.
func (c *Collector) RecordUsage(provider, model string, promptTokens, completionTokens int) {
	if !c.enabled() {
		return
	}

	c.requestMetrics.RecordTokens(provider, c.model(provider, model), promptTokens, completionTokens)
}

// RecordUpstream records one upstream HTTP exchange.
//
// Parameters:
//   - provider: provider identifier
//   - model: model sent upstream
//   - statusCode: upstream HTTP status code
//   - latency: round trip time including reading the body
func (c *Collector) RecordUpstream(provider, model string, statusCode int, latency time.Duration) {
	if !c.enabled() {
		return
	}

	model = c.model(provider, model)
	c.providerMetrics.RecordRequest(provider, StatusClass(statusCode))
	c.providerMetrics.RecordLatency(provider, model, latency.Seconds())
}

// RecordFault records a failed dispatch by fault kind.
func (c *Collector) RecordFault(provider, kind string) {
	if !c.enabled() {
		return
	}

	c.providerMetrics.RecordError(provider, kind)
}

// RecordSize records the size of a request or response body.
//
// Parameters:
//   - provider: provider identifier
//   - direction: "request" or "response"
//   - sizeBytes: body size in bytes
func (c *Collector) RecordSize(provider, direction string, sizeBytes int) {
	if !c.enabled() {
		return
	}

	c.requestMetrics.RecordSize(provider, direction, sizeBytes)
}

// UpdateProviderConfigured sets whether a provider has credentials.
func (c *Collector) UpdateProviderConfigured(provider string, configured bool) {
	if !c.enabled() {
		return
	}

	c.providerMetrics.UpdateConfigured(provider, configured)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// StatusClass buckets an HTTP status code into "2xx", "4xx", and so on.
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return fmt.Sprintf("%dxx", code/100)
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label set is allowed. Returns true if the label set
// already exists or if we haven't reached the cardinality limit yet.
// Returns false if adding this label set would exceed the limit.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
