// Package metrics provides Prometheus metrics collection for Callisto.
//
// # Metrics Categories
//
//   - Request Metrics: dispatch count, duration, tokens, and body sizes
//   - Provider Metrics: credentials, upstream latency, status classes, faults
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	collector.RecordDispatch("openai", "gpt-4o-mini", metrics.OutcomeSuccess, time.Second)
//	collector.RecordUsage("openai", "gpt-4o-mini", 12, 34)
//	collector.RecordFault("anthropic", "upstream")
//
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
//
// # Cardinality Management
//
// Model names come from clients. Once MaxCardinality distinct provider/model
// pairs have been seen, further models are recorded as "other".
package metrics
