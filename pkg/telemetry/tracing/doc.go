// Package tracing provides OpenTelemetry tracing for Callisto.
//
// Each dispatch runs inside a "gateway.dispatch" span carrying the provider,
// the resolved model, the upstream status code, token usage and, on failure,
// the fault kind. Spans are exported over OTLP gRPC when tracing is enabled;
// otherwise the tracer is a noop.
//
// Incoming W3C trace context is extracted by HTTPMiddleware so dispatch
// spans join the caller's trace.
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
//	if err != nil {
//		return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, tracing.SpanDispatch)
//	defer span.End()
//	tracing.SetProviderAttributes(span, "openai", "gpt-4o-mini")
package tracing
