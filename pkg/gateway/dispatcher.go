package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mercator-hq/callisto/pkg/providers"
	"mercator-hq/callisto/pkg/telemetry/logging"
	"mercator-hq/callisto/pkg/telemetry/metrics"
	"mercator-hq/callisto/pkg/telemetry/tracing"
)

// unknownLabel replaces provider names that are not registered in metrics,
// keeping the provider label bounded.
const unknownLabel = "unknown"

// Registry resolves a provider identifier to its adapter.
type Registry interface {
	Lookup(name string) (providers.Adapter, bool)
}

// Sender performs the single outbound HTTP call of a dispatch.
type Sender interface {
	Send(ctx context.Context, call *providers.Call) (*providers.RawResponse, error)
}

// Dispatcher routes canonical chat requests to provider adapters.
//
// A Dispatcher holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	registry  Registry
	transport Sender
	logger    *slog.Logger
	metrics   *metrics.Collector
	tracer    *tracing.Tracer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics records dispatch metrics on collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(d *Dispatcher) {
		d.metrics = collector
	}
}

// WithTracer wraps each dispatch in a span created by tracer.
func WithTracer(tracer *tracing.Tracer) Option {
	return func(d *Dispatcher) {
		d.tracer = tracer
	}
}

// New creates a Dispatcher over registry and transport.
func New(registry Registry, transport Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:  registry,
		transport: transport,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends req to the provider it names and returns the canonical
// response.
//
// The checks run in a fixed order: a nil request, then an unknown provider,
// then a missing credential; none of them touch the network. Past those, at
// most one upstream call is made. Every error returned is a
// *providers.GatewayError.
func (d *Dispatcher) Dispatch(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResponse, error) {
	start := time.Now()

	ctx, span := d.tracer.Start(ctx, tracing.SpanDispatch)
	defer span.End()
	tracing.SetRequestID(span, logging.GetRequestID(ctx))

	label := unknownLabel
	var model string

	resp, gerr := d.dispatch(ctx, req, &label, &model)

	outcome := metrics.OutcomeSuccess
	if gerr != nil {
		outcome = metrics.OutcomeError
		d.metrics.RecordFault(label, string(gerr.Kind))
		tracing.SetFault(span, string(gerr.Kind), gerr)
	} else {
		tracing.SetStatus(span, nil)
	}
	d.metrics.RecordDispatch(label, model, outcome, time.Since(start))

	if gerr != nil {
		return nil, gerr
	}
	return resp, nil
}

// dispatch does the work of Dispatch. label and model are filled in as soon
// as they are known so the caller can attribute metrics.
func (d *Dispatcher) dispatch(ctx context.Context, req *providers.ChatRequest, label, model *string) (*providers.ChatResponse, *providers.GatewayError) {
	if req == nil {
		return nil, providers.NewInvalidRequestError("Invalid request: request body is required", nil)
	}

	span := tracing.SpanFromContext(ctx)
	tracing.SetProviderAttributes(span, req.Provider, "")

	adapter, ok := d.registry.Lookup(req.Provider)
	if !ok {
		d.logger.WarnContext(ctx, "unknown provider requested", "provider", req.Provider)
		return nil, providers.NewUnknownProviderError(req.Provider)
	}
	*label = adapter.Name()
	ctx = logging.WithProvider(ctx, adapter.Name())

	if !adapter.Configured() {
		d.logger.ErrorContext(ctx, "provider has no API key configured")
		return nil, providers.NewConfigurationError(adapter.DisplayName())
	}

	call, err := adapter.Prepare(req)
	if err != nil {
		var gerr *providers.GatewayError
		if errors.As(err, &gerr) {
			return nil, gerr
		}
		return nil, providers.NewInvalidRequestError(fmt.Sprintf("Invalid request: %v", err), err)
	}
	*model = call.Model
	ctx = logging.WithModel(ctx, call.Model)
	tracing.SetProviderAttributes(span, adapter.Name(), call.Model)

	d.logger.DebugContext(ctx, "dispatching request",
		"url", call.URL,
		"messages", len(req.Messages),
		"tools", len(req.Tools),
	)
	d.metrics.RecordSize(*label, "request", len(call.Body))

	sendStart := time.Now()
	raw, err := d.transport.Send(ctx, call)
	if err != nil {
		d.logger.WarnContext(ctx, "upstream call failed", "error", err)
		return nil, providers.NewTransportError(err)
	}
	latency := time.Since(sendStart)

	d.metrics.RecordUpstream(*label, call.Model, raw.StatusCode, latency)
	d.metrics.RecordSize(*label, "response", len(raw.Body))
	tracing.SetUpstreamAttributes(span, call.URL, raw.StatusCode)

	if !raw.IsSuccess() {
		gerr := adapter.MapError(raw.StatusCode, raw.Body)
		d.logger.WarnContext(ctx, "upstream returned error",
			"status", raw.StatusCode,
			"error", gerr.Message,
			"latency_ms", latency.Milliseconds(),
		)
		return nil, gerr
	}

	resp, err := adapter.NormalizeResponse(call, raw.Body)
	if err != nil {
		d.logger.WarnContext(ctx, "upstream response could not be decoded", "error", err)
		return nil, providers.NewTransportError(err)
	}

	d.metrics.RecordUsage(*label, call.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	tracing.SetTokenAttributes(span, resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
	if len(resp.Choices) > 0 {
		tracing.SetFinishReason(span, resp.Choices[0].FinishReason)
	}

	d.logger.InfoContext(ctx, "dispatch completed",
		"status", raw.StatusCode,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"latency_ms", latency.Milliseconds(),
	)

	return resp, nil
}
