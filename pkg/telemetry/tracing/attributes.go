package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for gateway spans. Custom keys use the "callisto.*"
// namespace.
const (
	AttrProvider  = "callisto.provider"
	AttrModel     = "callisto.model"
	AttrRequestID = "callisto.request_id"

	AttrUpstreamStatus = "callisto.upstream.status_code"
	AttrUpstreamURL    = "callisto.upstream.url"
	AttrFinishReason   = "callisto.finish_reason"

	AttrTokensPrompt     = "callisto.tokens.prompt"
	AttrTokensCompletion = "callisto.tokens.completion"
	AttrTokensTotal      = "callisto.tokens.total"

	AttrFaultKind    = "callisto.fault.kind"
	AttrErrorMessage = "error.message"
)

// SpanDispatch is the name of the span covering one gateway dispatch.
const SpanDispatch = "gateway.dispatch"

// SetProviderAttributes sets provider-related attributes on a span.
// An empty model is left unset.
func SetProviderAttributes(span trace.Span, provider, model string) {
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	if model != "" {
		attrs = append(attrs, attribute.String(AttrModel, model))
	}
	span.SetAttributes(attrs...)
}

// SetRequestID records the inbound request id on a span.
func SetRequestID(span trace.Span, requestID string) {
	if requestID == "" {
		return
	}
	span.SetAttributes(attribute.String(AttrRequestID, requestID))
}

// SetUpstreamAttributes records the upstream endpoint and status code.
func SetUpstreamAttributes(span trace.Span, url string, statusCode int) {
	span.SetAttributes(
		attribute.String(AttrUpstreamURL, url),
		attribute.Int(AttrUpstreamStatus, statusCode),
	)
}

// SetTokenAttributes sets token count attributes on a span.
func SetTokenAttributes(span trace.Span, promptTokens, completionTokens, totalTokens int) {
	span.SetAttributes(
		attribute.Int(AttrTokensPrompt, promptTokens),
		attribute.Int(AttrTokensCompletion, completionTokens),
		attribute.Int(AttrTokensTotal, totalTokens),
	)
}

// SetFinishReason records the normalized finish reason of the first choice.
func SetFinishReason(span trace.Span, reason string) {
	span.SetAttributes(attribute.String(AttrFinishReason, reason))
}

// SetFault marks the span as failed with the given fault kind.
func SetFault(span trace.Span, kind string, err error) {
	span.SetAttributes(attribute.String(AttrFaultKind, kind))
	SetError(span, err)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
}
