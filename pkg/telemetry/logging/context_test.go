package logging

import (
	"context"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithProvider(ctx, "openai")
	ctx = WithModel(ctx, "gpt-4o")

	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("GetRequestID() = %q", got)
	}
	if got := GetProvider(ctx); got != "openai" {
		t.Errorf("GetProvider() = %q", got)
	}
	if got := GetModel(ctx); got != "gpt-4o" {
		t.Errorf("GetModel() = %q", got)
	}
}

func TestContextKeys_Empty(t *testing.T) {
	ctx := context.Background()

	if GetRequestID(ctx) != "" || GetProvider(ctx) != "" || GetModel(ctx) != "" {
		t.Error("expected empty values from a bare context")
	}
}

func TestExtractContextFields(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	tests := []struct {
		name string
		ctx  context.Context
		want map[string]string
	}{
		{
			name: "empty",
			ctx:  context.Background(),
			want: map[string]string{},
		},
		{
			name: "request id only",
			ctx:  WithRequestID(context.Background(), "req-9"),
			want: map[string]string{"request_id": "req-9"},
		},
		{
			name: "all fields",
			ctx: trace.ContextWithSpanContext(
				WithModel(WithProvider(WithRequestID(context.Background(), "req-9"), "anthropic"), "claude"),
				sc,
			),
			want: map[string]string{
				"request_id": "req-9",
				"provider":   "anthropic",
				"model":      "claude",
				"trace_id":   "4bf92f3577b34da6a3ce929d0e0e4736",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := extractContextFields(tt.ctx)
			got := make(map[string]string, len(fields))
			for _, f := range fields {
				if f.Value.Kind() != slog.KindString {
					t.Errorf("field %s has kind %v", f.Key, f.Value.Kind())
				}
				got[f.Key] = f.Value.String()
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
