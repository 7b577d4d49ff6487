package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mercator-hq/callisto/pkg/config"
)

const testTraceParent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func installPropagator(t *testing.T) {
	t.Helper()
	if _, err := New(&config.TracingConfig{Enabled: false}); err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}
}

func TestExtractInject(t *testing.T) {
	installPropagator(t)

	in := http.Header{}
	in.Set("traceparent", testTraceParent)

	ctx := Extract(context.Background(), in)
	if got := TraceID(ctx); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("TraceID() = %q", got)
	}

	out := http.Header{}
	Inject(ctx, out)
	if out.Get("traceparent") != testTraceParent {
		t.Errorf("injected traceparent = %q, want %q", out.Get("traceparent"), testTraceParent)
	}
}

func TestHTTPMiddleware(t *testing.T) {
	installPropagator(t)

	var seen string
	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceID(r.Context())
	}))

	t.Run("with traceparent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", nil)
		req.Header.Set("traceparent", testTraceParent)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if seen != "4bf92f3577b34da6a3ce929d0e0e4736" {
			t.Errorf("handler saw trace id %q", seen)
		}
		if rec.Header().Get("X-Trace-ID") != seen {
			t.Errorf("X-Trace-ID = %q", rec.Header().Get("X-Trace-ID"))
		}
	})

	t.Run("without traceparent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/chat", nil))

		if seen != "" {
			t.Errorf("expected no trace id, got %q", seen)
		}
		if rec.Header().Get("X-Trace-ID") != "" {
			t.Error("expected no X-Trace-ID header")
		}
	})
}
