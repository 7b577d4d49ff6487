package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:                true,
		Namespace:              "test",
		Subsystem:              "metrics",
		RequestDurationBuckets: []float64{0.1, 0.5, 1.0, 5.0},
		TokenCountBuckets:      []float64{100, 500, 1000, 5000},
		MaxCardinality:         100,
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector == nil {
		t.Fatal("Expected non-nil collector")
	}
	if collector.config != cfg {
		t.Error("Collector config not set correctly")
	}
	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
}

func TestCollector_NewCollectorDefaults(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	collector := NewCollector(cfg, nil)

	if collector.Registry() == nil {
		t.Fatal("Expected a registry to be created")
	}
	if cfg.Namespace != config.DefaultMetricsNamespace {
		t.Errorf("Expected namespace %q, got %q", config.DefaultMetricsNamespace, cfg.Namespace)
	}
	if len(cfg.RequestDurationBuckets) == 0 || len(cfg.TokenCountBuckets) == 0 {
		t.Error("Expected default buckets to be applied")
	}
}

func TestCollector_RecordDispatch(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	tests := []struct {
		name     string
		provider string
		model    string
		outcome  string
	}{
		{name: "success", provider: "openai", model: "gpt-4o-mini", outcome: OutcomeSuccess},
		{name: "upstream error", provider: "anthropic", model: "claude-3-5-sonnet-20241022", outcome: OutcomeError},
		{name: "unknown provider", provider: "gemini", model: "", outcome: OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector.RecordDispatch(tt.provider, tt.model, tt.outcome, 250*time.Millisecond)

			count := testutil.ToFloat64(collector.requestMetrics.requestsTotal.WithLabelValues(tt.provider, tt.model, tt.outcome))
			if count != 1 {
				t.Errorf("Expected request counter 1, got %f", count)
			}
		})
	}
}

func TestCollector_RecordUsage(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordUsage("openai", "gpt-4o", 1000, 500)

	prompt := testutil.ToFloat64(collector.requestMetrics.tokensTotal.WithLabelValues("openai", "gpt-4o", "prompt"))
	if prompt != 1000 {
		t.Errorf("Expected prompt tokens 1000, got %f", prompt)
	}
	completion := testutil.ToFloat64(collector.requestMetrics.tokensTotal.WithLabelValues("openai", "gpt-4o", "completion"))
	if completion != 500 {
		t.Errorf("Expected completion tokens 500, got %f", completion)
	}
	if n := testutil.CollectAndCount(collector.requestMetrics.tokenCount); n != 1 {
		t.Errorf("Expected one token histogram series, got %d", n)
	}
}

func TestCollector_RecordUsageZero(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordUsage("anthropic", "claude", 0, 0)

	if n := testutil.CollectAndCount(collector.requestMetrics.tokensTotal); n != 0 {
		t.Errorf("Expected no token series for zero usage, got %d", n)
	}
}

func TestCollector_ProviderMetrics(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	t.Run("configured gauge", func(t *testing.T) {
		collector.UpdateProviderConfigured("openai", true)
		if v := testutil.ToFloat64(collector.providerMetrics.configured.WithLabelValues("openai")); v != 1.0 {
			t.Errorf("Expected configured=1.0, got %f", v)
		}

		collector.UpdateProviderConfigured("openai", false)
		if v := testutil.ToFloat64(collector.providerMetrics.configured.WithLabelValues("openai")); v != 0.0 {
			t.Errorf("Expected configured=0.0, got %f", v)
		}
	})

	t.Run("upstream call", func(t *testing.T) {
		collector.RecordUpstream("anthropic", "claude", 429, 300*time.Millisecond)
		if v := testutil.ToFloat64(collector.providerMetrics.requests.WithLabelValues("anthropic", "4xx")); v != 1 {
			t.Errorf("Expected one 4xx call, got %f", v)
		}
	})

	t.Run("fault", func(t *testing.T) {
		collector.RecordFault("anthropic", "upstream")
		if v := testutil.ToFloat64(collector.providerMetrics.errors.WithLabelValues("anthropic", "upstream")); v != 1 {
			t.Errorf("Expected one fault, got %f", v)
		}
	})

	t.Run("size", func(t *testing.T) {
		collector.RecordSize("openai", "request", 2048)
		if n := testutil.CollectAndCount(collector.requestMetrics.sizeBytes); n != 1 {
			t.Errorf("Expected one size series, got %d", n)
		}
	})
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, prometheus.NewRegistry())

	collector.RecordDispatch("openai", "gpt-4o", OutcomeSuccess, time.Second)
	collector.RecordUsage("openai", "gpt-4o", 10, 20)
	collector.RecordFault("openai", "transport")
	collector.UpdateProviderConfigured("openai", true)

	if n := testutil.CollectAndCount(collector.requestMetrics.requestsTotal); n != 0 {
		t.Errorf("Expected nothing recorded when disabled, got %d series", n)
	}
}

func TestCollector_NilIsNoop(t *testing.T) {
	var collector *Collector

	// None of these may panic.
	collector.RecordDispatch("openai", "gpt-4o", OutcomeSuccess, time.Second)
	collector.RecordUpstream("openai", "gpt-4o", 200, time.Second)
	collector.RecordUsage("openai", "gpt-4o", 1, 1)
	collector.RecordFault("openai", "transport")
	collector.RecordSize("openai", "response", 10)
	collector.UpdateProviderConfigured("openai", true)
}

func TestCollector_ModelCardinality(t *testing.T) {
	cfg := testConfig()
	cfg.MaxCardinality = 2
	collector := NewCollector(cfg, prometheus.NewRegistry())

	collector.RecordDispatch("openai", "model-a", OutcomeSuccess, time.Millisecond)
	collector.RecordDispatch("openai", "model-b", OutcomeSuccess, time.Millisecond)
	collector.RecordDispatch("openai", "model-c", OutcomeSuccess, time.Millisecond)
	collector.RecordDispatch("openai", "model-a", OutcomeSuccess, time.Millisecond)

	if v := testutil.ToFloat64(collector.requestMetrics.requestsTotal.WithLabelValues("openai", "model-a", OutcomeSuccess)); v != 2 {
		t.Errorf("Expected model-a count 2, got %f", v)
	}
	if v := testutil.ToFloat64(collector.requestMetrics.requestsTotal.WithLabelValues("openai", "other", OutcomeSuccess)); v != 1 {
		t.Errorf("Expected overflow model recorded as other, got %f", v)
	}
}

func TestCardinalityLimiter(t *testing.T) {
	limiter := NewCardinalityLimiter(3)

	if !limiter.Allow("label1") {
		t.Error("Expected first label to be allowed")
	}
	if !limiter.Allow("label2") {
		t.Error("Expected second label to be allowed")
	}
	if !limiter.Allow("label3") {
		t.Error("Expected third label to be allowed")
	}

	if limiter.Allow("label4") {
		t.Error("Expected fourth label to be rejected")
	}

	if !limiter.Allow("label1") {
		t.Error("Expected existing label to be allowed")
	}

	if limiter.Count() != 3 {
		t.Errorf("Expected count=3, got %d", limiter.Count())
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{400, "4xx"},
		{429, "4xx"},
		{503, "5xx"},
		{0, "unknown"},
		{700, "unknown"},
	}

	for _, tt := range tests {
		if got := StatusClass(tt.code); got != tt.want {
			t.Errorf("StatusClass(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.RecordDispatch("openai", "gpt-4o", OutcomeSuccess, time.Second)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "test_metrics_requests_total") {
		t.Errorf("Expected exposition to contain requests_total, got:\n%s", body)
	}
}

func TestCollector_ConcurrentRecording(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				collector.RecordDispatch("openai", "gpt-4o", OutcomeSuccess, time.Millisecond)
				collector.RecordUpstream("openai", "gpt-4o", 200, time.Millisecond)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	count := testutil.ToFloat64(collector.requestMetrics.requestsTotal.WithLabelValues("openai", "gpt-4o", OutcomeSuccess))
	if count != 1000 {
		t.Errorf("Expected 1000 requests, got %f", count)
	}
}
