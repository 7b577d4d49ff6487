package openai

import (
	"context"
	"net/http"
	"testing"

	testhelpers "mercator-hq/callisto/internal/providers"
	"mercator-hq/callisto/pkg/providers"
)

func TestNewAdapterDefaults(t *testing.T) {
	adapter := NewAdapter(providers.ProviderConfig{})

	cfg := adapter.Config()
	if cfg.Name != ProviderName {
		t.Errorf("expected name %q, got %q", ProviderName, cfg.Name)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.DefaultModel != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, cfg.DefaultModel)
	}
	if adapter.Configured() {
		t.Error("expected adapter without key to be unconfigured")
	}
	if adapter.DisplayName() != "OpenAI" {
		t.Errorf("expected display name OpenAI, got %q", adapter.DisplayName())
	}
}

func TestAdapterPrepare(t *testing.T) {
	adapter := NewAdapter(providers.ProviderConfig{
		APIKey:       "sk-test",
		BaseURL:      "https://example.test/v1",
		DefaultModel: "gpt-4.1-mini",
	})

	call, err := adapter.Prepare(testhelpers.TestChatRequest("openai", testhelpers.TestMessage("user", "Hi")))
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if call.URL != "https://example.test/v1/chat/completions" {
		t.Errorf("unexpected URL %q", call.URL)
	}
	if call.Headers["Authorization"] != "Bearer sk-test" {
		t.Errorf("unexpected Authorization header %q", call.Headers["Authorization"])
	}
	if call.Model != "gpt-4.1-mini" {
		t.Errorf("expected configured default model, got %q", call.Model)
	}
	if call.Provider != "openai" {
		t.Errorf("expected provider openai, got %q", call.Provider)
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	mock := testhelpers.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/v1/chat/completions", testhelpers.MockResponse{
		StatusCode: 200,
		Body:       testhelpers.MockOpenAIResponse("Hello, world!", "gpt-4o-mini"),
	})

	adapter := NewAdapter(testhelpers.TestConfig("openai", mock.URL()+"/v1"))
	transport := providers.NewTransport(testhelpers.TestTransportConfig())
	defer transport.Close()

	req := testhelpers.TestChatRequest("openai", testhelpers.TestMessage(providers.RoleUser, "Hello"))
	req.MaxTokens = testhelpers.IntPtr(50)

	call, err := adapter.Prepare(req)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	raw, err := transport.Send(context.Background(), call)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if !raw.IsSuccess() {
		t.Fatalf("expected success, got %d", raw.StatusCode)
	}

	resp, err := adapter.NormalizeResponse(call, raw.Body)
	if err != nil {
		t.Fatalf("NormalizeResponse failed: %v", err)
	}

	if resp.Choices[0].Message.Content != "Hello, world!" {
		t.Errorf("expected content %q, got %q", "Hello, world!", resp.Choices[0].Message.Content)
	}
	if resp.Usage.TotalTokens != 30 {
		t.Errorf("expected total tokens 30, got %d", resp.Usage.TotalTokens)
	}

	recorded, ok := mock.LastRequest()
	if !ok {
		t.Fatal("expected request to be recorded")
	}
	if recorded.Header.Get("Authorization") != "Bearer test-key" {
		t.Errorf("unexpected Authorization header %q", recorded.Header.Get("Authorization"))
	}
	payload, err := recorded.JSON()
	if err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if payload["max_completion_tokens"] != float64(50) {
		t.Errorf("expected max_completion_tokens 50, got %v", payload["max_completion_tokens"])
	}
	if _, present := payload["max_tokens"]; present {
		t.Error("expected max_tokens to be absent")
	}
}

func TestAdapterMapError(t *testing.T) {
	adapter := NewAdapter(providers.ProviderConfig{APIKey: "sk-test"})

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"auth", http.StatusUnauthorized, `{"error":{"message":"Invalid API key"}}`, "Invalid API key"},
		{"rate limit", http.StatusTooManyRequests, `{"error":{"message":"Rate limit exceeded"}}`, "Rate limit exceeded"},
		{"html", http.StatusBadGateway, `<html></html>`, "OpenAI API error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gerr := adapter.MapError(tt.status, []byte(tt.body))
			if gerr.Message != tt.wantMessage {
				t.Errorf("expected %q, got %q", tt.wantMessage, gerr.Message)
			}
			if gerr.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, gerr.Status)
			}
		})
	}
}
