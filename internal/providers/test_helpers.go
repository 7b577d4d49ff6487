// Package providers contains test fixtures for exercising provider adapters
// and the dispatcher against a fake upstream.
package providers

import (
	"net/http"
	"time"

	"mercator-hq/callisto/pkg/providers"
)

// TestConfig returns a configured provider pointing at baseURL.
func TestConfig(name, baseURL string) providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:    name,
		BaseURL: baseURL,
		APIKey:  "test-key",
	}
}

// TestTransportConfig returns a short-timeout transport configuration.
func TestTransportConfig() providers.TransportConfig {
	return providers.TransportConfig{
		Timeout:             5 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestMessage creates a test message with text content.
func TestMessage(role, content string) providers.Message {
	return providers.Message{
		Role:    role,
		Content: providers.TextContent(content),
	}
}

// TestChatRequest creates a canonical request for provider.
func TestChatRequest(provider string, messages ...providers.Message) *providers.ChatRequest {
	return &providers.ChatRequest{
		Provider: provider,
		Messages: messages,
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// MockOpenAIResponse creates a mock OpenAI chat completion response.
func MockOpenAIResponse(content string, model string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   model,
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]interface{}{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

// MockAnthropicResponse creates a mock Anthropic messages response with a
// single text block.
func MockAnthropicResponse(content string, model string) map[string]interface{} {
	return MockAnthropicContent(model, "end_turn", AnthropicText(content))
}

// MockAnthropicContent creates a mock Anthropic messages response with the
// given content blocks.
func MockAnthropicContent(model, stopReason string, blocks ...map[string]interface{}) map[string]interface{} {
	if blocks == nil {
		blocks = []map[string]interface{}{}
	}
	return map[string]interface{}{
		"id":          "msg_123",
		"type":        "message",
		"role":        "assistant",
		"content":     blocks,
		"model":       model,
		"stop_reason": stopReason,
		"usage": map[string]interface{}{
			"input_tokens":  10,
			"output_tokens": 20,
		},
	}
}

// AnthropicText creates a text content block.
func AnthropicText(text string) map[string]interface{} {
	return map[string]interface{}{
		"type": "text",
		"text": text,
	}
}

// AnthropicToolUse creates a tool_use content block.
func AnthropicToolUse(id, name string, input interface{}) map[string]interface{} {
	block := map[string]interface{}{
		"type": "tool_use",
		"id":   id,
		"name": name,
	}
	if input != nil {
		block["input"] = input
	}
	return block
}

// MockErrorResponse creates a mock error response in the OpenAI envelope.
func MockErrorResponse(statusCode int, message string) MockResponse {
	return MockResponse{
		StatusCode: statusCode,
		Body: map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
				"type":    "invalid_request_error",
				"code":    statusCode,
			},
		},
	}
}

// MockAnthropicErrorResponse creates a mock error response in the Anthropic envelope.
func MockAnthropicErrorResponse(statusCode int, errorType, message string) MockResponse {
	return MockResponse{
		StatusCode: statusCode,
		Body: map[string]interface{}{
			"type": "error",
			"error": map[string]interface{}{
				"type":    errorType,
				"message": message,
			},
		},
	}
}

// MockAuthError creates a 401 authentication error response.
func MockAuthError() MockResponse {
	return MockErrorResponse(http.StatusUnauthorized, "Invalid API key")
}

// MockRateLimitError creates a 429 rate limit error response.
func MockRateLimitError() MockResponse {
	return MockErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded")
}

// MockServerError creates a 500 response whose body is not JSON.
func MockServerError() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       "upstream exploded",
	}
}

// MockSlowResponse creates a response delayed past short transport timeouts.
func MockSlowResponse(delay time.Duration) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       MockOpenAIResponse("too late", "gpt-4o-mini"),
		Delay:      delay,
	}
}
