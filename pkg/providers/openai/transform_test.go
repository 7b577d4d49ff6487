package openai

import (
	"encoding/json"
	"testing"

	"mercator-hq/callisto/pkg/providers"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestTransformRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      *providers.ChatRequest
		expected string
	}{
		{
			name: "minimal request uses default model",
			req: &providers.ChatRequest{
				Provider: "openai",
				Messages: []providers.Message{{Role: "user", Content: providers.TextContent("Hello")}},
			},
			expected: `{"model":"gpt-4o-mini","messages":[{"role":"user","content":"Hello"}]}`,
		},
		{
			name: "max_tokens is renamed",
			req: &providers.ChatRequest{
				Provider:    "openai",
				Model:       "gpt-4o",
				Messages:    []providers.Message{{Role: "user", Content: providers.TextContent("Hi")}},
				MaxTokens:   intPtr(256),
				Temperature: floatPtr(0.2),
			},
			expected: `{"model":"gpt-4o","messages":[{"role":"user","content":"Hi"}],"max_completion_tokens":256,"temperature":0.2}`,
		},
		{
			name: "zero temperature is still sent",
			req: &providers.ChatRequest{
				Provider:    "openai",
				Messages:    []providers.Message{{Role: "user", Content: providers.TextContent("Hi")}},
				Temperature: floatPtr(0),
			},
			expected: `{"model":"gpt-4o-mini","messages":[{"role":"user","content":"Hi"}],"temperature":0}`,
		},
		{
			name: "opaque fields relayed verbatim",
			req: &providers.ChatRequest{
				Provider: "openai",
				Messages: []providers.Message{
					{Role: "system", Content: providers.TextContent("Be brief")},
					{Role: "user", Content: providers.TextContent("Weather?")},
				},
				Tools:          []providers.Tool{json.RawMessage(`{"type":"function","function":{"name":"get_weather","parameters":{"type":"object"}}}`)},
				ToolChoice:     json.RawMessage(`"auto"`),
				ResponseFormat: json.RawMessage(`{"type":"json_object"}`),
			},
			expected: `{"model":"gpt-4o-mini","messages":[{"role":"system","content":"Be brief"},{"role":"user","content":"Weather?"}],"tools":[{"type":"function","function":{"name":"get_weather","parameters":{"type":"object"}}}],"tool_choice":"auto","response_format":{"type":"json_object"}}`,
		},
		{
			name: "tool result messages keep their ids",
			req: &providers.ChatRequest{
				Provider: "openai",
				Messages: []providers.Message{
					{Role: "assistant", Content: providers.TextContent(""), ToolCalls: []providers.ToolCall{{
						ID:       "call_1",
						Type:     "function",
						Function: providers.FunctionCall{Name: "get_weather", Arguments: `{"city":"Paris"}`},
					}}},
					{Role: "tool", Content: providers.TextContent("sunny"), ToolCallID: "call_1"},
				},
			},
			expected: `{"model":"gpt-4o-mini","messages":[{"role":"assistant","content":"","tool_calls":[{"id":"call_1","type":"function","function":{"name":"get_weather","arguments":"{\"city\":\"Paris\"}"}}]},{"role":"tool","content":"sunny","tool_call_id":"call_1"}]}`,
		},
		{
			name: "content parts relayed unchanged",
			req: &providers.ChatRequest{
				Provider: "openai",
				Messages: []providers.Message{
					{Role: "user", Content: providers.Content(`[{"type":"text","text":"What is this?"},{"type":"image_url","image_url":{"url":"https://example.com/cat.png"}}]`)},
				},
			},
			expected: `{"model":"gpt-4o-mini","messages":[{"role":"user","content":[{"type":"text","text":"What is this?"},{"type":"image_url","image_url":{"url":"https://example.com/cat.png"}}]}]}`,
		},
		{
			name: "null assistant content kept",
			req: &providers.ChatRequest{
				Provider: "openai",
				Messages: []providers.Message{
					{Role: "assistant", Content: providers.Content(`null`), ToolCalls: []providers.ToolCall{{
						ID:       "call_1",
						Type:     "function",
						Function: providers.FunctionCall{Name: "get_weather", Arguments: `{}`},
					}}},
				},
			},
			expected: `{"model":"gpt-4o-mini","messages":[{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"get_weather","arguments":"{}"}}]}]}`,
		},
		{
			name: "absent content stays absent",
			req: &providers.ChatRequest{
				Provider: "openai",
				Messages: []providers.Message{{Role: "user"}},
			},
			expected: `{"model":"gpt-4o-mini","messages":[{"role":"user"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(transformRequest(tt.req, DefaultModel))
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(out) != tt.expected {
				t.Errorf("unexpected payload\nwant %s\ngot  %s", tt.expected, out)
			}
		})
	}
}

func TestTransformRequestNilMessages(t *testing.T) {
	out, err := json.Marshal(transformRequest(&providers.ChatRequest{Provider: "openai"}, "gpt-4o"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	expected := `{"model":"gpt-4o","messages":[]}`
	if string(out) != expected {
		t.Errorf("expected %s, got %s", expected, out)
	}
}

func TestTransformRequestDecodedMessages(t *testing.T) {
	tests := []struct {
		name     string
		messages string
	}{
		{
			name:     "text parts and image",
			messages: `[{"role":"user","content":[{"type":"text","text":"hi"},{"type":"image_url","image_url":{"url":"data:image/png;base64,AAAA","detail":"low"}}]}]`,
		},
		{
			name:     "tool call turn with null content",
			messages: `[{"role":"user","content":"Weather?"},{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"get_weather","arguments":"{\"city\":\"Paris\"}"}}]},{"role":"tool","content":"sunny","tool_call_id":"call_1"}]`,
		},
		{
			name:     "named message",
			messages: `[{"role":"user","content":"hi","name":"alice"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req providers.ChatRequest
			if err := json.Unmarshal([]byte(`{"provider":"openai","messages":`+tt.messages+`}`), &req); err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			out, err := json.Marshal(transformRequest(&req, DefaultModel))
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}

			expected := `{"model":"gpt-4o-mini","messages":` + tt.messages + `}`
			if string(out) != expected {
				t.Errorf("messages not relayed unchanged\nwant %s\ngot  %s", expected, out)
			}
		})
	}
}

func TestChatCompletionsURL(t *testing.T) {
	tests := []struct {
		base     string
		expected string
	}{
		{"https://api.openai.com/v1", "https://api.openai.com/v1/chat/completions"},
		{"https://api.openai.com/v1/", "https://api.openai.com/v1/chat/completions"},
		{"http://localhost:11434/v1", "http://localhost:11434/v1/chat/completions"},
	}

	for _, tt := range tests {
		if got := chatCompletionsURL(tt.base); got != tt.expected {
			t.Errorf("chatCompletionsURL(%q) = %q, want %q", tt.base, got, tt.expected)
		}
	}
}

func TestTransformResponse(t *testing.T) {
	body := []byte(`{"id":"chatcmpl-9","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"f","arguments":"{}"}}]},"finish_reason":"tool_calls"}],"usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}}`)

	resp, err := transformResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Choices[0].FinishReason != providers.FinishReasonToolCalls {
		t.Errorf("expected tool_calls finish reason, got %q", resp.Choices[0].FinishReason)
	}
	if len(resp.Choices[0].Message.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(resp.Choices[0].Message.ToolCalls))
	}

	out, _ := json.Marshal(resp)
	if string(out) != string(body) {
		t.Errorf("expected body to be relayed unchanged, got %s", out)
	}
}

func TestTransformResponseInvalidJSON(t *testing.T) {
	if _, err := transformResponse([]byte("not json")); err == nil {
		t.Error("expected error for invalid body")
	}
}
