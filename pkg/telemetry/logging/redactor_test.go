package logging

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactor_RedactString(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "openai key", input: "key=sk-abcdefghij123", want: "key=sk-***"},
		{name: "project key", input: "sk-proj-abc_def-ghi12345", want: "sk-***"},
		{name: "anthropic key", input: "using sk-ant-api03-abcdefgh", want: "using sk-***"},
		{name: "bearer token", input: "Authorization: Bearer abc.def.ghi", want: "Authorization: Bearer ***"},
		{name: "x-api-key header", input: `x-api-key: abc123secret`, want: `x-api-key: ***`},
		{name: "x-api-key json", input: `{"x-api-key":"abc123secret"}`, want: `{"x-api-key":"***"}`},
		{name: "short sk prefix untouched", input: "sk-short", want: "sk-short"},
		{name: "plain text", input: "hello world", want: "hello world"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RedactString(tt.input); got != tt.want {
				t.Errorf("RedactString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactor_RedactAttr(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{name: "sensitive key", attr: slog.String("api_key", "abcdefgh"), want: "abcd***"},
		{name: "authorization key", attr: slog.String("Authorization", "xyz"), want: "***"},
		{name: "token key", attr: slog.String("session_token", "tok_123456"), want: "tok_***"},
		{name: "sensitive non-string", attr: slog.Int("secret", 42), want: "***"},
		{name: "pattern in value", attr: slog.String("url", "https://x/?k=sk-abcdefghijkl"), want: "https://x/?k=sk-***"},
		{name: "error value", attr: slog.Any("error", errors.New("bad key sk-abcdefghijkl")), want: "bad key sk-***"},
		{name: "counter untouched", attr: slog.Int("completion_tokens", 7), want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RedactAttr(tt.attr)
			if got.Value.String() != tt.want {
				t.Errorf("RedactAttr(%v) = %q, want %q", tt.attr, got.Value.String(), tt.want)
			}
			if got.Key != tt.attr.Key {
				t.Errorf("key changed from %q to %q", tt.attr.Key, got.Key)
			}
		})
	}
}

func TestRedactor_RedactAttrGroup(t *testing.T) {
	r := NewRedactor()

	got := r.RedactAttr(slog.Group("request",
		slog.String("api_key", "secret-value"),
		slog.String("model", "gpt-4o"),
	))

	if got.Value.Kind() != slog.KindGroup {
		t.Fatalf("expected group kind, got %v", got.Value.Kind())
	}
	s := got.Value.String()
	if strings.Contains(s, "secret-value") {
		t.Errorf("group member not redacted: %s", s)
	}
	if !strings.Contains(s, "gpt-4o") {
		t.Errorf("non-sensitive group member lost: %s", s)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"api_key", true},
		{"APIKey", true},
		{"x-api-key", true},
		{"authorization", true},
		{"client_secret", true},
		{"token", true},
		{"refresh_token", true},
		{"prompt_tokens", false},
		{"total_tokens", false},
		{"provider", false},
	}

	for _, tt := range tests {
		if got := isSensitiveKey(tt.key); got != tt.want {
			t.Errorf("isSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRedactAPIKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "***"},
		{"sk-abcdef", "sk-a***"},
	}

	for _, tt := range tests {
		if got := RedactAPIKey(tt.input); got != tt.want {
			t.Errorf("RedactAPIKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
