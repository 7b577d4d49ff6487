package providerfactory

import (
	"testing"

	"mercator-hq/callisto/pkg/providers"
)

func TestNewAdapter(t *testing.T) {
	tests := []struct {
		name        string
		provider    string
		wantDisplay string
		wantErr     bool
	}{
		{"openai", "openai", "OpenAI", false},
		{"anthropic", "anthropic", "Anthropic", false},
		{"unknown", "mistral", "", true},
		{"case sensitive", "OpenAI", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewAdapter(tt.provider, providers.ProviderConfig{APIKey: "test-key"})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAdapter() failed: %v", err)
			}
			if adapter.Name() != tt.provider {
				t.Errorf("expected name %q, got %q", tt.provider, adapter.Name())
			}
			if adapter.DisplayName() != tt.wantDisplay {
				t.Errorf("expected display name %q, got %q", tt.wantDisplay, adapter.DisplayName())
			}
			if !adapter.Configured() {
				t.Error("expected adapter to be configured")
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, name := range []string{"openai", "anthropic"} {
		if !IsSupported(name) {
			t.Errorf("expected %q to be supported", name)
		}
	}
	for _, name := range []string{"", "gemini", "Anthropic", " openai"} {
		if IsSupported(name) {
			t.Errorf("expected %q to be unsupported", name)
		}
	}
}
