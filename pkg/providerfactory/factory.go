package providerfactory

import (
	"fmt"
	"log/slog"

	"mercator-hq/callisto/pkg/providers"
	"mercator-hq/callisto/pkg/providers/anthropic"
	"mercator-hq/callisto/pkg/providers/openai"
)

// SupportedProviders lists the provider identifiers the gateway accepts.
var SupportedProviders = []string{openai.ProviderName, anthropic.ProviderName}

// IsSupported reports whether name is a known provider identifier.
func IsSupported(name string) bool {
	for _, p := range SupportedProviders {
		if p == name {
			return true
		}
	}
	return false
}

// NewAdapter creates the adapter for the named provider.
//
// Supported providers:
//   - "openai": OpenAI chat completions API
//   - "anthropic": Anthropic Messages API
//
// An empty API key is not an error; the adapter reports itself as
// unconfigured and the dispatcher refuses to use it.
//
// Example:
//
//	adapter, err := NewAdapter("openai", providers.ProviderConfig{
//	    APIKey: "sk-...",
//	})
//	if err != nil {
//	    return err
//	}
func NewAdapter(name string, config providers.ProviderConfig) (providers.Adapter, error) {
	config.Name = name

	slog.Debug("creating provider adapter",
		"name", name,
		"base_url", config.BaseURL,
	)

	switch name {
	case openai.ProviderName:
		return openai.NewAdapter(config), nil

	case anthropic.ProviderName:
		return anthropic.NewAdapter(config), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %q (supported: openai, anthropic)", name)
	}
}
