package anthropic

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"mercator-hq/callisto/pkg/providers"
)

const (
	// ProviderName is the identifier used in canonical requests.
	ProviderName = "anthropic"

	// DisplayName is used in error messages.
	DisplayName = "Anthropic"

	// DefaultBaseURL is the public Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com"

	// DefaultModel is used when neither the request nor the config names one.
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultAnthropicVersion is the API version to use
	DefaultAnthropicVersion = "2023-06-01"
)

// Adapter is the Anthropic provider adapter.
// It implements providers.Adapter for Anthropic's Messages API.
type Adapter struct {
	config providers.ProviderConfig
}

// NewAdapter creates a new Anthropic adapter. A missing API key is accepted
// here and reported when the adapter is first used.
func NewAdapter(config providers.ProviderConfig) *Adapter {
	if config.Name == "" {
		config.Name = ProviderName
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.DefaultModel == "" {
		config.DefaultModel = DefaultModel
	}

	slog.Debug("Anthropic adapter initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
		"configured", config.APIKey != "",
	)

	return &Adapter{config: config}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return a.config.Name
}

// DisplayName returns "Anthropic".
func (a *Adapter) DisplayName() string {
	return DisplayName
}

// Configured reports whether an API key is set.
func (a *Adapter) Configured() bool {
	return a.config.APIKey != ""
}

// Config returns the adapter's configuration.
func (a *Adapter) Config() providers.ProviderConfig {
	return a.config
}

// Prepare builds the messages call for req.
func (a *Adapter) Prepare(req *providers.ChatRequest) (*providers.Call, error) {
	anthropicReq := transformRequest(req, a.config.DefaultModel)

	if len(req.ResponseFormat) > 0 {
		slog.Debug("dropping response_format unsupported by provider",
			"provider", a.config.Name,
		)
	}

	body, err := json.Marshal(anthropicReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	return &providers.Call{
		Provider: a.config.Name,
		URL:      messagesURL(a.config.BaseURL),
		Headers: map[string]string{
			"x-api-key":         a.config.APIKey,
			"anthropic-version": DefaultAnthropicVersion,
		},
		Body:  body,
		Model: anthropicReq.Model,
	}, nil
}

// NormalizeResponse converts a successful Messages API body to canonical form.
func (a *Adapter) NormalizeResponse(call *providers.Call, body []byte) (*providers.ChatResponse, error) {
	resp, err := transformResponse(body, call.Model)
	if err != nil {
		return nil, err
	}

	slog.Debug("completion request succeeded",
		"provider", a.config.Name,
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
		"finish_reason", resp.Choices[0].FinishReason,
	)

	return resp, nil
}

// MapError converts a non-2xx Anthropic reply into a canonical error.
func (a *Adapter) MapError(status int, body []byte) *providers.GatewayError {
	return providers.MapUpstreamError(DisplayName, status, body)
}

var _ providers.Adapter = (*Adapter)(nil)
