package openai

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"mercator-hq/callisto/pkg/providers"
)

const (
	// ProviderName is the identifier used in canonical requests.
	ProviderName = "openai"

	// DisplayName is used in error messages.
	DisplayName = "OpenAI"

	// DefaultBaseURL is the public OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when neither the request nor the config names one.
	DefaultModel = "gpt-4o-mini"
)

// Adapter is the OpenAI provider adapter.
// It implements providers.Adapter for the chat completions API.
type Adapter struct {
	config providers.ProviderConfig
}

// NewAdapter creates a new OpenAI adapter. A missing API key is accepted
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

	slog.Debug("OpenAI adapter initialized",
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

// DisplayName returns "OpenAI".
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

// Prepare builds the chat completions call for req.
func (a *Adapter) Prepare(req *providers.ChatRequest) (*providers.Call, error) {
	openaiReq := transformRequest(req, a.config.DefaultModel)

	body, err := json.Marshal(openaiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	return &providers.Call{
		Provider: a.config.Name,
		URL:      chatCompletionsURL(a.config.BaseURL),
		Headers: map[string]string{
			"Authorization": "Bearer " + a.config.APIKey,
		},
		Body:  body,
		Model: openaiReq.Model,
	}, nil
}

// NormalizeResponse relays a successful OpenAI body unchanged.
func (a *Adapter) NormalizeResponse(call *providers.Call, body []byte) (*providers.ChatResponse, error) {
	resp, err := transformResponse(body)
	if err != nil {
		return nil, err
	}

	slog.Debug("completion request succeeded",
		"provider", a.config.Name,
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return resp, nil
}

// MapError converts a non-2xx OpenAI reply into a canonical error.
func (a *Adapter) MapError(status int, body []byte) *providers.GatewayError {
	return providers.MapUpstreamError(DisplayName, status, body)
}

var _ providers.Adapter = (*Adapter)(nil)
