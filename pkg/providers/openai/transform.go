package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"mercator-hq/callisto/pkg/providers"
)

// OpenAI API request types

// OpenAIRequest represents an OpenAI chat completion request.
type OpenAIRequest struct {
	Model               string              `json:"model"`
	Messages            []providers.Message `json:"messages"`
	MaxCompletionTokens *int                `json:"max_completion_tokens,omitempty"`
	Temperature         *float64            `json:"temperature,omitempty"`
	Tools               []providers.Tool    `json:"tools,omitempty"`
	ToolChoice          json.RawMessage     `json:"tool_choice,omitempty"`
	ResponseFormat      json.RawMessage     `json:"response_format,omitempty"`
}

// transformRequest transforms a canonical request to OpenAI format.
// Messages are relayed as given; the caller's max_tokens is sent as
// max_completion_tokens.
func transformRequest(req *providers.ChatRequest, defaultModel string) *OpenAIRequest {
	model := req.Model
	if model == "" {
		model = defaultModel
	}

	messages := req.Messages
	if messages == nil {
		messages = []providers.Message{}
	}

	return &OpenAIRequest{
		Model:               model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         req.Temperature,
		Tools:               req.Tools,
		ToolChoice:          req.ToolChoice,
		ResponseFormat:      req.ResponseFormat,
	}
}

// transformResponse decodes a 2xx OpenAI body. The body already has the
// canonical shape, so the returned response encodes as the original bytes.
func transformResponse(body []byte) (*providers.ChatResponse, error) {
	resp, err := providers.PassthroughResponse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}

// chatCompletionsURL joins the configured base URL and the endpoint path.
func chatCompletionsURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/chat/completions"
}
