package anthropic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mercator-hq/callisto/pkg/providers"
)

// DefaultMaxTokens is sent when the caller gives no max_tokens; the
// Messages API requires the field.
const DefaultMaxTokens = 4096

// Anthropic API request/response types

// AnthropicRequest represents an Anthropic messages request.
type AnthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []AnthropicMessage `json:"messages"`
	System      string             `json:"system,omitempty"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature *float64           `json:"temperature,omitempty"`
	Tools       []providers.Tool   `json:"tools,omitempty"`
	ToolChoice  json.RawMessage    `json:"tool_choice,omitempty"`
}

// AnthropicMessage represents a message in Anthropic format. Content is
// relayed as the caller sent it.
type AnthropicMessage struct {
	Role    string            `json:"role"`
	Content providers.Content `json:"content,omitempty"`
}

// ContentBlock represents a response content block.
type ContentBlock struct {
	Type string `json:"type"` // "text" or "tool_use"
	Text string `json:"text,omitempty"`

	// For tool_use blocks
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}

// AnthropicResponse represents an Anthropic messages response.
type AnthropicResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Role       string         `json:"role"`
	Content    []ContentBlock `json:"content"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Usage      AnthropicUsage `json:"usage"`
}

// AnthropicUsage represents token usage in Anthropic format.
type AnthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Transformation functions

// transformRequest transforms a canonical request to Anthropic format.
//
// System messages are lifted out of the list; when there are several the
// last one wins. response_format has no Anthropic equivalent and is dropped.
// Other messages keep their content unchanged.
func transformRequest(req *providers.ChatRequest, defaultModel string) *AnthropicRequest {
	anthropicReq := &AnthropicRequest{
		Model:       req.Model,
		Messages:    make([]AnthropicMessage, 0, len(req.Messages)),
		MaxTokens:   DefaultMaxTokens,
		Temperature: req.Temperature,
	}

	if anthropicReq.Model == "" {
		anthropicReq.Model = defaultModel
	}
	if req.MaxTokens != nil {
		anthropicReq.MaxTokens = *req.MaxTokens
	}

	for _, msg := range req.Messages {
		if msg.Role == providers.RoleSystem {
			anthropicReq.System = systemText(msg.Content)
			continue
		}
		anthropicReq.Messages = append(anthropicReq.Messages, AnthropicMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	if len(req.Tools) > 0 {
		anthropicReq.Tools = req.Tools
	}
	if len(req.ToolChoice) > 0 {
		anthropicReq.ToolChoice = req.ToolChoice
	}

	return anthropicReq
}

// transformResponse transforms a 2xx Anthropic body to canonical format.
//
// Content blocks are scanned in order. The first text block supplies the
// message content and ends the scan. A tool_use block seen before it
// becomes the single tool call (a later one replaces an earlier one) and
// forces finish_reason to tool_calls.
func transformResponse(body []byte, requestedModel string) (*providers.ChatResponse, error) {
	var resp AnthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	id := resp.ID
	if id == "" {
		id = "msg_" + uuid.NewString()
	}
	model := resp.Model
	if model == "" {
		model = requestedModel
	}
	finishReason := resp.StopReason
	if finishReason == "" {
		finishReason = providers.FinishReasonStop
	}

	message := providers.ResponseMessage{Role: providers.RoleAssistant}

scan:
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			message.Content = block.Text
			break scan

		case "tool_use":
			args, err := compactArguments(block.Input)
			if err != nil {
				return nil, fmt.Errorf("failed to encode tool input: %w", err)
			}
			message.ToolCalls = []providers.ToolCall{{
				ID:   block.ID,
				Type: providers.ToolTypeFunction,
				Function: providers.FunctionCall{
					Name:      block.Name,
					Arguments: args,
				},
			}}
			finishReason = providers.FinishReasonToolCalls
		}
	}

	return &providers.ChatResponse{
		ID:     id,
		Object: providers.ObjectChatCompletion,
		Model:  model,
		Choices: []providers.Choice{{
			Index:        0,
			Message:      message,
			FinishReason: finishReason,
		}},
		Usage: providers.NewUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens),
	}, nil
}

// systemText returns the text of a system message. Array content
// contributes its text parts joined by newlines; anything else is empty.
func systemText(content providers.Content) string {
	if text, ok := content.Text(); ok {
		return text
	}

	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(content, &parts); err != nil {
		return ""
	}

	texts := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.Type == "text" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// compactArguments renders a tool_use input as compact JSON text.
// An absent or null input becomes "{}".
func compactArguments(input json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(input)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "{}", nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// messagesURL joins the configured base URL and the endpoint path.
func messagesURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/v1/messages"
}
