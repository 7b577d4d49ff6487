package providers

import (
	"encoding/json"
	"errors"
	"time"
)

// Tool is an opaque tool definition relayed to the provider untouched.
// The gateway never interprets it.
type Tool = json.RawMessage

// Message represents a single message in a conversation.
type Message struct {
	// Role identifies the message sender (system, user, assistant, tool)
	Role string `json:"role"`

	// Content is the message content as the caller sent it
	Content Content `json:"content,omitempty"`

	// Name is an optional name for the message sender
	Name string `json:"name,omitempty"`

	// ToolCalls contains function/tool calls made by the assistant (for assistant role)
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID is used when role is "tool" to reference which tool call this responds to
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// Content is the raw JSON of a message's content: a string, an array of
// content parts, or null. It is kept as received so the OpenAI path can
// relay it unchanged. An empty Content means the field was absent.
type Content json.RawMessage

// TextContent returns the content of a plain text message.
func TextContent(text string) Content {
	b, _ := json.Marshal(text)
	return Content(b)
}

// Text returns the content as text when it is a JSON string.
func (c Content) Text() (string, bool) {
	if len(c) == 0 || c[0] != '"' {
		return "", false
	}
	var text string
	if err := json.Unmarshal(c, &text); err != nil {
		return "", false
	}
	return text, true
}

// MarshalJSON returns c unchanged, or null when it is empty.
func (c Content) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	return c, nil
}

// UnmarshalJSON stores a copy of data, including a literal null.
func (c *Content) UnmarshalJSON(data []byte) error {
	if c == nil {
		return errors.New("providers.Content: UnmarshalJSON on nil pointer")
	}
	*c = append((*c)[0:0], data...)
	return nil
}

// ToolCall represents a function/tool call request from the model.
type ToolCall struct {
	// ID is a unique identifier for this tool call
	ID string `json:"id"`

	// Type is the type of tool call (currently always "function")
	Type string `json:"type"`

	// Function contains the function name and arguments
	Function FunctionCall `json:"function"`
}

// FunctionCall represents a specific function invocation.
type FunctionCall struct {
	// Name is the function name to call
	Name string `json:"name"`

	// Arguments is a JSON string containing the function arguments
	Arguments string `json:"arguments"`
}

// Usage tracks token consumption for a request.
type Usage struct {
	// PromptTokens is the number of tokens in the prompt
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens used (prompt + completion)
	TotalTokens int `json:"total_tokens"`
}

// NewUsage builds a Usage whose total is always the sum of its parts.
func NewUsage(promptTokens, completionTokens int) Usage {
	return Usage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
}

// ChatRequest is the canonical chat-completion request accepted by the gateway.
// It is transformed to provider-specific formats by each adapter.
type ChatRequest struct {
	// Provider selects the upstream provider ("openai", "anthropic")
	Provider string `json:"provider"`

	// Model is the model identifier; the provider default is used when empty
	Model string `json:"model,omitempty"`

	// Messages is the conversation history
	Messages []Message `json:"messages"`

	// MaxTokens is the maximum number of tokens to generate
	MaxTokens *int `json:"max_tokens,omitempty"`

	// Temperature controls randomness
	Temperature *float64 `json:"temperature,omitempty"`

	// Tools is a list of tool definitions the model can call
	Tools []Tool `json:"tools,omitempty"`

	// ToolChoice controls which tools can be called
	ToolChoice json.RawMessage `json:"tool_choice,omitempty"`

	// ResponseFormat requests structured output (OpenAI-style providers only)
	ResponseFormat json.RawMessage `json:"response_format,omitempty"`
}

// ChatResponse is the canonical chat-completion response.
//
// A response built by PassthroughResponse encodes as the upstream body it was
// decoded from; the exported fields are populated for inspection only.
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`

	raw json.RawMessage
}

// Choice is a single completion choice.
type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// ResponseMessage is the assistant message inside a Choice.
type ResponseMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// PassthroughResponse decodes an upstream body that already has the canonical
// shape and keeps the original bytes so the response is relayed unchanged.
func PassthroughResponse(body []byte) (*ChatResponse, error) {
	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	resp.raw = append(json.RawMessage(nil), body...)
	return &resp, nil
}

// MarshalJSON implements json.Marshaler.
func (r ChatResponse) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	type plain ChatResponse
	return json.Marshal(plain(r))
}

// ProviderConfig holds the per-provider settings an adapter is built from.
// It is read once at startup and never mutated.
type ProviderConfig struct {
	// Name is the provider identifier (e.g., "openai", "anthropic")
	Name string

	// BaseURL is the API endpoint base URL
	BaseURL string

	// APIKey is the authentication key; empty means the provider is unconfigured
	APIKey string

	// DefaultModel is used when a request names no model
	DefaultModel string
}

// TransportConfig controls the shared HTTP client used for upstream calls.
type TransportConfig struct {
	// Timeout is the per-call deadline covering connect, send and read
	Timeout time.Duration

	// MaxIdleConns is the maximum number of idle connections in the pool
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long an idle connection remains in the pool
	IdleConnTimeout time.Duration
}

// DefaultTimeout is the upstream call deadline when none is configured.
const DefaultTimeout = 120 * time.Second

// Message role constants
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Finish reason constants
const (
	FinishReasonStop      = "stop"
	FinishReasonLength    = "length"
	FinishReasonToolCalls = "tool_calls"
)

// ObjectChatCompletion is the object type of every canonical response.
const ObjectChatCompletion = "chat.completion"

// ToolTypeFunction is the only tool call type.
const ToolTypeFunction = "function"
