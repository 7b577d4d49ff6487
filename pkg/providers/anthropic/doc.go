// Package anthropic implements the Anthropic provider adapter.
//
// This package translates canonical chat requests to Anthropic's Messages API
// (version 2023-06-01) and turns Messages API replies back into the
// canonical chat.completion shape.
//
// # Basic Usage
//
//	adapter := anthropic.NewAdapter(providers.ProviderConfig{
//	    APIKey: os.Getenv("ANTHROPIC_API_KEY"),
//	})
//
//	call, err := adapter.Prepare(req)
//	// POST call.Body to call.URL with call.Headers
//
// # Request Transformation
//
//   - System messages are lifted into the top-level "system" field; if there
//     are several, the last one is used
//   - Remaining messages are sent in order as {role, content}
//   - max_tokens is required by the API and defaults to 4096
//   - tools and tool_choice are relayed only when present
//   - response_format has no equivalent and is dropped
//
// # Response Transformation
//
//   - Content blocks are scanned in order; the first text block becomes the
//     message content and ends the scan
//   - A tool_use block before that becomes the single tool call, its input
//     rendered as compact JSON, and sets finish_reason to "tool_calls"
//   - Otherwise finish_reason is the upstream stop_reason as-is, or "stop"
//   - usage maps input_tokens/output_tokens to prompt/completion tokens
//   - A missing id is replaced by a generated "msg_<uuid>"
//
// # Authentication
//
// Requests carry x-api-key and anthropic-version headers rather than an
// Authorization bearer token.
package anthropic
