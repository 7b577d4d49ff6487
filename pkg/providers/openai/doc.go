// Package openai implements the OpenAI provider adapter.
//
// The canonical request format is OpenAI's own chat completions format, so
// this adapter does very little: messages, temperature, tools, tool_choice
// and response_format are relayed as given, max_tokens is renamed to
// max_completion_tokens, and a successful response body is returned to the
// caller byte-for-byte.
//
// # Basic Usage
//
//	adapter := openai.NewAdapter(providers.ProviderConfig{
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	})
//
//	call, err := adapter.Prepare(req)
//	// POST call.Body to call.URL with call.Headers
//
// # Configuration
//
// BaseURL defaults to https://api.openai.com/v1 and may point at any
// OpenAI-compatible endpoint. DefaultModel defaults to gpt-4o-mini.
package openai
