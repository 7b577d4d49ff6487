// Package providers defines the canonical chat-completion model and the
// provider-neutral plumbing used to talk to upstream LLM APIs.
//
// # Overview
//
// Callers speak one request and response shape (ChatRequest, ChatResponse)
// regardless of which upstream serves them. Each upstream has an Adapter that
// knows how to build its wire request and how to read its replies; the
// network round-trip is handled by Transport, and every failure is reported
// as a *GatewayError carrying a message, optional details and an HTTP status.
//
// # Architecture
//
// The package is organized into several layers:
//
//  1. Canonical model - ChatRequest, ChatResponse, ToolCall, Usage
//  2. Errors - GatewayError and its FaultKind, TransportError, MapUpstreamError
//  3. Adapter interface - implemented by the openai and anthropic subpackages
//  4. Transport - one pooled HTTP client, one POST per dispatch, no retry
//
// # Basic Usage
//
// Adapters are normally obtained from the providerfactory registry and driven
// by the gateway dispatcher. Using the pieces directly:
//
//	adapter := openai.NewAdapter(providers.ProviderConfig{
//	    Name:   "openai",
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	})
//	transport := providers.NewTransport(providers.TransportConfig{})
//
//	call, err := adapter.Prepare(&providers.ChatRequest{
//	    Provider: "openai",
//	    Messages: []providers.Message{{Role: "user", Content: providers.TextContent("Hello!")}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	raw, err := transport.Send(ctx, call)
//	if err != nil {
//	    log.Fatal(providers.NewTransportError(err))
//	}
//	if !raw.IsSuccess() {
//	    log.Fatal(adapter.MapError(raw.StatusCode, raw.Body))
//	}
//	resp, err := adapter.NormalizeResponse(call, raw.Body)
//
// # Errors
//
// Error messages are part of the external contract:
//
//	Unknown provider: <name>                       400
//	<Provider> API key not configured on server    500
//	Request failed: <detail>                       500
//	<upstream error.message | "<Provider> API error">  upstream status
//
// # Thread Safety
//
// Adapters and Transport hold no mutable state after construction and are
// safe for concurrent use.
package providers
