package providers

// Adapter is the contract every upstream provider implements.
//
// An adapter owns the two provider-specific halves of a dispatch: building
// the outbound call from a canonical request, and turning the upstream reply
// back into canonical form. The network round-trip in between belongs to
// Transport, so adapters perform no I/O and are safe for concurrent use.
//
// Example usage:
//
//	call, err := adapter.Prepare(req)
//	if err != nil {
//	    return err
//	}
//	raw, err := transport.Send(ctx, call)
//	if err != nil {
//	    return NewTransportError(err)
//	}
//	if raw.IsSuccess() {
//	    return adapter.NormalizeResponse(call, raw.Body)
//	}
//	return nil, adapter.MapError(raw.StatusCode, raw.Body)
type Adapter interface {
	// Name returns the provider identifier used in canonical requests
	// (e.g., "openai", "anthropic").
	Name() string

	// DisplayName returns the human-readable provider name used in error
	// messages (e.g., "OpenAI", "Anthropic").
	DisplayName() string

	// Configured reports whether a credential is available.
	Configured() bool

	// Prepare builds the provider-specific HTTP call for req.
	// The resolved model is recorded on the returned Call.
	Prepare(req *ChatRequest) (*Call, error)

	// NormalizeResponse converts a 2xx upstream body into a canonical response.
	NormalizeResponse(call *Call, body []byte) (*ChatResponse, error)

	// MapError converts a non-2xx upstream reply into a canonical error.
	MapError(status int, body []byte) *GatewayError
}

// Call is a fully-built outbound request to a provider.
type Call struct {
	// Provider is the provider identifier
	Provider string

	// URL is the absolute endpoint
	URL string

	// Headers are the provider's auth and version headers
	Headers map[string]string

	// Body is the encoded JSON payload
	Body []byte

	// Model is the model the request resolved to after defaults
	Model string
}
