// Package proxy holds the HTTP edge helpers shared by the gateway handlers
// and middleware.
//
// It decodes the canonical chat request from an HTTP body and writes the
// canonical response and error envelopes:
//
//	{"error": "Unknown provider: gemini"}
//	{"error": "rate limited", "details": {"error": {"message": "rate limited"}}}
//
// The status code always comes from the GatewayError; for upstream faults
// it is the provider's own status.
//
// # Layout
//
//   - handlers: /v1/chat, /health and /ready
//   - middleware: request IDs, access logging, body limits, panic recovery
//
// Routing and server lifecycle live in pkg/server.
package proxy
