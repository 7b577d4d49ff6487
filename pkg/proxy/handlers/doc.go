// Package handlers provides the HTTP endpoint handlers of the gateway.
//
// # Endpoints
//
//   - POST /v1/chat: ChatHandler. Body is the canonical chat request; the
//     reply is the canonical response, or {"error", "details"} with the
//     status carried by the error.
//   - GET /health: HealthHandler, liveness, always 200.
//   - GET /ready: ReadyHandler, 200 when at least one provider has a
//     credential, 503 otherwise. Lists each provider's configured flag.
//
// # Request Flow
//
// ChatHandler follows a fixed sequence:
//
//  1. Reject methods other than POST with 405
//  2. Decode the body (400 "Invalid request body: ..." on bad JSON)
//  3. Hand the request to the Dispatcher
//  4. Write the response or the error
//
// Validation of the provider name and credentials is the Dispatcher's job;
// the handler does not inspect the request beyond decoding it.
//
// # Example
//
//	curl -s localhost:8080/v1/chat -d '{
//	  "provider": "anthropic",
//	  "messages": [{"role": "user", "content": "Hello"}]
//	}'
package handlers
