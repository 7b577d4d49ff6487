// Package middleware provides HTTP middleware for cross-cutting concerns:
// request IDs, access logging, body size limits and panic recovery.
//
// # Middleware Chain
//
// The server applies the chain with Chain, outermost first:
//
//	handler = Chain(mux,
//	    tracing.HTTPMiddleware,
//	    RequestIDMiddleware,
//	    LoggingMiddleware,
//	    RecoveryMiddleware,
//	    BodyLimitMiddleware(cfg.MaxBodyBytes),
//	)
//
// RequestIDMiddleware runs before LoggingMiddleware so the access log line
// carries the request ID. RecoveryMiddleware sits inside LoggingMiddleware
// so a recovered panic is logged with its 500 status.
//
// # Request ID
//
// Each request gets a UUID v4 unless the client sent a usable one:
//
//	X-Request-ID: 550e8400-e29b-41d4-a716-446655440000
//
// The ID is stored with logging.WithRequestID, so every log record written
// with the request context includes it, and it is echoed in the response.
//
// # Errors
//
// Middleware that rejects a request writes the same canonical envelope as
// the handlers:
//
//	{"error": "An internal error occurred. Please try again later."}
package middleware
