// Package logging configures log/slog for Callisto.
//
// New returns a *slog.Logger whose handler:
//   - writes JSON or text at the configured level
//   - masks API keys, bearer tokens and x-api-key values
//   - adds request_id, provider, model and trace_id taken from the context
//
// Context fields are attached by the HTTP middleware and the dispatcher:
//
//	ctx = logging.WithRequestID(ctx, id)
//	logger.InfoContext(ctx, "dispatching request")
//
// Redaction applies to attribute values and messages; keys named like
// api_key or authorization are always masked.
package logging
