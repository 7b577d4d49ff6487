// Package gateway implements the dispatcher at the center of Callisto.
//
// A Dispatcher takes one canonical providers.ChatRequest, picks the adapter
// named by its provider field, and drives a single upstream exchange:
//
//	adapter.Prepare -> transport.Send -> adapter.NormalizeResponse (2xx)
//	                                  -> adapter.MapError          (otherwise)
//
// Failures are always returned as *providers.GatewayError, carrying the
// HTTP status the front door should report. There are no retries.
//
// # Usage
//
//	registry, _ := providerfactory.NewRegistry(cfg.ProviderSettings())
//	transport := providers.NewTransport(cfg.TransportSettings())
//	dispatcher := gateway.New(registry, transport,
//		gateway.WithLogger(logger),
//		gateway.WithMetrics(collector),
//		gateway.WithTracer(tracer),
//	)
//
//	resp, err := dispatcher.Dispatch(ctx, req)
package gateway
