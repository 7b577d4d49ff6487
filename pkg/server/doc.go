// Package server runs the gateway's HTTP front door.
//
// The server wires the chat, health and readiness handlers onto a ServeMux,
// optionally mounts the Prometheus handler, wraps everything in the
// middleware chain and manages the listener lifecycle.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//
//	registry, err := providerfactory.NewRegistry(cfg.ProviderSettings())
//	if err != nil {
//	    return err
//	}
//	transport := providers.NewTransport(cfg.TransportSettings())
//	defer transport.Close()
//
//	srv := server.NewServer(&cfg.Proxy, gateway.New(registry, transport), registry)
//	return srv.Start(ctx)
//
// # Routes
//
//   - POST /v1/chat: dispatch a canonical chat request
//   - GET /health: liveness
//   - GET /ready: credential presence per provider
//   - GET /metrics: Prometheus exposition, when WithMetricsHandler is given
//
// # Shutdown
//
// Start returns after a graceful shutdown triggered by context
// cancellation, SIGINT, SIGTERM or Stop. In-flight requests get up to
// proxy.shutdown_timeout to finish.
package server
