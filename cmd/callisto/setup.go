package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/gateway"
	"mercator-hq/callisto/pkg/providerfactory"
	"mercator-hq/callisto/pkg/providers"
	"mercator-hq/callisto/pkg/telemetry/logging"
	"mercator-hq/callisto/pkg/telemetry/metrics"
	"mercator-hq/callisto/pkg/telemetry/tracing"
)

// loadConfig loads env files, then the configuration, applying --verbose.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return nil, cli.NewConfigError("env-file", err.Error())
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) && len(verr.Errors) == 1 {
			return nil, cli.NewConfigError(verr.Errors[0].Field, verr.Errors[0].Message)
		}
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}

	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}

// runtimeDeps holds everything a command needs to dispatch requests.
type runtimeDeps struct {
	logger     *slog.Logger
	registry   *providerfactory.Registry
	transport  *providers.Transport
	collector  *metrics.Collector
	tracer     *tracing.Tracer
	dispatcher *gateway.Dispatcher
}

// newRuntime wires logging, metrics, tracing, the provider registry and
// the dispatcher from cfg. The caller must call close.
func newRuntime(cfg *config.Config) (*runtimeDeps, error) {
	logger, err := logging.Setup(logging.FromConfig(cfg.Telemetry.Logging))
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}

	registry, err := providerfactory.NewRegistry(cfg.ProviderSettings())
	if err != nil {
		return nil, cli.NewConfigError("providers", err.Error())
	}

	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
	if err != nil {
		return nil, cli.NewConfigError("telemetry.tracing", err.Error())
	}

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}
	for name, configured := range registry.Status() {
		collector.UpdateProviderConfigured(name, configured)
		if !configured {
			logger.Warn("provider has no API key; requests to it will fail", "provider", name)
		}
	}

	transport := providers.NewTransport(cfg.TransportSettings())

	return &runtimeDeps{
		logger:    logger,
		registry:  registry,
		transport: transport,
		collector: collector,
		tracer:    tracer,
		dispatcher: gateway.New(registry, transport,
			gateway.WithLogger(logger),
			gateway.WithMetrics(collector),
			gateway.WithTracer(tracer),
		),
	}, nil
}

func (d *runtimeDeps) close(ctx context.Context) {
	if err := d.tracer.Shutdown(ctx); err != nil {
		d.logger.Warn("failed to flush traces", "error", err)
	}
	if err := d.transport.Close(); err != nil {
		d.logger.Warn("failed to close transport", "error", err)
	}
}

// writeProviders prints provider credential status without secrets.
func writeProviders(w io.Writer, status map[string]bool) {
	for _, name := range providerfactory.SupportedProviders {
		state := "missing API key"
		if status[name] {
			state = "configured"
		}
		fmt.Fprintf(w, "  %-10s %s\n", name, state)
	}
}
