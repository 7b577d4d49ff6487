package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/server"
)

// flushTimeout bounds trace flushing and transport cleanup after shutdown.
const flushTimeout = 5 * time.Second

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Callisto gateway server",
	Long: `Start the Callisto HTTP gateway with the specified configuration.

The server accepts canonical chat requests on POST /v1/chat and serves
/health, /ready and, when enabled, /metrics. It shuts down gracefully on
SIGINT or SIGTERM.

Examples:
  # Start with defaults and environment credentials
  callisto run

  # Start with a config file
  callisto run --config /etc/callisto/config.yaml

  # Override listen address
  callisto run --listen 0.0.0.0:8080

  # Validate config without starting server
  callisto run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")

	_ = runCmd.RegisterFlagCompletionFunc("log-level", fixedValues("debug", "info", "warn", "error"))
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Proxy.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return cli.NewConfigError("", err.Error())
	}

	out := cmd.OutOrStdout()
	if runFlags.dryRun {
		fmt.Fprintln(out, "✓ Configuration valid")
		return nil
	}

	deps, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		deps.close(ctx)
	}()

	fmt.Fprintf(out, "Callisto v%s\n", Version)
	writeProviders(out, deps.registry.Status())

	var opts []server.Option
	if cfg.Telemetry.Metrics.Enabled {
		opts = append(opts, server.WithMetricsHandler(cfg.Telemetry.Metrics.Path, deps.collector.Handler()))
	}
	srv := server.NewServer(&cfg.Proxy, deps.dispatcher, deps.registry, opts...)

	slog.Info("starting gateway",
		"address", cfg.Proxy.ListenAddress,
		"metrics_enabled", cfg.Telemetry.Metrics.Enabled,
		"tracing_enabled", cfg.Telemetry.Tracing.Enabled,
	)

	if err := srv.Start(cmd.Context()); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Fprintln(out, "✓ Server stopped")
	return nil
}
