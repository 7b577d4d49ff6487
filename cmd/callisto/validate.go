package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/providerfactory"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and report credential presence",
	Long: `Load and validate the configuration, then report which providers have an
API key. Key values are never printed.

A missing API key is not an error: requests to that provider fail with a
configuration error at dispatch time.

Examples:
  # Validate defaults plus environment
  callisto validate

  # Validate a config file, JSON output
  callisto validate --config config.yaml --format json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")

	_ = validateCmd.RegisterFlagCompletionFunc("format", fixedValues("text", "json"))
}

// validationReport is the result of the validate command.
type validationReport struct {
	Valid     bool            `json:"valid"`
	Source    string          `json:"source"`
	Listen    string          `json:"listen_address"`
	Providers map[string]bool `json:"providers"`
	Metrics   bool            `json:"metrics_enabled"`
	Tracing   bool            `json:"tracing_enabled"`
}

// String renders the report for text output.
func (r validationReport) String() string {
	var sb strings.Builder
	sb.WriteString("✓ Configuration valid\n")
	sb.WriteString(fmt.Sprintf("Source: %s\n", r.Source))
	sb.WriteString(fmt.Sprintf("Listen address: %s\n", r.Listen))
	sb.WriteString("Providers:\n")
	writeProviders(&sb, r.Providers)
	sb.WriteString(fmt.Sprintf("Metrics: %t\n", r.Metrics))
	sb.WriteString(fmt.Sprintf("Tracing: %t", r.Tracing))
	return sb.String()
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(validateFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := providerfactory.NewRegistry(cfg.ProviderSettings())
	if err != nil {
		return cli.NewConfigError("providers", err.Error())
	}

	source := cfgFile
	if source == "" {
		source = "defaults and environment"
	}

	report := validationReport{
		Valid:     true,
		Source:    source,
		Listen:    cfg.Proxy.ListenAddress,
		Providers: registry.Status(),
		Metrics:   cfg.Telemetry.Metrics.Enabled,
		Tracing:   cfg.Telemetry.Tracing.Enabled,
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), report)
}
