package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
)

var (
	// Global flags
	cfgFile  string
	envFiles []string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "callisto",
	Short: "Callisto - one chat API for OpenAI and Anthropic",
	Long: `Callisto is a provider-normalization gateway for LLM chat APIs.

Callers send one canonical request shape that names the provider. Callisto
translates it to the OpenAI or Anthropic wire format, performs a single
upstream call, and answers with a single canonical response or error.

Credentials are read from the environment (OPENAI_API_KEY,
ANTHROPIC_API_KEY), from .env files, or from the configuration file.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the mapped status code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults and environment only when empty)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "env files to load before reading configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
