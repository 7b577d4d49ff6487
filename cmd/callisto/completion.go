package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionFlags struct {
	noDescriptions bool
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate a shell completion script for the callisto binary.

The script completes subcommands (run, chat, validate, version), their
flags, and flag values such as 'validate --format' and 'run --log-level'.
'chat --file' completes to .json files.

Bash:
  $ source <(callisto completion bash)
  $ callisto completion bash > /etc/bash_completion.d/callisto

Zsh:
  $ callisto completion zsh > "${fpath[1]}/_callisto"
  $ compinit

Fish:
  $ callisto completion fish > ~/.config/fish/completions/callisto.fish

PowerShell:
  PS> callisto completion powershell | Out-String | Invoke-Expression`,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	DisableFlagsInUseLine: true,
	RunE:                  runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)

	completionCmd.Flags().BoolVar(&completionFlags.noDescriptions, "no-descriptions", false, "omit completion descriptions")
}

func runCompletion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	descriptions := !completionFlags.noDescriptions

	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletionV2(out, descriptions)
	case "zsh":
		if descriptions {
			return rootCmd.GenZshCompletion(out)
		}
		return rootCmd.GenZshCompletionNoDesc(out)
	case "fish":
		return rootCmd.GenFishCompletion(out, descriptions)
	case "powershell":
		if descriptions {
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return rootCmd.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s", args[0])
	}
}

// fixedValues completes a flag from a closed set of values.
func fixedValues(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
