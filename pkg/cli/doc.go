/*
Package cli provides command-line interface utilities for the callisto binary.

Output Formatting:

Commands that print results accept --format text|json:

	format, err := cli.ParseFormat(flagValue)
	if err != nil {
		return err
	}
	if err := cli.NewFormatter(format).FormatTo(os.Stdout, report); err != nil {
		return err
	}

Exit Codes:

ExitCode maps a command error to the process status: 2 for configuration
problems, 3 when a dispatch ended in a gateway error, 1 otherwise.

Signal Handling:

For cancelling in-flight work on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
