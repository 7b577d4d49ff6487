package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/providers"
	"mercator-hq/callisto/pkg/proxy"
)

var chatFlags struct {
	file   string
	pretty bool
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Dispatch one canonical chat request",
	Long: `Read a canonical chat request, send it to the provider it names and
print the canonical response.

On failure the canonical error body ({"error": ..., "details": ...}) is
printed and the command exits with status 3.

Examples:
  # From a file
  callisto chat --file request.json

  # From stdin
  echo '{"provider":"anthropic","messages":[{"role":"user","content":"Hi"}]}' | callisto chat`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&chatFlags.file, "file", "f", "-", "request file ('-' reads stdin)")
	chatCmd.Flags().BoolVar(&chatFlags.pretty, "pretty", false, "indent the JSON output")

	_ = chatCmd.MarkFlagFilename("file", "json")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := readChatRequest(cmd.InOrStdin(), chatFlags.file)
	if err != nil {
		return writeChatResult(cmd, nil, err)
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

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	resp, err := deps.dispatcher.Dispatch(ctx, req)
	return writeChatResult(cmd, resp, err)
}

// readChatRequest decodes the canonical request from path, or from stdin
// when path is "-".
func readChatRequest(stdin io.Reader, path string) (*providers.ChatRequest, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, cli.NewCommandError("chat", fmt.Errorf("failed to open request file: %w", err))
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, proxy.DefaultMaxBodyBytes+1))
	if err != nil {
		return nil, cli.NewCommandError("chat", fmt.Errorf("failed to read request: %w", err))
	}

	var req providers.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, providers.NewInvalidRequestError(fmt.Sprintf("Invalid request body: %v", err), err)
	}
	return &req, nil
}

// writeChatResult prints the response or the canonical error and returns
// err so the exit code reflects the failure.
func writeChatResult(cmd *cobra.Command, resp *providers.ChatResponse, err error) error {
	formatter := &cli.JSONFormatter{Indent: chatFlags.pretty}

	if err == nil {
		return formatter.FormatTo(cmd.OutOrStdout(), resp)
	}

	gerr := proxy.HandleError(err)
	if gerr.Kind == proxy.FaultInternal {
		return err
	}
	if ferr := formatter.FormatTo(cmd.OutOrStdout(), gerr); ferr != nil {
		return ferr
	}
	return cli.NewCommandError("chat", gerr)
}
