package cli

import (
	"errors"
	"fmt"

	"mercator-hq/callisto/pkg/providers"
)

// Process exit codes returned by the callisto binary.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitConfigError  = 2
	ExitGatewayError = 3
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to the process exit code.
// A GatewayError anywhere in the chain wins over a CommandError wrapper.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var gerr *providers.GatewayError
	if errors.As(err, &gerr) {
		return ExitGatewayError
	}

	var cerr *ConfigError
	if errors.As(err, &cerr) {
		return ExitConfigError
	}

	return ExitFailure
}
