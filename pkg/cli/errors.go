package cli

import (
	"errors"
	"fmt"
)

// ErrLintFailed signals that linting ran to completion and found errors.
// The diagnostics have already been rendered when this is returned, so the
// command runner maps it to a non-zero exit without printing anything more.
var ErrLintFailed = errors.New("lint failed")

// ConfigError represents a failure to load or validate a configuration file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error in %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
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
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{
		Path: path,
		Err:  err,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}
