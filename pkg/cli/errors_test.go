package cli

import (
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	underlyingErr := errors.New("unknown key 'chek_links'")
	err := &ConfigError{
		Path: ".bibcheck.yaml",
		Err:  underlyingErr,
	}

	expected := "configuration error in .bibcheck.yaml: unknown key 'chek_links'"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with ConfigError.Unwrap()")
	}
}

func TestNewConfigError(t *testing.T) {
	underlyingErr := errors.New("test")
	err := NewConfigError("custom.yaml", underlyingErr)
	if err.Path != "custom.yaml" {
		t.Errorf("Path = %q, want %q", err.Path, "custom.yaml")
	}
	if err.Err != underlyingErr {
		t.Errorf("Err = %v, want %v", err.Err, underlyingErr)
	}
}

func TestCommandError(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := &CommandError{
		Command: "lint",
		Err:     underlyingErr,
	}

	expected := "command lint failed: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := &CommandError{
		Command: "lint",
		Err:     underlyingErr,
	}

	unwrapped := err.Unwrap()
	if unwrapped != underlyingErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlyingErr)
	}

	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with CommandError.Unwrap()")
	}
}

func TestCommandErrorWrapsLintFailed(t *testing.T) {
	err := NewCommandError("lint", ErrLintFailed)
	if !errors.Is(err, ErrLintFailed) {
		t.Error("errors.Is() should find ErrLintFailed through CommandError")
	}
}
