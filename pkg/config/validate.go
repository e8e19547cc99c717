package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g.,
	// "lint.check_links").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. It implements the error interface and provides access to
// all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a
// ValidationError if any validation rules fail. All validation errors are
// collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateLint(&cfg.Lint)...)
	errs = append(errs, validateJournals(cfg.Journals)...)
	errs = append(errs, validateOutput(&cfg.Output)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateLint(lint *LintConfig) []FieldError {
	var errs []FieldError

	switch lint.CheckLinks {
	case "auto", "always", "never":
	default:
		errs = append(errs, FieldError{
			Field:   "lint.check_links",
			Message: fmt.Sprintf("invalid value %q (must be one of: auto, always, never)", lint.CheckLinks),
		})
	}
	if lint.LinkTimeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "lint.link_timeout",
			Message: "must be positive",
		})
	}
	if lint.LinkThreshold <= 0 {
		errs = append(errs, FieldError{
			Field:   "lint.link_threshold",
			Message: "must be positive",
		})
	}
	return errs
}

func validateJournals(journals map[string][]string) []FieldError {
	var errs []FieldError
	for name, fields := range journals {
		if name == "" {
			errs = append(errs, FieldError{
				Field:   "journals",
				Message: "venue name must not be empty",
			})
			continue
		}
		if len(fields) == 0 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("journals.%s", name),
				Message: "required fields must not be empty",
			})
		}
		for _, field := range fields {
			if field == "" {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("journals.%s", name),
					Message: "required field names must not be empty",
				})
				break
			}
		}
	}
	return errs
}

func validateOutput(output *OutputConfig) []FieldError {
	var errs []FieldError

	switch output.Format {
	case "text", "json", "sarif":
	default:
		errs = append(errs, FieldError{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid value %q (must be one of: text, json, sarif)", output.Format),
		})
	}
	switch output.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, FieldError{
			Field:   "output.color",
			Message: fmt.Sprintf("invalid value %q (must be one of: auto, always, never)", output.Color),
		})
	}
	return errs
}
