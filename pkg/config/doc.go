// Package config provides configuration management for bibcheck.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in three ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig(".bibcheck.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides(".bibcheck.yaml")
//
//  3. From an optional file, falling back to defaults when it is absent:
//     cfg, err := config.LoadOrDefault("")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention BIBCHECK_SECTION_FIELD.
// For example:
//
//   - BIBCHECK_LINT_CHECK_LINKS overrides lint.check_links
//   - BIBCHECK_LINT_LINK_TIMEOUT overrides lint.link_timeout
//   - BIBCHECK_OUTPUT_FORMAT overrides output.format
//
// Environment variables always take precedence over file-based
// configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides
// earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	lint:
//	  check_links: auto
//	  link_timeout: 3s
//	  link_threshold: 25
//
//	journals:
//	  jfr: [author, title, journal, volume, year]
//
//	output:
//	  format: text
//	  color: auto
package config
