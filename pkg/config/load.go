package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// working directory when no explicit path is given.
const DefaultConfigFile = ".bibcheck.yaml"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	// Unknown keys are an error; an empty file decodes as an empty config.
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration file %q: %w", path, err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables follow the
// naming convention BIBCHECK_SECTION_FIELD (e.g., BIBCHECK_LINT_CHECK_LINKS)
// and always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration file at path when it exists and
// falls back to defaults otherwise. An empty path means DefaultConfigFile.
// Environment variable overrides apply in both cases.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat configuration file %q: %w", path, err)
		}
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := Validate(cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration after environment overrides: %w", err)
		}
		return cfg, nil
	}
	return LoadConfigWithEnvOverrides(path)
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format
// BIBCHECK_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Lint overrides
	if val := os.Getenv("BIBCHECK_LINT_CHECK_LINKS"); val != "" {
		cfg.Lint.CheckLinks = val
	}
	if val := os.Getenv("BIBCHECK_LINT_LINK_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Lint.LinkTimeout = d
		}
	}
	if val := os.Getenv("BIBCHECK_LINT_LINK_THRESHOLD"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Lint.LinkThreshold = i
		}
	}

	// Output overrides
	if val := os.Getenv("BIBCHECK_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("BIBCHECK_OUTPUT_NO_WARNINGS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Output.NoWarnings = b
		}
	}
	if val := os.Getenv("BIBCHECK_OUTPUT_COLOR"); val != "" {
		cfg.Output.Color = val
	}
}
