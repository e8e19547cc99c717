package config

import "time"

// Default values for configuration fields.
const (
	// Lint defaults
	DefaultCheckLinks    = "auto"
	DefaultLinkTimeout   = 3 * time.Second
	DefaultLinkThreshold = 25

	// Output defaults
	DefaultOutputFormat = "text"
	DefaultOutputColor  = "auto"
)

// ApplyDefaults applies default values to a Config struct. It sets defaults
// for any fields that have zero values. This function is idempotent and
// safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	if cfg.Lint.CheckLinks == "" {
		cfg.Lint.CheckLinks = DefaultCheckLinks
	}
	if cfg.Lint.LinkTimeout == 0 {
		cfg.Lint.LinkTimeout = DefaultLinkTimeout
	}
	if cfg.Lint.LinkThreshold == 0 {
		cfg.Lint.LinkThreshold = DefaultLinkThreshold
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = DefaultOutputColor
	}
}

// DefaultConfig returns a configuration populated with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
