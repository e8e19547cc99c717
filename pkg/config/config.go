package config

import "time"

// Config is the root configuration structure for bibcheck. It covers the
// lint engine, user-declared journal venues, and output rendering.
type Config struct {
	// Lint contains validation engine configuration including link
	// probing behavior.
	Lint LintConfig `yaml:"lint"`

	// Journals maps additional venue macro names to their required
	// fields. Entries extend the built-in venue table and win on name
	// collisions.
	// Example: "jfr" -> ["author", "title", "journal", "volume", "year"]
	Journals map[string][]string `yaml:"journals"`

	// Output contains diagnostic rendering configuration.
	Output OutputConfig `yaml:"output"`
}

// LintConfig contains validation engine configuration.
type LintConfig struct {
	// CheckLinks controls when URL probes run.
	// Options: "auto" (probe when the bibliography is small), "always",
	// "never"
	// Default: "auto"
	CheckLinks string `yaml:"check_links"`

	// LinkTimeout is the maximum duration for a single URL probe.
	// Default: 3s
	LinkTimeout time.Duration `yaml:"link_timeout"`

	// LinkThreshold is the bibliography size at which "auto" stops
	// probing URLs.
	// Default: 25
	LinkThreshold int `yaml:"link_threshold"`
}

// OutputConfig contains diagnostic rendering configuration.
type OutputConfig struct {
	// Format controls the diagnostic output format.
	// Options: "text", "json", "sarif"
	// Default: "text"
	Format string `yaml:"format"`

	// NoWarnings suppresses warnings in the rendered output. The summary
	// line still counts them.
	// Default: false
	NoWarnings bool `yaml:"no_warnings"`

	// Color controls colored text output.
	// Options: "auto" (color when writing to a terminal), "always",
	// "never"
	// Default: "auto"
	Color string `yaml:"color"`
}
