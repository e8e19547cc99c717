package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bibcheck",
	Short: "bibcheck - BibTeX bibliography linter",
	Long: `Bibcheck lints BibTeX bibliography files for publication lists.

It reports line-addressed diagnostics with stable codes:
  - Missing or irrelevant fields per entry type and journal
  - BibTeX key format (<author><year><venue>)
  - Undefined or bypassed @string macros
  - arXiv preprint conventions
  - Broken or indirect PDF links`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default .bibcheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging installs the default slog logger. The linter is near-silent
// unless --verbose enables debug output.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
