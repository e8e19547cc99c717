package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"publist-hq/bibcheck/pkg/bibtex"
	"publist-hq/bibcheck/pkg/bibtex/diag"
	"publist-hq/bibcheck/pkg/bibtex/validator"
	"publist-hq/bibcheck/pkg/cli"
	"publist-hq/bibcheck/pkg/config"
	"publist-hq/bibcheck/pkg/watch"
)

var lintFlags struct {
	format     string
	noWarnings bool
	checkLinks string
	watchMode  bool
}

var lintCmd = &cobra.Command{
	Use:   "lint <file.bib> [file.bib...]",
	Short: "Validate bibliography files",
	Long: `Validate BibTeX bibliography files.

The lint command parses each file and runs all checks:
  - Required and irrelevant fields per entry type and journal
  - BibTeX key format (<author><year><venue>)
  - @string macro definitions and their consistent use
  - arXiv preprint conventions and page ranges
  - PDF link validity

Diagnostics print one per line as <file>:<line>:<col>: <code>: <text>,
followed by a summary. The exit status is non-zero when errors are found;
warnings never affect it.

Examples:
  # Lint a bibliography
  bibcheck lint publications.bib

  # Suppress warning lines (the summary still counts them)
  bibcheck lint publications.bib --no-warnings

  # Force PDF link probing regardless of bibliography size
  bibcheck lint publications.bib --check-links always

  # JSON or SARIF output for CI/CD
  bibcheck lint publications.bib --format json

  # Re-lint on every save
  bibcheck lint publications.bib --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintFlags.format, "format", "", "output format: text, json, sarif")
	lintCmd.Flags().BoolVar(&lintFlags.noWarnings, "no-warnings", false, "suppress warnings in output")
	lintCmd.Flags().StringVar(&lintFlags.checkLinks, "check-links", "", "probe pdf urls: auto, always, never")
	lintCmd.Flags().BoolVar(&lintFlags.watchMode, "watch", false, "re-lint when files change")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigFile
		}
		return cli.NewConfigError(path, err)
	}

	applyLintFlags(cfg)
	if err := config.Validate(cfg); err != nil {
		return cli.NewCommandError("lint", err)
	}

	if lintFlags.watchMode {
		return watchAndLint(cfg, args)
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	failed, err := lintOnce(ctx, cfg, args, os.Stdout)
	if err != nil {
		return err
	}
	if failed {
		// Diagnostics are already printed; only the exit status is left.
		if cmd != nil {
			cmd.SilenceErrors = true
		}
		return cli.ErrLintFailed
	}
	return nil
}

// applyLintFlags overlays command-line flags on the loaded configuration.
// Flags win over both the file and environment overrides.
func applyLintFlags(cfg *config.Config) {
	if lintFlags.format != "" {
		cfg.Output.Format = lintFlags.format
	}
	if lintFlags.noWarnings {
		cfg.Output.NoWarnings = true
	}
	if lintFlags.checkLinks != "" {
		cfg.Lint.CheckLinks = lintFlags.checkLinks
	}
}

// lintOnce lints every file and renders one combined report. It reports
// whether any file failed; rendering and I/O problems come back as errors.
func lintOnce(ctx context.Context, cfg *config.Config, files []string, w io.Writer) (bool, error) {
	opts := validatorOptions(cfg)

	reports := make([]FileReport, 0, len(files))
	failed := false
	for _, file := range files {
		report, err := lintFile(ctx, file, opts)
		if err != nil {
			return false, cli.NewCommandError("lint", err)
		}
		if report.Status == string(diag.StatusFail) {
			failed = true
		}
		reports = append(reports, report)
	}

	if err := renderReports(w, reports, cfg); err != nil {
		return false, cli.NewCommandError("lint", err)
	}
	return failed, nil
}

func lintFile(ctx context.Context, path string, opts []validator.Option) (FileReport, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return FileReport{}, fmt.Errorf("failed to read bibliography: %w", err)
	}

	slog.Debug("Linting file", "path", path, "bytes", len(src))

	result, err := bibtex.CheckBytes(ctx, src, path, opts...)
	if err != nil {
		return FileReport{}, err
	}

	return buildFileReport(path, src, result), nil
}

// validatorOptions maps the configuration onto validator options.
func validatorOptions(cfg *config.Config) []validator.Option {
	opts := []validator.Option{
		validator.WithLinkMode(validator.LinkMode(cfg.Lint.CheckLinks)),
		validator.WithLinkThreshold(cfg.Lint.LinkThreshold),
		validator.WithLinkChecker(validator.NewHTTPLinkChecker(cfg.Lint.LinkTimeout)),
	}
	if len(cfg.Journals) > 0 {
		opts = append(opts, validator.WithVenues(cfg.Journals))
	}
	if verbose {
		opts = append(opts, validator.WithProgress(cli.NewProgressReporter(os.Stderr)))
	}
	return opts
}

// watchAndLint runs an initial pass and then re-lints on every debounced
// file change until interrupted. Lint failures never end the loop; the
// interrupt exits with status zero.
func watchAndLint(cfg *config.Config, files []string) error {
	ctx := cli.SetupSignalHandler()

	relint := func() error {
		if _, err := lintOnce(ctx, cfg, files, os.Stdout); err != nil {
			return err
		}
		return nil
	}

	if err := relint(); err != nil {
		slog.Error("Lint failed", "error", err)
	}

	watchConfig := watch.DefaultFileWatcherConfig()
	watchConfig.Files = files

	watcher, err := watch.NewFileWatcher(watchConfig, slog.Default())
	if err != nil {
		return cli.NewCommandError("lint", err)
	}

	return watcher.Watch(ctx, relint)
}
