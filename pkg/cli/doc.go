/*
Package cli provides command-line interface utilities for bibcheck.

The cli package includes output formatters, diagnostic code colorization,
progress reporters, and common CLI helpers used by the bibcheck command.

Output Formatting:

The cli package supports multiple output formats (text, JSON, SARIF) for
displaying lint results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	report := LintReport{...}
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Colorization:

Diagnostic codes in text output are painted by severity (errors red,
warnings yellow):

	painter := cli.NewPainter(cli.ColorAuto)
	fmt.Printf("%s:%d:%d: %s: %s\n", file, line, col, painter.Code(msg.Code), msg.Text)

Progress Reporting:

For link checking across large bibliographies, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(totalEntries)
	for i := 0; i < totalEntries; i++ {
		// Check entry
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For clean shutdown of watch mode on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for the watch loop; it is cancelled on interrupt
*/
package cli
