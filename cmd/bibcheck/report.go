package main

import (
	"fmt"
	"io"
	"strings"

	"publist-hq/bibcheck/pkg/bibtex/diag"
	"publist-hq/bibcheck/pkg/cli"
	"publist-hq/bibcheck/pkg/config"
)

// LintReport is the machine-readable result of a lint run.
type LintReport struct {
	Files    []FileReport `json:"files"`
	Errors   int          `json:"errors"`
	Warnings int          `json:"warnings"`
	Status   string       `json:"status"`
}

// FileReport is the result for a single bibliography file.
type FileReport struct {
	File     string          `json:"file"`
	Status   string          `json:"status"`
	Errors   int             `json:"errors"`
	Warnings int             `json:"warnings"`
	Messages []ReportMessage `json:"messages,omitempty"`
}

// ReportMessage is a single diagnostic with its display position.
type ReportMessage struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Text     string `json:"text"`
}

// buildFileReport converts a validation result into a file report. Messages
// come pre-merged into display order: line-sorted, errors first at equal
// lines, warnings keeping emission order.
func buildFileReport(path string, src []byte, result *diag.Result) FileReport {
	lines := strings.Split(string(src), "\n")

	report := FileReport{
		File:     path,
		Status:   string(result.Status),
		Errors:   len(result.Errors),
		Warnings: len(result.Warnings),
	}
	for _, msg := range result.Merged() {
		report.Messages = append(report.Messages, ReportMessage{
			Code:     msg.Code,
			Severity: string(msg.Severity),
			Line:     msg.Line,
			Column:   column(lines, msg.Line),
			Text:     msg.Text,
		})
	}
	return report
}

// column finds the 1-based position of the first [A-Za-z0-9_@] character on
// the addressed source line, 0 if the line has none.
func column(lines []string, lineno int) int {
	if lineno < 1 || lineno > len(lines) {
		return 0
	}
	pos := 1
	for _, r := range lines[lineno-1] {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '@':
			return pos
		}
		pos++
	}
	return 0
}

// renderReports writes the reports in the configured output format.
func renderReports(w io.Writer, reports []FileReport, cfg *config.Config) error {
	switch cli.OutputFormat(cfg.Output.Format) {
	case cli.FormatJSON:
		return cli.NewFormatter(cli.FormatJSON).FormatTo(w, buildLintReport(reports, cfg))
	case cli.FormatSARIF:
		return cli.NewFormatter(cli.FormatSARIF).FormatTo(w, buildSARIF(reports, cfg))
	default:
		renderText(w, reports, cfg)
		return nil
	}
}

// renderText prints one line per diagnostic and a final summary. The
// summary counts warnings even when their lines are suppressed.
func renderText(w io.Writer, reports []FileReport, cfg *config.Config) {
	painter := cli.NewPainter(cli.ColorMode(cfg.Output.Color))

	totalErrors, totalWarnings := 0, 0
	for _, report := range reports {
		for _, msg := range report.Messages {
			if cfg.Output.NoWarnings && msg.Severity == string(diag.SeverityWarning) {
				continue
			}
			fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
				report.File, msg.Line, msg.Column, painter.Code(msg.Code), msg.Text)
		}
		totalErrors += report.Errors
		totalWarnings += report.Warnings
	}

	fmt.Fprintf(w, "%d errors, %d warnings.\n", totalErrors, totalWarnings)
}

// buildLintReport aggregates file reports into the run-level report.
func buildLintReport(reports []FileReport, cfg *config.Config) LintReport {
	out := LintReport{
		Files:  make([]FileReport, 0, len(reports)),
		Status: string(diag.StatusPass),
	}
	for _, report := range reports {
		if cfg.Output.NoWarnings {
			report.Messages = withoutWarnings(report.Messages)
		}
		out.Files = append(out.Files, report)
		out.Errors += report.Errors
		out.Warnings += report.Warnings
		if report.Status == string(diag.StatusFail) {
			out.Status = string(diag.StatusFail)
		}
	}
	return out
}

func withoutWarnings(msgs []ReportMessage) []ReportMessage {
	kept := make([]ReportMessage, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Severity != string(diag.SeverityWarning) {
			kept = append(kept, msg)
		}
	}
	return kept
}
