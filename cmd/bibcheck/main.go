// Bibcheck is a linter for BibTeX bibliography files.
//
// It parses .bib files and reports line-addressed diagnostics with stable
// codes, checking:
//   - Required and optional fields per entry type and journal
//   - BibTeX key format (<author><year><venue>)
//   - @string macro definitions and their consistent use
//   - arXiv preprint conventions (volume format, no pages/number)
//   - PDF link validity via HTTP probing
//
// Usage:
//
//	# Lint a bibliography
//	bibcheck lint publications.bib
//
//	# Machine-readable output for CI
//	bibcheck lint publications.bib --format json
//
//	# Re-lint on every save
//	bibcheck lint publications.bib --watch
//
//	# Show version information
//	bibcheck version
package main

func main() {
	Execute()
}
