package validator

import (
	"fmt"
	"regexp"
	"strings"

	"publist-hq/bibcheck/pkg/bibtex/ast"
	"publist-hq/bibcheck/pkg/bibtex/diag"
)

// arxivJournal is the journal text that marks an entry as an arXiv preprint.
const arxivJournal = "arXiv preprint"

var (
	// arxivVolumePattern validates arXiv identifiers in the volume field,
	// e.g. "arXiv:2004.10398".
	arxivVolumePattern = regexp.MustCompile(`^arXiv:\d{4}.\d{4,5}`)

	// pageRangePattern matches page ranges written with a single dash.
	// "100--110" does not match, "100-110" does.
	pageRangePattern = regexp.MustCompile(`^[0-9]+-[0-9]+`)

	// protectedTitlePattern detects {{...}} capitalization protection on a
	// source line.
	protectedTitlePattern = regexp.MustCompile(`\{\{[\w\W]+\}\}`)
)

// FieldValidator checks entries for required, optional, and irrelevant
// fields based on the entry type, with per-venue overrides for articles.
type FieldValidator struct {
	venues map[string][]string
}

// NewFieldValidator creates a field validator. Venues declared by the user
// extend the built-in venue table.
func NewFieldValidator(extraVenues map[string][]string) *FieldValidator {
	return &FieldValidator{venues: mergeVenues(extraVenues)}
}

// Validate checks a single entry and returns the errors and warnings found.
func (v *FieldValidator) Validate(entry *ast.Entry) ([]diag.Message, []diag.Message) {
	var errors, warnings []diag.Message

	required, knownType := mandatoryFields[entry.Type]
	optional := optionalFields[entry.Type]

	if knownType {
		required = v.requiredFor(entry, required)
		errors = append(errors, v.checkMissing(entry, required)...)

		if entry.Type == ast.TypeArticle {
			if journal := entry.Field("journal"); journal != nil {
				if journal.Value.Text() == arxivJournal {
					errors = append(errors, v.checkArxiv(entry)...)
				} else {
					warnings = append(warnings, v.suggestArticleFields(entry, required)...)
				}
			}
		}

		errors = append(errors, v.checkIrrelevant(entry, required, optional)...)
	}

	if pages := entry.Field("pages"); pages != nil && entry.Type != ast.TypeInProceedings {
		if pageRangePattern.MatchString(pages.Value.Text()) {
			errors = append(errors, diag.Message{
				Code: CodeE007,
				Line: pages.StartLine,
				Text: ErrorTexts[CodeE007],
			})
		}
	}

	if authors := entry.Field("authors"); authors != nil {
		warnings = append(warnings, diag.Message{
			Code: CodeW005,
			Line: authors.StartLine,
			Text: WarningTexts[CodeW005],
		})
	}

	warnings = append(warnings, v.checkTitle(entry)...)

	return errors, warnings
}

// requiredFor resolves the required-field list for an entry. Articles whose
// journal is a bound macro reference get the venue-specific list when the
// macro names a known venue.
func (v *FieldValidator) requiredFor(entry *ast.Entry, required []string) []string {
	if entry.Type != ast.TypeArticle {
		return required
	}
	journal := entry.Field("journal")
	if journal == nil || !journal.Value.IsBound() {
		return required
	}
	if venue, ok := v.venues[journal.Value.Macro]; ok {
		return venue
	}
	return required
}

// checkMissing reports required fields the entry lacks, in required-list
// order. An "authors" field stands in for "author" here; the spelling
// itself is warned about separately.
func (v *FieldValidator) checkMissing(entry *ast.Entry, required []string) []diag.Message {
	var errors []diag.Message
	for _, field := range required {
		if entry.HasField(field) {
			continue
		}
		if field == "author" && entry.HasField("authors") {
			continue
		}
		errors = append(errors, diag.Message{
			Code: CodeE002,
			Line: entry.StartLine,
			Text: fmt.Sprintf(ErrorTexts[CodeE002], field, formatRequired(required)),
		})
	}
	return errors
}

// checkArxiv applies the preprint rules: no pages, no issue number, and an
// arXiv identifier as the volume.
func (v *FieldValidator) checkArxiv(entry *ast.Entry) []diag.Message {
	var errors []diag.Message
	if entry.HasField("pages") {
		errors = append(errors, diag.Message{
			Code: CodeE008,
			Line: entry.StartLine,
			Text: ErrorTexts[CodeE008],
		})
	}
	if entry.HasField("number") {
		errors = append(errors, diag.Message{
			Code: CodeE009,
			Line: entry.StartLine,
			Text: ErrorTexts[CodeE009],
		})
	}
	if volume := entry.Field("volume"); volume != nil {
		if !arxivVolumePattern.MatchString(volume.Value.Text()) {
			errors = append(errors, diag.Message{
				Code: CodeE006,
				Line: volume.StartLine,
				Text: ErrorTexts[CodeE006],
			})
		}
	}
	return errors
}

// suggestArticleFields nudges journal articles toward carrying pages and an
// issue number when the venue does not already require them.
func (v *FieldValidator) suggestArticleFields(entry *ast.Entry, required []string) []diag.Message {
	var warnings []diag.Message
	if !entry.HasField("pages") && !contains(required, "pages") {
		warnings = append(warnings, diag.Message{
			Code: CodeW002,
			Line: entry.StartLine,
			Text: WarningTexts[CodeW002],
		})
	}
	if !entry.HasField("number") && !contains(required, "number") {
		warnings = append(warnings, diag.Message{
			Code: CodeW003,
			Line: entry.StartLine,
			Text: WarningTexts[CodeW003],
		})
	}
	return warnings
}

// checkIrrelevant reports fields outside the required and optional sets, in
// source order. Duplicate spellings report once, at the last occurrence.
func (v *FieldValidator) checkIrrelevant(entry *ast.Entry, required, optional []string) []diag.Message {
	var errors []diag.Message
	seen := make(map[string]bool, len(entry.Fields))
	for _, field := range entry.Fields {
		if seen[field.Key] {
			continue
		}
		seen[field.Key] = true
		if field.Key == "authors" || contains(required, field.Key) || contains(optional, field.Key) {
			continue
		}
		last := entry.Field(field.Key)
		errors = append(errors, diag.Message{
			Code: CodeE001,
			Line: last.StartLine,
			Text: fmt.Sprintf(ErrorTexts[CodeE001], field.Key),
		})
	}
	return errors
}

// checkTitle warns when a title holds capitalization that BibTeX will fold
// away. A leading capital is fine; {{...}} protection silences the check.
func (v *FieldValidator) checkTitle(entry *ast.Entry) []diag.Message {
	title := entry.Field("title")
	if title == nil {
		return nil
	}
	raw, ok := entry.RawLine(title.StartLine)
	if !ok || protectedTitlePattern.MatchString(raw) {
		return nil
	}
	if !losesCapitalization(title.Value.Text()) {
		return nil
	}
	return []diag.Message{{
		Code: CodeW004,
		Line: title.StartLine,
		Text: WarningTexts[CodeW004],
	}}
}

// losesCapitalization reports whether the text carries capitals past its
// first character.
func losesCapitalization(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	rest := string(runes[1:])
	return strings.ToLower(rest) != rest
}
