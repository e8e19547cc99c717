package validator

import (
	"context"
	"sort"

	"publist-hq/bibcheck/pkg/bibtex/ast"
	"publist-hq/bibcheck/pkg/bibtex/diag"
)

// DefaultLinkThreshold is the bibliography size at which automatic URL
// probing turns off.
const DefaultLinkThreshold = 25

// Progress receives per-entry progress while a document is validated with
// URL probing on. Probes dominate the runtime of a large run; without them
// validation finishes too quickly to report.
type Progress interface {
	Start(total int64)
	Update(current int64)
	Finish()
}

// LinkMode controls when URL probes run.
type LinkMode string

const (
	// LinkAuto probes URLs only while the bibliography stays below the
	// link threshold.
	LinkAuto LinkMode = "auto"

	// LinkAlways probes URLs regardless of bibliography size.
	LinkAlways LinkMode = "always"

	// LinkNever disables URL probing.
	LinkNever LinkMode = "never"
)

// Validator orchestrates all validation passes over a document: the
// macro-string pass first, then field, key, and link checks per entry.
type Validator struct {
	macros *MacroValidator
	fields *FieldValidator
	keys   *KeyValidator
	links  *LinkValidator

	venues        map[string][]string
	checker       LinkChecker
	linkMode      LinkMode
	linkThreshold int
	progress      Progress
}

// Option configures a Validator.
type Option func(*Validator)

// WithVenues extends the built-in venue table with user-declared venues.
func WithVenues(venues map[string][]string) Option {
	return func(v *Validator) {
		v.venues = venues
	}
}

// WithLinkChecker replaces the HTTP link checker.
func WithLinkChecker(checker LinkChecker) Option {
	return func(v *Validator) {
		v.checker = checker
	}
}

// WithLinkMode sets when URL probes run.
func WithLinkMode(mode LinkMode) Option {
	return func(v *Validator) {
		v.linkMode = mode
	}
}

// WithLinkThreshold overrides the bibliography size at which LinkAuto stops
// probing.
func WithLinkThreshold(threshold int) Option {
	return func(v *Validator) {
		v.linkThreshold = threshold
	}
}

// WithProgress attaches a progress reporter. It is driven only while URL
// probes run.
func WithProgress(p Progress) Option {
	return func(v *Validator) {
		v.progress = p
	}
}

// NewValidator creates a validator with all passes wired up.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		linkMode:      LinkAuto,
		linkThreshold: DefaultLinkThreshold,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.checker == nil {
		v.checker = NewHTTPLinkChecker(DefaultLinkTimeout)
	}
	v.macros = NewMacroValidator()
	v.fields = NewFieldValidator(v.venues)
	v.keys = NewKeyValidator()
	v.links = NewLinkValidator(v.checker)
	return v
}

// Validate runs all passes over the document. Errors come back sorted by
// line, ties kept in discovery order; warnings keep discovery order
// throughout.
func (v *Validator) Validate(ctx context.Context, doc *ast.Document) *diag.Result {
	errors := v.macros.Validate(doc)
	var warnings []diag.Message

	probe := v.shouldProbe(len(doc.Entries))
	if probe && v.progress != nil {
		v.progress.Start(int64(len(doc.Entries)))
		defer v.progress.Finish()
	}
	for i, entry := range doc.Entries {
		e, w := v.fields.Validate(entry)
		errors = append(errors, e...)
		warnings = append(warnings, w...)

		e, w = v.keys.Validate(entry)
		errors = append(errors, e...)
		warnings = append(warnings, w...)

		e, w = v.links.Validate(ctx, entry, probe)
		errors = append(errors, e...)
		warnings = append(warnings, w...)

		if probe && v.progress != nil {
			v.progress.Update(int64(i + 1))
		}
	}

	sort.SliceStable(errors, func(i, j int) bool {
		return errors[i].Line < errors[j].Line
	})

	status := diag.StatusPass
	if len(errors) > 0 {
		status = diag.StatusFail
	}
	return &diag.Result{Status: status, Errors: errors, Warnings: warnings}
}

func (v *Validator) shouldProbe(entryCount int) bool {
	switch v.linkMode {
	case LinkAlways:
		return true
	case LinkNever:
		return false
	default:
		return entryCount < v.linkThreshold
	}
}
