package validator

import (
	"fmt"
	"regexp"

	"publist-hq/bibcheck/pkg/bibtex/ast"
	"publist-hq/bibcheck/pkg/bibtex/diag"
)

// keyPattern validates the <author><year><venue> citation key convention,
// e.g. "vizzo2023ral". The venue part admits a leading digit for venues
// like "3dv".
var keyPattern = regexp.MustCompile(`^[A-Za-z-]+[0-9]{4}[3A-Za-z-]+`)

// KeyValidator checks citation keys against the naming convention shared by
// all entry types.
type KeyValidator struct{}

// NewKeyValidator creates a new citation-key validator.
func NewKeyValidator() *KeyValidator {
	return &KeyValidator{}
}

// Validate checks a single entry's citation key.
func (v *KeyValidator) Validate(entry *ast.Entry) ([]diag.Message, []diag.Message) {
	if keyPattern.MatchString(entry.Key) {
		return nil, nil
	}
	return []diag.Message{{
		Code: CodeE003,
		Line: entry.StartLine,
		Text: fmt.Sprintf(ErrorTexts[CodeE003], entry.Key),
	}}, nil
}
