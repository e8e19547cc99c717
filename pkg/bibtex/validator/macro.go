package validator

import (
	"fmt"
	"regexp"
	"strings"

	"publist-hq/bibcheck/pkg/bibtex/ast"
	"publist-hq/bibcheck/pkg/bibtex/diag"
)

var (
	// bareIdentPattern extracts the identifier of a bare macro reference,
	// e.g. "ral" from "journal = ral,".
	bareIdentPattern = regexp.MustCompile(`=\s*([\w]+)`)

	// literalValuePattern extracts the text of a quoted or braced value
	// from a source line.
	literalValuePattern = regexp.MustCompile(`"([\w\W]+)"|\{([\w\W]+)\}`)
)

// MacroValidator checks @string usage on journal and booktitle fields. A
// bare identifier must name a declared @string; a literal that spells out a
// declared string's value should use the macro instead. As a side effect it
// binds resolvable references to their declared values, which later passes
// rely on for venue detection.
type MacroValidator struct {
	errors []diag.Message
}

// NewMacroValidator creates a new macro-string validator.
func NewMacroValidator() *MacroValidator {
	return &MacroValidator{}
}

// Validate runs the macro-string pass over the whole document and returns
// the errors found.
func (v *MacroValidator) Validate(doc *ast.Document) []diag.Message {
	v.errors = nil

	// Maps each declared string value back to its macro name. On duplicate
	// values the later declaration wins.
	valueToName := make(map[string]string, len(doc.Strings))
	for _, s := range doc.Strings {
		valueToName[s.Value] = s.Name
	}

	for _, entry := range doc.Entries {
		for _, field := range entry.Fields {
			if field.Key != "booktitle" && field.Key != "journal" {
				continue
			}
			v.checkField(doc, entry, field, valueToName)
		}
	}
	return v.errors
}

// checkField classifies the field's source line as a bare reference or a
// literal and applies the matching check. The classification is textual on
// purpose: it sees the line the way a reader of the .bib file does.
func (v *MacroValidator) checkField(doc *ast.Document, entry *ast.Entry, field *ast.Field, valueToName map[string]string) {
	raw, ok := entry.RawLine(field.StartLine)
	if !ok {
		return
	}

	if !strings.ContainsAny(raw, `"{}`) {
		m := bareIdentPattern.FindStringSubmatch(raw)
		if m == nil {
			return
		}
		name := m[1]
		s, declared := doc.LookupString(name)
		if !declared {
			v.errors = append(v.errors, diag.Message{
				Code: CodeE000,
				Line: field.StartLine,
				Text: fmt.Sprintf(ErrorTexts[CodeE000], name),
			})
			return
		}
		field.Value = ast.MacroRef(name, s.Value)
		return
	}

	if m := literalValuePattern.FindStringSubmatch(raw); m != nil {
		text := m[1]
		if text == "" {
			text = m[2]
		}
		if name, known := valueToName[text]; known {
			v.errors = append(v.errors, diag.Message{
				Code: CodeE010,
				Line: field.StartLine,
				Text: fmt.Sprintf(ErrorTexts[CodeE010], name),
			})
		}
	}
}
