package validator

import (
	"strings"
	"testing"

	"publist-hq/bibcheck/pkg/bibtex/ast"
)

func TestKeyValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "author year venue", key: "vizzo2023ral", wantErr: false},
		{name: "capitalized author", key: "Vizzo2023ral", wantErr: false},
		{name: "hyphenated author", key: "vizzo-guadagnino2023ral", wantErr: false},
		{name: "digit leading venue", key: "huang20223dv", wantErr: false},
		{name: "venue with capitals", key: "frey2023ICRA", wantErr: false},
		{name: "missing venue", key: "vizzo2023", wantErr: true},
		{name: "two digit year", key: "vizzo23ral", wantErr: true},
		{name: "missing author", key: "2023ral", wantErr: true},
		{name: "empty", key: "", wantErr: true},
		{name: "underscore author", key: "vizzo_stachniss2023ral", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &ast.Entry{Type: ast.TypeArticle, Key: tt.key, StartLine: 7}
			errors, warnings := NewKeyValidator().Validate(entry)

			if len(warnings) != 0 {
				t.Errorf("warnings = %v, want none", warnings)
			}
			if tt.wantErr {
				if !equalCodes(errors, []string{CodeE003}) {
					t.Fatalf("error codes = %v, want [E003]", codesOf(errors))
				}
				if errors[0].Line != 7 {
					t.Errorf("Line = %d, want 7", errors[0].Line)
				}
				if !strings.Contains(errors[0].Text, "'"+tt.key+"'") {
					t.Errorf("Text = %q, want key %q quoted", errors[0].Text, tt.key)
				}
			} else if len(errors) != 0 {
				t.Errorf("errors = %v, want none", errors)
			}
		})
	}
}

func TestKeyValidator_MessageText(t *testing.T) {
	entry := &ast.Entry{Type: ast.TypeArticle, Key: "bad key", StartLine: 1}
	errors, _ := NewKeyValidator().Validate(entry)
	if len(errors) != 1 {
		t.Fatalf("len(errors) = %d, want 1", len(errors))
	}
	want := "Wrong BibTeX key format 'bad key'. Use '<author><year><venue>' for BibTeX keys, where <year> has 4 digits."
	if errors[0].Text != want {
		t.Errorf("Text = %q, want %q", errors[0].Text, want)
	}
}
