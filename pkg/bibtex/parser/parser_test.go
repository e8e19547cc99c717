package parser

import (
	"strings"
	"testing"

	"publist-hq/bibcheck/pkg/bibtex/ast"
)

func TestParseEntry(t *testing.T) {
	src := `@article{Smith2020ral,
  author = {Smith, John},
  title = {A Study of Things},
  journal = RAL,
  volume = {5},
  year = {2020}
}
`
	doc, err := NewParser().ParseBytes([]byte(src), "refs.bib")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(doc.Entries))
	}

	entry := doc.Entries[0]
	if entry.Type != ast.TypeArticle {
		t.Errorf("Type = %q, want %q", entry.Type, ast.TypeArticle)
	}
	if entry.Key != "Smith2020ral" {
		t.Errorf("Key = %q, want %q", entry.Key, "Smith2020ral")
	}
	if entry.StartLine != 1 {
		t.Errorf("StartLine = %d, want 1", entry.StartLine)
	}
	if len(entry.Fields) != 5 {
		t.Fatalf("len(Fields) = %d, want 5", len(entry.Fields))
	}

	author := entry.Field("author")
	if author == nil {
		t.Fatal("Field(author) = nil")
	}
	if author.Value.Text() != "Smith, John" {
		t.Errorf("author = %q, want %q", author.Value.Text(), "Smith, John")
	}
	if author.StartLine != 2 {
		t.Errorf("author line = %d, want 2", author.StartLine)
	}

	journal := entry.Field("journal")
	if journal == nil {
		t.Fatal("Field(journal) = nil")
	}
	if !journal.Value.IsMacroRef() {
		t.Error("journal should be a macro reference")
	}
	if journal.Value.Macro != "RAL" {
		t.Errorf("journal macro = %q, want %q", journal.Value.Macro, "RAL")
	}

	if len(entry.RawLines) != 7 {
		t.Fatalf("len(RawLines) = %d, want 7", len(entry.RawLines))
	}
	if entry.RawLines[0] != "@article{Smith2020ral," {
		t.Errorf("RawLines[0] = %q", entry.RawLines[0])
	}
	if entry.RawLines[6] != "}" {
		t.Errorf("RawLines[6] = %q", entry.RawLines[6])
	}
}

func TestParseString(t *testing.T) {
	src := `@string{RAL = {IEEE Robotics and Automation Letters (RA-L)}}
@string{ICRA = "IEEE International Conference on Robotics and Automation (ICRA)"}
`
	doc, err := NewParser().ParseBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(doc.Strings) != 2 {
		t.Fatalf("len(Strings) = %d, want 2", len(doc.Strings))
	}

	ral, ok := doc.LookupString("RAL")
	if !ok {
		t.Fatal("LookupString(RAL) not found")
	}
	if ral.Value != "IEEE Robotics and Automation Letters (RA-L)" {
		t.Errorf("RAL value = %q", ral.Value)
	}
	if ral.Line != 1 {
		t.Errorf("RAL line = %d, want 1", ral.Line)
	}

	icra, ok := doc.LookupString("ICRA")
	if !ok {
		t.Fatal("LookupString(ICRA) not found")
	}
	if icra.Line != 2 {
		t.Errorf("ICRA line = %d, want 2", icra.Line)
	}
	if doc.HasString("icra") {
		t.Error("macro lookup should be exact, not case-folded")
	}
}

func TestParseValueForms(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantText  string
		wantMacro string
	}{
		{
			name:     "braced",
			src:      `@article{k, title = {Hello {World}}}`,
			wantText: "Hello {World}",
		},
		{
			name:     "quoted",
			src:      `@article{k, title = "Hello World"}`,
			wantText: "Hello World",
		},
		{
			name:     "quoted with braces",
			src:      `@article{k, title = "a {"} b"}`,
			wantText: `a {"} b`,
		},
		{
			name:     "bare number",
			src:      `@article{k, volume = 12}`,
			wantText: "12",
		},
		{
			name:      "macro reference",
			src:       `@article{k, journal = ral}`,
			wantMacro: "ral",
		},
		{
			name:     "concatenation",
			src:      `@article{k, title = {Part One} # { and } # {Two}}`,
			wantText: "Part One and Two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewParser().ParseBytes([]byte(tt.src), "")
			if err != nil {
				t.Fatalf("ParseBytes() error = %v", err)
			}
			if len(doc.Entries) != 1 || len(doc.Entries[0].Fields) != 1 {
				t.Fatalf("expected a single entry with a single field")
			}
			value := doc.Entries[0].Fields[0].Value
			if tt.wantMacro != "" {
				if !value.IsMacroRef() {
					t.Fatalf("expected macro reference, got %v", value)
				}
				if value.Macro != tt.wantMacro {
					t.Errorf("Macro = %q, want %q", value.Macro, tt.wantMacro)
				}
				return
			}
			if value.IsMacroRef() {
				t.Fatalf("unexpected macro reference %q", value.Macro)
			}
			if value.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", value.Text(), tt.wantText)
			}
		})
	}
}

func TestParseSkipsCommentAndPreamble(t *testing.T) {
	src := `@comment{nothing to see here}
@preamble{"\newcommand{\noop}[1]{}"}
Stray prose between entries is ignored.
@book{Knuth1997taocp,
  author = {Knuth, Donald E.},
  title = {The Art of Computer Programming},
  publisher = {Addison-Wesley},
  year = {1997}
}
`
	doc, err := NewParser().ParseBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(doc.Entries))
	}
	if doc.Entries[0].StartLine != 4 {
		t.Errorf("StartLine = %d, want 4", doc.Entries[0].StartLine)
	}
}

func TestParseParenDelimiters(t *testing.T) {
	src := `@article(Doe2021pami,
  author = {Doe, Jane},
  year = {2021}
)
`
	doc, err := NewParser().ParseBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(doc.Entries))
	}
	if doc.Entries[0].Key != "Doe2021pami" {
		t.Errorf("Key = %q", doc.Entries[0].Key)
	}
	if len(doc.Entries[0].Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2", len(doc.Entries[0].Fields))
	}
}

func TestParseFieldNamesLowercased(t *testing.T) {
	src := `@article{k, Title = {X}, YEAR = {2020}}`
	doc, err := NewParser().ParseBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	entry := doc.Entries[0]
	if !entry.HasField("title") || !entry.HasField("year") {
		t.Errorf("field keys not lowercased: %v", entry.FieldKeys())
	}
}

func TestParseDuplicateFieldLastWins(t *testing.T) {
	src := `@article{k,
  title = {First},
  title = {Second}
}
`
	doc, err := NewParser().ParseBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	title := doc.Entries[0].Field("title")
	if title.Value.Text() != "Second" {
		t.Errorf("title = %q, want %q", title.Value.Text(), "Second")
	}
}

func TestParseCRLF(t *testing.T) {
	src := "@article{k,\r\n  title = {X}\r\n}\r\n"
	doc, err := NewParser().ParseBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	entry := doc.Entries[0]
	if entry.Field("title").StartLine != 2 {
		t.Errorf("title line = %d, want 2", entry.Field("title").StartLine)
	}
	if entry.RawLines[1] != "  title = {X}" {
		t.Errorf("RawLines[1] = %q, want carriage return stripped", entry.RawLines[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "unterminated entry",
			src:      "@article{k,\n  title = {X}\n",
			wantLine: 1,
			wantMsg:  "unterminated @article entry",
		},
		{
			name:     "unterminated brace group",
			src:      "@article{k,\n  title = {X\n",
			wantLine: 2,
			wantMsg:  "unterminated '{' group",
		},
		{
			name:     "missing equals",
			src:      "@article{k,\n  title {X}\n}\n",
			wantLine: 2,
			wantMsg:  "expected '='",
		},
		{
			name:     "missing value",
			src:      "@article{k,\n  title = ,\n}\n",
			wantLine: 2,
			wantMsg:  "missing field value",
		},
		{
			name:     "missing string name",
			src:      "@string{= {X}}\n",
			wantLine: 1,
			wantMsg:  "missing @string name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseBytes([]byte(tt.src), "refs.bib")
			if err == nil {
				t.Fatal("expected parse error")
			}
			perr, ok := err.(*Error)
			if !ok {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", perr.Line, tt.wantLine)
			}
			if !strings.Contains(perr.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want substring %q", perr.Msg, tt.wantMsg)
			}
			if !strings.HasPrefix(err.Error(), "refs.bib:") {
				t.Errorf("Error() = %q, want path prefix", err.Error())
			}
		})
	}
}

func TestParseMaxFileSize(t *testing.T) {
	p := NewParser(WithMaxFileSize(16))
	_, err := p.ParseBytes([]byte(strings.Repeat("x", 32)), "")
	if err == nil {
		t.Fatal("expected size error")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("error = %q, want size message", err)
	}
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("@string{RAL = {IEEE Robotics and Automation Letters (RA-L)}}\n\n")
	for i := 0; i < 200; i++ {
		sb.WriteString(`@article{Smith2020ral,
  author = {Smith, John and Doe, Jane},
  title = {{A Longer Title With Protected Capitalization}},
  journal = RAL,
  volume = {5},
  number = {2},
  pages = {100--110},
  year = {2020},
  url = {https://example.org/paper.pdf}
}

`)
	}
	src := []byte(sb.String())
	p := NewParser()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseBytes(src, "bench.bib"); err != nil {
			b.Fatal(err)
		}
	}
}
