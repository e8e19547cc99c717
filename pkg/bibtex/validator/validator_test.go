package validator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"publist-hq/bibcheck/pkg/bibtex/diag"
	"publist-hq/bibcheck/pkg/bibtex/parser"
)

func TestValidator_CleanDocument(t *testing.T) {
	src := `@string{ral = {IEEE Robotics and Automation Letters (RA-L)}}

@article{vizzo2023ral,
  author = {Vizzo, Ignacio and Guadagnino, Tiziano},
  title = {{KISS-ICP: In Defense of Point-to-Point ICP}},
  journal = ral,
  volume = {8},
  number = {2},
  pages = {1029--1036},
  year = {2023},
  url = {https://www.example.org/pdf/2209.15397.pdf}
}
`
	doc, err := parser.NewParser().ParseBytes([]byte(src), "test.bib")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	v := NewValidator(WithLinkChecker(&stubChecker{ok: true}))
	result := v.Validate(context.Background(), doc)

	if result.Status != diag.StatusPass {
		t.Errorf("Status = %s, want pass", result.Status)
	}
	if result.Failed() {
		t.Error("Failed() = true, want false")
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
}

func TestValidator_ErrorOrderingAndWarningOrder(t *testing.T) {
	src := `@string{ral = {IEEE Robotics and Automation Letters (RA-L)}}

@article{smith2020ral,
  author = {Smith, John},
  title = {A Study of Navigation},
  journal = ral,
  volume = {5},
  year = {2020}
}

@inproceedings{doe,
  author = {Doe, Jane},
  title = {Another study},
  booktitle = icra,
  year = {2021}
}
`
	doc, err := parser.NewParser().ParseBytes([]byte(src), "test.bib")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	v := NewValidator(WithLinkChecker(&stubChecker{ok: true}))
	result := v.Validate(context.Background(), doc)

	if result.Status != diag.StatusFail {
		t.Errorf("Status = %s, want fail", result.Status)
	}

	// Errors sorted by line: the two venue E002s at the first entry, the
	// key error at the second entry, then the undefined string inside it.
	wantErrors := []struct {
		code string
		line int
	}{
		{CodeE002, 3},
		{CodeE002, 3},
		{CodeE003, 11},
		{CodeE000, 14},
	}
	if len(result.Errors) != len(wantErrors) {
		t.Fatalf("len(Errors) = %d, want %d: %v", len(result.Errors), len(wantErrors), result.Errors)
	}
	for i, want := range wantErrors {
		if result.Errors[i].Code != want.code || result.Errors[i].Line != want.line {
			t.Errorf("Errors[%d] = %s@%d, want %s@%d",
				i, result.Errors[i].Code, result.Errors[i].Line, want.code, want.line)
		}
	}

	// Warnings keep discovery order, not line order.
	wantWarnings := []struct {
		code string
		line int
	}{
		{CodeW004, 5},
		{CodeW001, 3},
		{CodeW001, 11},
	}
	if len(result.Warnings) != len(wantWarnings) {
		t.Fatalf("len(Warnings) = %d, want %d: %v", len(result.Warnings), len(wantWarnings), result.Warnings)
	}
	for i, want := range wantWarnings {
		if result.Warnings[i].Code != want.code || result.Warnings[i].Line != want.line {
			t.Errorf("Warnings[%d] = %s@%d, want %s@%d",
				i, result.Warnings[i].Code, result.Warnings[i].Line, want.code, want.line)
		}
	}
}

// probeDocument builds a bibliography of n articles whose urls all need a
// probe to judge.
func probeDocument(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, `@article{smith%04djfr,
  author = {Smith, John},
  title = {A study of navigation},
  journal = {Journal of Field Robotics},
  volume = {%d},
  number = {1},
  pages = {1--10},
  year = {%04d},
  url = {https://example.org/paper/%d}
}

`, 2000+i, i+1, 2000+i, i)
	}
	return sb.String()
}

func TestValidator_LinkModes(t *testing.T) {
	tests := []struct {
		name      string
		entries   int
		opts      []Option
		wantCalls int
	}{
		{name: "auto below threshold", entries: 24, wantCalls: 24},
		{name: "auto at threshold", entries: 25, wantCalls: 0},
		{name: "always ignores threshold", entries: 25, opts: []Option{WithLinkMode(LinkAlways)}, wantCalls: 25},
		{name: "never", entries: 2, opts: []Option{WithLinkMode(LinkNever)}, wantCalls: 0},
		{name: "custom threshold", entries: 5, opts: []Option{WithLinkThreshold(5)}, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.NewParser().ParseBytes([]byte(probeDocument(t, tt.entries)), "test.bib")
			if err != nil {
				t.Fatalf("ParseBytes() error = %v", err)
			}

			checker := &stubChecker{ok: true}
			opts := append([]Option{WithLinkChecker(checker)}, tt.opts...)
			result := NewValidator(opts...).Validate(context.Background(), doc)

			if len(checker.calls) != tt.wantCalls {
				t.Errorf("probes = %d, want %d", len(checker.calls), tt.wantCalls)
			}
			if len(result.Errors) != 0 {
				t.Errorf("Errors = %v, want none", result.Errors)
			}
		})
	}
}

type recordingProgress struct {
	total   int64
	updates []int64
	done    bool
}

func (p *recordingProgress) Start(total int64)    { p.total = total }
func (p *recordingProgress) Update(current int64) { p.updates = append(p.updates, current) }
func (p *recordingProgress) Finish()              { p.done = true }

func TestValidator_ProgressOnlyWhileProbing(t *testing.T) {
	doc, err := parser.NewParser().ParseBytes([]byte(probeDocument(t, 3)), "test.bib")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	progress := &recordingProgress{}
	v := NewValidator(WithLinkChecker(&stubChecker{ok: true}), WithProgress(progress))
	v.Validate(context.Background(), doc)

	if progress.total != 3 {
		t.Errorf("Start total = %d, want 3", progress.total)
	}
	if len(progress.updates) != 3 || progress.updates[2] != 3 {
		t.Errorf("updates = %v, want [1 2 3]", progress.updates)
	}
	if !progress.done {
		t.Error("Finish() not called")
	}

	// With probing off the reporter stays untouched.
	silent := &recordingProgress{}
	v = NewValidator(WithLinkChecker(&stubChecker{ok: true}), WithProgress(silent), WithLinkMode(LinkNever))
	v.Validate(context.Background(), doc)

	if silent.total != 0 || len(silent.updates) != 0 || silent.done {
		t.Errorf("progress driven without probing: %+v", silent)
	}
}

func TestValidator_UserVenuesReachFieldChecks(t *testing.T) {
	src := `@string{jfr = {Journal of Field Robotics}}
@article{smith2020jfr,
  author = {Smith, John},
  title = {A study of navigation},
  journal = jfr,
  volume = {37},
  year = {2020},
  url = {https://example.org/paper.pdf}
}
`
	doc, err := parser.NewParser().ParseBytes([]byte(src), "test.bib")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	venues := map[string][]string{
		"jfr": {"author", "title", "journal", "volume", "pages", "year"},
	}
	v := NewValidator(WithVenues(venues), WithLinkChecker(&stubChecker{ok: true}))
	result := v.Validate(context.Background(), doc)

	if !equalCodes(result.Errors, []string{CodeE002}) {
		t.Fatalf("error codes = %v, want [E002]", codesOf(result.Errors))
	}
	if !strings.Contains(result.Errors[0].Text, "'pages'") {
		t.Errorf("Text = %q, want pages mentioned", result.Errors[0].Text)
	}
}
