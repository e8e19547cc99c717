package bibtex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"publist-hq/bibcheck/internal/bibtest"
	"publist-hq/bibcheck/pkg/bibtex/diag"
	"publist-hq/bibcheck/pkg/bibtex/validator"
)

const cleanBib = `@string{ral = {IEEE Robotics and Automation Letters (RA-L)}}

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

func TestCheckBytes(t *testing.T) {
	result, err := CheckBytes(context.Background(), []byte(cleanBib), "test.bib",
		validator.WithLinkMode(validator.LinkNever))
	if err != nil {
		t.Fatalf("CheckBytes() error = %v", err)
	}
	if result.Status != diag.StatusPass {
		t.Errorf("Status = %s, want pass", result.Status)
	}
}

func TestCheckBytes_ParseError(t *testing.T) {
	_, err := CheckBytes(context.Background(), []byte("@article{broken,\n"), "test.bib")
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.bib")
	if err := os.WriteFile(path, []byte(cleanBib), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := CheckFile(context.Background(), path, validator.WithLinkMode(validator.LinkNever))
	if err != nil {
		t.Fatalf("CheckFile() error = %v", err)
	}
	if result.Failed() {
		t.Errorf("Failed() = true, errors: %v", result.Errors)
	}
}

func TestCheckFile_Missing(t *testing.T) {
	_, err := CheckFile(context.Background(), filepath.Join(t.TempDir(), "nope.bib"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// probeBibTemplate is cleanBib with the url swapped for one that cannot be
// judged from its text alone, forcing a probe.
const probeBibTemplate = `@string{ral = {IEEE Robotics and Automation Letters (RA-L)}}

@article{vizzo2023ral,
  author = {Vizzo, Ignacio and Guadagnino, Tiziano},
  title = {{KISS-ICP: In Defense of Point-to-Point ICP}},
  journal = ral,
  volume = {8},
  number = {2},
  pages = {1029--1036},
  year = {2023},
  url = {%s}
}
`

func TestCheckBytes_ProbeAcceptsPDF(t *testing.T) {
	srv := bibtest.NewPDFServer()
	defer srv.Close()
	srv.ServePDF("/papers/kiss-icp")

	src := fmt.Sprintf(probeBibTemplate, srv.URL()+"/papers/kiss-icp")
	result, err := CheckBytes(context.Background(), []byte(src), "test.bib",
		validator.WithLinkMode(validator.LinkAlways))
	if err != nil {
		t.Fatalf("CheckBytes() error = %v", err)
	}
	if result.Failed() {
		t.Errorf("Failed() = true, errors: %v", result.Errors)
	}
	if srv.RequestCount() != 1 {
		t.Errorf("probes = %d, want 1", srv.RequestCount())
	}
}

func TestCheckBytes_ProbeRejectsLandingPage(t *testing.T) {
	srv := bibtest.NewPDFServer()
	defer srv.Close()
	srv.ServeLandingPage("/papers/kiss-icp")

	src := fmt.Sprintf(probeBibTemplate, srv.URL()+"/papers/kiss-icp")
	result, err := CheckBytes(context.Background(), []byte(src), "test.bib",
		validator.WithLinkMode(validator.LinkAlways))
	if err != nil {
		t.Fatalf("CheckBytes() error = %v", err)
	}
	if len(result.Errors) != 1 || result.Errors[0].Code != "E004" {
		t.Errorf("errors = %v, want one E004", result.Errors)
	}
}

func TestCheckBytes_CustomChecker(t *testing.T) {
	const url = "https://example.org/paper-page"
	stub := bibtest.NewStubLinkChecker()
	stub.SetValid(url, true)

	src := fmt.Sprintf(probeBibTemplate, url)
	result, err := CheckBytes(context.Background(), []byte(src), "test.bib",
		validator.WithLinkMode(validator.LinkAlways),
		validator.WithLinkChecker(stub))
	if err != nil {
		t.Fatalf("CheckBytes() error = %v", err)
	}
	if result.Failed() {
		t.Errorf("Failed() = true, errors: %v", result.Errors)
	}
	if calls := stub.Calls(); len(calls) != 1 || calls[0] != url {
		t.Errorf("probed %v, want [%s]", calls, url)
	}
}

func TestParseAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.bib")
	if err := os.WriteFile(path, []byte(cleanBib), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Entries) != 1 || len(doc.Strings) != 1 {
		t.Fatalf("entries = %d, strings = %d", len(doc.Entries), len(doc.Strings))
	}

	result := Validate(context.Background(), doc, validator.WithLinkMode(validator.LinkNever))
	if result.Failed() {
		t.Errorf("Failed() = true, errors: %v", result.Errors)
	}
}
