// Package bibtex provides parsing and validation for BibTeX bibliography
// files.
//
// The validator encodes the consistency rules of a curated publication
// list: required fields per entry type and per venue, citation-key naming,
// @string macro hygiene, and working links to the actual PDFs.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: document model for parsed bibliographies
// - parser: BibTeX text parsing and document construction
// - validator: validation passes (macro strings, fields, keys, links)
// - diag: line-addressed diagnostics with stable codes
//
// # Basic Usage
//
// Parse and validate a bibliography:
//
//	import (
//	    "publist-hq/bibcheck/pkg/bibtex/parser"
//	    "publist-hq/bibcheck/pkg/bibtex/validator"
//	)
//
//	// Parse bibliography file
//	p := parser.NewParser()
//	doc, err := p.Parse("publications.bib")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate document
//	v := validator.NewValidator()
//	result := v.Validate(ctx, doc)
//	for _, e := range result.Errors {
//	    fmt.Printf("%d: %s: %s\n", e.Line, e.Code, e.Text)
//	}
//
// Or use the convenience wrapper:
//
//	result, err := bibtex.CheckFile(ctx, "publications.bib")
//
// # Bibliography Structure
//
// A checked bibliography declares venues as @string macros and references
// them from entries:
//
//	@string{ral = {IEEE Robotics and Automation Letters (RA-L)}}
//
//	@article{vizzo2023ral,
//	  author  = {Vizzo, Ignacio and Guadagnino, Tiziano},
//	  title   = {{KISS-ICP: In Defense of Point-to-Point ICP}},
//	  journal = ral,
//	  volume  = {8},
//	  number  = {2},
//	  pages   = {1029--1036},
//	  year    = {2023},
//	  url     = {https://www.example.org/pdf/2209.15397.pdf}
//	}
//
// # Diagnostics
//
// Every finding carries a stable code (W001..W005, E000..E010) and the
// 1-based source line it refers to. Errors fail the run; warnings do not.
// See the validator package for the full catalog.
package bibtex
