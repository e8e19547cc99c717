package bibtex

import (
	"context"

	"publist-hq/bibcheck/pkg/bibtex/ast"
	"publist-hq/bibcheck/pkg/bibtex/diag"
	"publist-hq/bibcheck/pkg/bibtex/parser"
	"publist-hq/bibcheck/pkg/bibtex/validator"
)

// CheckFile is a convenience function that parses and validates a
// bibliography file. Validator options configure venue tables and link
// probing.
func CheckFile(ctx context.Context, path string, opts ...validator.Option) (*diag.Result, error) {
	p := parser.NewParser()
	doc, err := p.Parse(path)
	if err != nil {
		return nil, err
	}

	v := validator.NewValidator(opts...)
	return v.Validate(ctx, doc), nil
}

// CheckBytes is a convenience function that parses and validates
// bibliography text. The path is used in parse errors only.
func CheckBytes(ctx context.Context, src []byte, path string, opts ...validator.Option) (*diag.Result, error) {
	p := parser.NewParser()
	doc, err := p.ParseBytes(src, path)
	if err != nil {
		return nil, err
	}

	v := validator.NewValidator(opts...)
	return v.Validate(ctx, doc), nil
}

// Parse parses a bibliography file without validating it. Use this to
// inspect the document before validation.
func Parse(path string) (*ast.Document, error) {
	p := parser.NewParser()
	return p.Parse(path)
}

// Validate validates a parsed document.
func Validate(ctx context.Context, doc *ast.Document, opts ...validator.Option) *diag.Result {
	v := validator.NewValidator(opts...)
	return v.Validate(ctx, doc)
}
