// Package ast defines the document model for parsed BibTeX bibliographies.
//
// A Document holds entries in source order plus the table of @string macro
// declarations. All nodes carry 1-based source line numbers so that
// validation can report defects at the exact line that caused them, and
// entries keep their raw source lines for checks that must inspect literal
// text (brace protection, bare macro identifiers).
//
// # Core Types
//
// Document: entries plus the macro-string table
//
// Entry: one bibliography record (@article, @inproceedings, ...)
//
// Field: one key/value assignment inside an entry
//
// Value: literal text or a macro-string reference carrying the declared value
//
// MacroString: a named text alias declared with @string
//
// # Immutability
//
// The parser builds the model once per run. The validator's macro-string pass
// is the single sanctioned mutation: it binds unresolved macro references on
// journal and booktitle fields to their declared values. Everything else
// treats the model as read-only.
package ast
