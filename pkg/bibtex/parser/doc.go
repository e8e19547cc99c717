// Package parser turns raw BibTeX text into the ast document model.
//
// The parser is deliberately lenient: it recognizes @string, @comment, and
// @preamble directives, reads entries with braced, quoted, or bare field
// values, and treats any text outside a directive as commentary, the way
// BibTeX itself does. It resolves nothing: a bare identifier becomes an
// unbound macro reference, and the validator decides whether a declared
// @string backs it.
//
// Every entry and field carries its 1-based source line, and entries keep
// their raw source lines, because several validation checks must inspect the
// literal text of an assignment rather than its parsed value.
package parser
