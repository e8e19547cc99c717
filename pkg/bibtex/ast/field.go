package ast

// Field is one key/value assignment inside an entry.
type Field struct {
	Key       string // lowercased field name, e.g. "author"
	Value     Value  // parsed value; may be rewritten into a macro reference
	StartLine int    // 1-based line of the assignment
}
