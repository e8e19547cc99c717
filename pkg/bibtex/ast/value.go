package ast

// ValueKind discriminates literal field values from macro-string references.
type ValueKind string

const (
	ValueLiteral  ValueKind = "literal"
	ValueMacroRef ValueKind = "macroref"
)

// Value is the value of an entry field. The parser leaves bare identifiers
// as unresolved macro references; the validator's macro-string pass binds
// journal and booktitle references to their declared values.
type Value struct {
	Kind     ValueKind
	Raw      string // literal text with delimiters stripped
	Macro    string // referenced macro-string name, when Kind is ValueMacroRef
	Resolved string // declared value of the macro, empty until bound
}

// Literal returns a literal value.
func Literal(text string) Value {
	return Value{Kind: ValueLiteral, Raw: text}
}

// MacroRef returns a macro-string reference. A non-empty resolved value
// marks the reference as bound to a declared @string.
func MacroRef(name, resolved string) Value {
	return Value{Kind: ValueMacroRef, Macro: name, Resolved: resolved}
}

// IsMacroRef reports whether the value references a @string macro.
func (v Value) IsMacroRef() bool {
	return v.Kind == ValueMacroRef
}

// IsBound reports whether a macro reference has been bound to its declared
// value.
func (v Value) IsBound() bool {
	return v.Kind == ValueMacroRef && v.Resolved != ""
}

// Text returns the effective text of the value: the declared macro value
// for bound references, the macro name for unbound ones, and the literal
// text otherwise. Checks that care about "what the reader sees" consume
// this accessor and never the raw fields.
func (v Value) Text() string {
	if v.Kind == ValueMacroRef {
		if v.Resolved != "" {
			return v.Resolved
		}
		return v.Macro
	}
	return v.Raw
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Text()
}
