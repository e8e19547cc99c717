package ast

// Document is the parsed form of one bibliography file: entries in source
// order plus the table of @string macro declarations.
type Document struct {
	Entries []*Entry       // entries in source order
	Strings []*MacroString // macro-string declarations in source order

	index map[string]*MacroString // name -> latest declaration
}

// MacroString is a named text alias declared once per document with @string
// and referenced by bare identifier in entry fields.
type MacroString struct {
	Name  string // macro name, e.g. "ral"
	Value string // declared text, e.g. "IEEE Robotics and Automation Letters (RA-L)"
	Line  int    // 1-based line of the declaration
}

// AddEntry appends an entry to the document.
func (d *Document) AddEntry(e *Entry) {
	d.Entries = append(d.Entries, e)
}

// AddString records a macro-string declaration. A redeclared name keeps both
// declarations in order; lookups resolve to the latest value.
func (d *Document) AddString(s *MacroString) {
	if d.index == nil {
		d.index = make(map[string]*MacroString)
	}
	d.Strings = append(d.Strings, s)
	d.index[s.Name] = s
}

// LookupString resolves a macro-string name to its latest declaration.
func (d *Document) LookupString(name string) (*MacroString, bool) {
	s, ok := d.index[name]
	return s, ok
}

// HasString reports whether the document declares a macro string with the
// given name.
func (d *Document) HasString(name string) bool {
	_, ok := d.index[name]
	return ok
}
