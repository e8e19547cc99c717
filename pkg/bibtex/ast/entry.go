package ast

// Entry types with field requirement policies. Any other type parses fine and
// passes through field checks unaffected.
const (
	TypeArticle       = "article"
	TypeInProceedings = "inproceedings"
	TypePhDThesis     = "phdthesis"
	TypeBook          = "book"
)

// Entry represents a single bibliography record.
type Entry struct {
	Type      string   // lowercased entry type, e.g. "article"
	Key       string   // citation key as written in the source
	StartLine int      // 1-based line of the entry's "@"
	Fields    []*Field // fields in source order; keys need not be unique
	RawLines  []string // raw source lines of the entry's span, starting at StartLine
}

// Field returns the last field with the given key, or nil. BibTeX tools
// resolve duplicate keys to the last definition; lookups here do the same.
func (e *Entry) Field(key string) *Field {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i]
		}
	}
	return nil
}

// HasField reports whether the entry defines a field with the given key.
func (e *Entry) HasField(key string) bool {
	return e.Field(key) != nil
}

// FieldKeys returns the keys of all fields in source order, duplicates
// included.
func (e *Entry) FieldKeys() []string {
	keys := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		keys[i] = f.Key
	}
	return keys
}

// RawLine returns the raw source text of the given 1-based absolute line
// number, which must fall inside the entry's span.
func (e *Entry) RawLine(lineno int) (string, bool) {
	i := lineno - e.StartLine
	if i < 0 || i >= len(e.RawLines) {
		return "", false
	}
	return e.RawLines[i], true
}
