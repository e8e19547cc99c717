package parser

import (
	"fmt"
	"os"
	"strings"

	"publist-hq/bibcheck/pkg/bibtex/ast"
)

// DefaultMaxFileSize caps bibliography files at 10MB. Real .bib files top
// out in the hundreds of kilobytes.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Parser converts bibliography text into an ast.Document.
type Parser struct {
	maxFileSize int64
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxFileSize overrides the maximum accepted file size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(p *Parser) {
		p.maxFileSize = size
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads and parses the bibliography file at path.
func (p *Parser) Parse(path string) (*ast.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat bibliography file: %w", err)
	}
	if info.Size() > p.maxFileSize {
		return nil, fmt.Errorf("bibliography file too large: %d bytes (max %d)", info.Size(), p.maxFileSize)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bibliography file: %w", err)
	}
	return p.ParseBytes(src, path)
}

// ParseBytes parses bibliography text. The path is used in error messages
// only and may be empty.
func (p *Parser) ParseBytes(src []byte, path string) (*ast.Document, error) {
	if int64(len(src)) > p.maxFileSize {
		return nil, fmt.Errorf("bibliography input too large: %d bytes (max %d)", len(src), p.maxFileSize)
	}

	doc := &ast.Document{}
	lines := splitLines(src)
	s := newScanner(src)

	for {
		s.skipToAt()
		if s.eof() {
			break
		}
		atLine := s.line
		s.next() // '@'
		name := s.scanIdentifier()
		if name == "" {
			continue // stray '@' in inter-entry text
		}
		switch strings.ToLower(name) {
		case "comment", "preamble":
			if err := p.skipGroup(s, path); err != nil {
				return nil, err
			}
		case "string":
			str, err := p.parseString(s, path)
			if err != nil {
				return nil, err
			}
			doc.AddString(str)
		default:
			entry, err := p.parseEntry(s, path, strings.ToLower(name), atLine, lines)
			if err != nil {
				return nil, err
			}
			doc.AddEntry(entry)
		}
	}
	return doc, nil
}

// skipGroup consumes the {...} or (...) body of an @comment or @preamble.
func (p *Parser) skipGroup(s *scanner, path string) error {
	s.skipSpace()
	switch s.peek() {
	case '{':
		_, err := s.scanBraced(path)
		return err
	case '(':
		open := s.line
		s.next()
		depth := 1
		for !s.eof() {
			switch s.next() {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return nil
				}
			}
		}
		return errorf(path, open, "unterminated '(' group")
	default:
		// Bodyless directive, e.g. "@comment rest of line". BibTeX
		// tolerates it, so do we.
		return nil
	}
}

// parseString parses "@string{name = value}". The macro name keeps its
// source spelling; lookups elsewhere are exact.
func (p *Parser) parseString(s *scanner, path string) (*ast.MacroString, error) {
	s.skipSpace()
	open := s.peek()
	if open != '{' && open != '(' {
		return nil, errorf(path, s.line, "expected '{' after @string")
	}
	closeDelim := byte('}')
	if open == '(' {
		closeDelim = ')'
	}
	s.next()
	s.skipSpace()

	line := s.line
	name := s.scanIdentifier()
	if name == "" {
		return nil, errorf(path, line, "missing @string name")
	}
	s.skipSpace()
	if s.peek() != '=' {
		return nil, errorf(path, s.line, "expected '=' in @string definition")
	}
	s.next()
	value, err := p.scanValue(s, path)
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	if s.peek() != closeDelim {
		return nil, errorf(path, s.line, "unterminated @string definition")
	}
	s.next()

	return &ast.MacroString{Name: name, Value: value.Text(), Line: line}, nil
}

// parseEntry parses an "@type{key, field = value, ...}" block.
func (p *Parser) parseEntry(s *scanner, path, entryType string, startLine int, lines []string) (*ast.Entry, error) {
	s.skipSpace()
	open := s.peek()
	if open != '{' && open != '(' {
		return nil, errorf(path, s.line, "expected '{' after @%s", entryType)
	}
	closeDelim := byte('}')
	if open == '(' {
		closeDelim = ')'
	}
	s.next()
	s.skipSpace()

	entry := &ast.Entry{
		Type:      entryType,
		Key:       s.scanKey(),
		StartLine: startLine,
	}

	for {
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.next()
			continue
		case closeDelim:
			endLine := s.line
			s.next()
			entry.RawLines = sliceLines(lines, startLine, endLine)
			return entry, nil
		case 0:
			return nil, errorf(path, startLine, "unterminated @%s entry", entryType)
		}

		fieldLine := s.line
		fieldName := s.scanIdentifier()
		if fieldName == "" {
			return nil, errorf(path, s.line, "expected field name in @%s entry", entryType)
		}
		s.skipSpace()
		if s.peek() != '=' {
			return nil, errorf(path, s.line, "expected '=' after field %q", fieldName)
		}
		s.next()
		value, err := p.scanValue(s, path)
		if err != nil {
			return nil, err
		}
		entry.Fields = append(entry.Fields, &ast.Field{
			Key:       strings.ToLower(fieldName),
			Value:     value,
			StartLine: fieldLine,
		})
	}
}

// scanValue parses a field value: a braced group, a quoted string, a bare
// number, or a macro-string reference, possibly joined with '#'. Macro
// references are left unresolved; the validator resolves them against the
// document's @string table.
func (p *Parser) scanValue(s *scanner, path string) (ast.Value, error) {
	var parts []ast.Value
	for {
		s.skipSpace()
		var part ast.Value
		switch s.peek() {
		case '{':
			text, err := s.scanBraced(path)
			if err != nil {
				return ast.Value{}, err
			}
			part = ast.Literal(text)
		case '"':
			text, err := s.scanQuoted(path)
			if err != nil {
				return ast.Value{}, err
			}
			part = ast.Literal(text)
		default:
			bare := s.scanBare()
			if bare == "" {
				return ast.Value{}, errorf(path, s.line, "missing field value")
			}
			if isNumber(bare) {
				part = ast.Literal(bare)
			} else {
				part = ast.MacroRef(bare, "")
			}
		}
		parts = append(parts, part)

		s.skipSpace()
		if s.peek() != '#' {
			break
		}
		s.next()
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	// Concatenation collapses to a literal; unresolved macro parts
	// contribute their name.
	var b strings.Builder
	for _, part := range parts {
		if part.IsMacroRef() {
			b.WriteString(part.Macro)
		} else {
			b.WriteString(part.Raw)
		}
	}
	return ast.Literal(b.String()), nil
}

func isNumber(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// splitLines splits source text into lines without trailing newlines, so
// that lines[n-1] is the text of 1-based line n.
func splitLines(src []byte) []string {
	lines := strings.Split(string(src), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// sliceLines returns the source text of the 1-based inclusive line range.
func sliceLines(lines []string, start, end int) []string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return nil
	}
	out := make([]string, end-start+1)
	copy(out, lines[start-1:end])
	return out
}
