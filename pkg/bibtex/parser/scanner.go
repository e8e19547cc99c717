package parser

// scanner walks raw bibliography text byte by byte, tracking the 1-based
// line of the current position. BibTeX structure is plain ASCII, so byte
// scanning is safe; field values pass through untouched and may hold UTF-8.
type scanner struct {
	src  []byte
	pos  int
	line int
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the current byte without consuming it, 0 at EOF.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// next consumes and returns the current byte, counting newlines.
func (s *scanner) next() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
	}
	return c
}

// skipSpace consumes spaces, tabs, and newlines.
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.next()
		default:
			return
		}
	}
}

// skipToAt consumes everything up to the next '@'. BibTeX treats text
// between entries as commentary.
func (s *scanner) skipToAt() {
	for !s.eof() && s.peek() != '@' {
		s.next()
	}
}

// scanIdentifier consumes an identifier: letters, digits, '_', '-', '.', ':'.
// Field names like "archive-prefix" and directive names both go through here.
func (s *scanner) scanIdentifier() string {
	start := s.pos
	for !s.eof() {
		c := s.peek()
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '_' || c == '-' || c == '.' || c == ':' {
			s.next()
			continue
		}
		break
	}
	return string(s.src[start:s.pos])
}

// scanKey consumes a citation key: everything up to a comma, a closing
// delimiter, or whitespace.
func (s *scanner) scanKey() string {
	start := s.pos
	for !s.eof() {
		switch s.peek() {
		case ',', '}', ')', ' ', '\t', '\r', '\n':
			return string(s.src[start:s.pos])
		}
		s.next()
	}
	return string(s.src[start:s.pos])
}

// scanBraced consumes a balanced {...} group and returns the text between
// the outermost braces, inner braces preserved.
func (s *scanner) scanBraced(path string) (string, error) {
	open := s.line
	s.next() // '{'
	start := s.pos
	depth := 1
	for !s.eof() {
		switch s.next() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return string(s.src[start : s.pos-1]), nil
			}
		}
	}
	return "", errorf(path, open, "unterminated '{' group")
}

// scanQuoted consumes a "..." value and returns the text between the quotes.
// Per BibTeX rules a quote inside a braced group does not terminate the
// value.
func (s *scanner) scanQuoted(path string) (string, error) {
	open := s.line
	s.next() // '"'
	start := s.pos
	depth := 0
	for !s.eof() {
		switch s.next() {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '"':
			if depth == 0 {
				return string(s.src[start : s.pos-1]), nil
			}
		}
	}
	return "", errorf(path, open, "unterminated quoted value")
}

// scanBare consumes a bare value token: a number or macro-string identifier.
func (s *scanner) scanBare() string {
	start := s.pos
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n', ',', '#', '}', ')':
			return string(s.src[start:s.pos])
		}
		s.next()
	}
	return string(s.src[start:s.pos])
}
