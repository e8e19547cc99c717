package parser

import "fmt"

// Error describes a fatal syntax error in a bibliography file. Validation
// never produces one of these; only input the parser cannot make sense of
// at all does.
type Error struct {
	Path string // source path, empty for in-memory input
	Line int    // 1-based line where parsing failed
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// errorf builds an *Error at the given line.
func errorf(path string, line int, format string, args ...interface{}) *Error {
	return &Error{Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}
