package diag

// Severity classifies a message as an error or a warning. Errors make the
// overall result fail; warnings are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Message is a single diagnostic: a stable code, the 1-based source line that
// triggered it, and the rendered text. Messages are immutable once created.
//
// The line always points at the source of the defect: entry-level defects use
// the entry's start line, field-level defects the field's own line.
type Message struct {
	Code string // stable identifier, e.g. "E002" or "W001"
	Line int    // 1-based source line
	Text string // rendered message text
}
