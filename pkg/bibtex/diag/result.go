package diag

// Status is the overall verdict of a validation run.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Result collects everything a validation run produced. Status is fail iff at
// least one error exists; warnings never affect it.
//
// Errors are sorted by line (stable); warnings keep emission order. How the
// two sequences interleave for display is up to the caller.
type Result struct {
	Status   Status
	Errors   []Message
	Warnings []Message
}

// Failed reports whether the run produced at least one error.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}
