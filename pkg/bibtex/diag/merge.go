package diag

import "sort"

// Tagged pairs a message with its severity for display layers that
// interleave errors and warnings.
type Tagged struct {
	Message
	Severity Severity
}

// Merged returns errors and warnings interleaved into one line-ordered
// sequence. The merge is stable: errors keep their sorted order and come
// first at equal lines; warnings keep emission order.
func (r *Result) Merged() []Tagged {
	msgs := make([]Tagged, 0, len(r.Errors)+len(r.Warnings))
	for _, m := range r.Errors {
		msgs = append(msgs, Tagged{Message: m, Severity: SeverityError})
	}
	for _, m := range r.Warnings {
		msgs = append(msgs, Tagged{Message: m, Severity: SeverityWarning})
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Line < msgs[j].Line
	})
	return msgs
}
