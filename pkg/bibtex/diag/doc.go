// Package diag defines the diagnostic types produced by bibliography
// validation: line-addressed messages with stable codes, and the result that
// aggregates them into errors, warnings, and an overall pass/fail status.
package diag
