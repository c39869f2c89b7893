// Package parsererror defines the typed errors surfaced by statement parsing.
package parsererror

import "fmt"

// ExtractionError represents a failure to read or decode a statement text
// input before analysis begins. Per-line analysis itself never raises errors;
// malformed lines are skipped.
type ExtractionError struct {
	Source string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s: %s: %v", e.Source, e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// StoreError represents a failure loading or saving the merchant or exclusion
// settings files.
type StoreError struct {
	File string
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for %s: %v", e.Op, e.File, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
