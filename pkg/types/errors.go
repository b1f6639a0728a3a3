// Copyright Daniel Amado, 2026. All rights reserved.

package types

import "fmt"

// DocumentError reports that a source document could not be opened or is
// corrupted. It aborts the whole job.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// InvalidDimensionError reports a non-positive image or slide dimension.
// It is a caller contract violation, not a runtime condition.
type InvalidDimensionError struct {
	What  string
	Value float64
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %s=%g (must be positive)", e.What, e.Value)
}

// IOError reports a destination write failure: directory not creatable,
// file not writable, disk full.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConversionError wraps a failure during page processing or final save.
// Page is the zero-based index of the page that failed, or -1 when the
// failure is not attributable to a single page.
type ConversionError struct {
	Page int
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Page >= 0 {
		return fmt.Sprintf("converting page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// CancelledError reports that a job was cancelled between pages. Partial
// output is left in place.
type CancelledError struct {
	Page int
	Err  error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("cancelled before page %d: %v", e.Page, e.Err)
}

func (e *CancelledError) Unwrap() error { return e.Err }
