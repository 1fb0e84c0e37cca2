package booking

import (
	"errors"
	"fmt"
)

// The workflow reports every expected failure as a typed error so the UI
// can render a specific message per kind. None of these are panics.
var (
	// ErrMissingSearchContext: a reservation was attempted with no search
	// on file. Recoverable by returning to the search entry point.
	ErrMissingSearchContext = errors.New("no search context captured")

	// ErrConflict: the requested interval overlaps an existing reservation
	// for the same car. The stored intent is retained so the user can
	// retry with different dates.
	ErrConflict = errors.New("car already reserved for an overlapping interval")

	// ErrNotFound: the car or user vanished between lookup and use. Fatal
	// to the current operation.
	ErrNotFound = errors.New("record not found")

	// ErrNoPendingIntent: Resume was called with nothing to resume.
	ErrNoPendingIntent = errors.New("no pending reservation intent")
)

// PersistenceError wraps a failed remote write. The intent is never
// cleared on a persistence failure, so the caller may retry without
// re-entering the search.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
