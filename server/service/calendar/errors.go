package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Calendar errors are local validation failures: none of them is
// retryable, and none is recovered inside the engine. Transports map
// them to their own surface (HTTP status, CLI exit code).
var (
	// ErrEmptyQuery is returned when a meeting query names no participants.
	// The intersection of zero availability sets is deliberately an error
	// rather than "always free".
	ErrEmptyQuery = errors.New("meeting query has no participants")
)

// InvalidRangeError reports a malformed interval (start >= end).
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s must be before end %s",
		e.Start.Format(InstantLayout), e.End.Format(InstantLayout))
}

// UnknownPersonError reports a referenced person id absent from the store.
type UnknownPersonError struct {
	Username string
}

func (e *UnknownPersonError) Error() string {
	return fmt.Sprintf("unknown person %q", e.Username)
}

// DuplicatePersonError reports a create collision on a person id.
type DuplicatePersonError struct {
	Username string
}

func (e *DuplicatePersonError) Error() string {
	return fmt.Sprintf("person %q already exists", e.Username)
}
