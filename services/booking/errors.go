package booking

import (
	"errors"
	"fmt"
)

// Validation error codes.
const (
	CodeEmptyName      = "emptyName"
	CodeInvalidContact = "invalidContact"
)

// ValidationError reports a rejected booking request before any write is
// attempted.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrSubmissionInFlight is returned when a submission for the same
// professional and start time is already being processed.
var ErrSubmissionInFlight = errors.New("a booking for this slot is already being processed")

// SubmissionError wraps a persistence failure during booking submission so
// callers can distinguish it from validation failures.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("booking submission failed: %v", e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
