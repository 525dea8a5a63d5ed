package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent request and calendar failures.
// Provider capability gaps are not errors at this level; they are
// absorbed into default-valued fields by the assembler.
var (
	// ErrInvalidDate indicates a date string that is not a valid YYYY-MM-DD day.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTimezone indicates an unknown IANA timezone name.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidWeekday indicates a weekday index outside 1..7.
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrCalendarConversion indicates the provider failed the mandatory
	// gregorian to lunar conversion. It is fatal and never defaulted.
	ErrCalendarConversion = errors.New("calendar conversion failed")

	// ErrInvalidRequest wraps input errors surfaced to a caller.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupported indicates the provider does not offer an optional capability.
	ErrUnsupported = errors.New("capability not supported by provider")
)

// RequestError is returned to callers when the date or timezone of a
// request cannot be resolved. It keeps the original inputs for diagnosis.
type RequestError struct {
	Date     string
	Timezone string
	Err      error
}

// NewRequestError wraps err with the inputs that caused it.
func NewRequestError(date, timezone string, err error) *RequestError {
	return &RequestError{Date: date, Timezone: timezone, Err: err}
}

// Error implements error.
func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid date or timezone: date=%q, tz=%q: %v", e.Date, e.Timezone, e.Err)
}

// Unwrap exposes both ErrInvalidRequest and the underlying cause.
func (e *RequestError) Unwrap() []error {
	return []error{ErrInvalidRequest, e.Err}
}
