package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBookingNotFound is returned when no booking matches the given ID.
var ErrBookingNotFound = errors.New("booking not found")

// ErrPickupTooEarly is returned when the requested pickup time is before the
// earliest allowed pickup of 05:00.
var ErrPickupTooEarly = errors.New("pickup time must be 05:00 or later")

// DateConflictError reports an availability conflict with the calendar dates
// involved, clipped to the requested range.
type DateConflictError struct {
	Dates []string
}

func (e *DateConflictError) Error() string {
	return fmt.Sprintf("selected dates are not available: %s", strings.Join(e.Dates, ", "))
}

// StatusTransitionError reports a forbidden booking status change.
type StatusTransitionError struct {
	From string
	To   string
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot change booking status from %s to %s", e.From, e.To)
}
