package pricing

import (
	"errors"
	"fmt"
)

// ErrInvalidDateRange is returned when the end date is not after the start date.
var ErrInvalidDateRange = errors.New("pricing: end date must be after start date")

// PricingUnavailableError reports the first date in a range that no pricing
// rule covers. Only strict rate selection produces it.
type PricingUnavailableError struct {
	Date string
}

func (e *PricingUnavailableError) Error() string {
	return fmt.Sprintf("no pricing rule found for date %s", e.Date)
}

// MinimumStayError reports a stay shorter than the governing rule's minimum.
type MinimumStayError struct {
	Required int
	Actual   int
}

func (e *MinimumStayError) Error() string {
	return fmt.Sprintf("minimum stay requirement not met: required %d nights, got %d", e.Required, e.Actual)
}
