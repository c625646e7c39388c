package pricing

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for pickup and return times.
const TimeLayout = "15:04"

// ParseDate parses a "2006-01-02" date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseTimeOfDay parses an "HH:MM" clock time.
func ParseTimeOfDay(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// Nights returns the number of charged nights between start and the checkout
// day end. The checkout day itself is never charged.
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// covers reports whether day falls inside the inclusive [start, end] range.
func covers(start, end, day time.Time) bool {
	return !day.Before(start) && !day.After(end)
}
