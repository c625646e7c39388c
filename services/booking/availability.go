package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"roamvan/models"
	"roamvan/services/pricing"
)

// CheckAvailability fetches the overlapping bookings and blocked periods and
// runs the pure range check over them.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, startDate, endDate string) (*models.Availability, error) {
	start, err := pricing.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := pricing.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, pricing.ErrInvalidDateRange
	}

	bookings, err := s.Bookings.FindOverlapping(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	blocked, err := s.Blocked.FindOverlapping(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked periods: %w", err)
	}

	availability := CheckRangeAvailability(start, end, bookings, blocked)
	return &availability, nil
}

// CheckRangeAvailability determines whether the candidate inclusive range
// [start, end] conflicts with any of the given bookings or blocked periods.
//
// Both ends count here: a booking's checkout day is not charged a night, but
// the van is still in use on it, so a candidate starting that day conflicts.
// Cancelled bookings must already be filtered out by the caller.
//
// Conflicting dates are clipped to the candidate range, deduplicated and
// returned in ascending order.
func CheckRangeAvailability(start, end time.Time, bookings []models.Booking, blocked []models.BlockedPeriod) models.Availability {
	conflicts := make(map[string]struct{})

	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		collectConflicts(conflicts, start, end, b.StartDate, b.EndDate)
	}
	for _, p := range blocked {
		collectConflicts(conflicts, start, end, p.StartDate, p.EndDate)
	}

	dates := make([]string, 0, len(conflicts))
	for d := range conflicts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	return models.Availability{
		Available:        len(dates) == 0,
		ConflictingDates: dates,
	}
}

// collectConflicts adds every date in the intersection of the candidate range
// and the other range, when the two inclusive ranges overlap at all.
func collectConflicts(conflicts map[string]struct{}, start, end time.Time, otherStart, otherEnd string) {
	os, err := pricing.ParseDate(otherStart)
	if err != nil {
		return
	}
	oe, err := pricing.ParseDate(otherEnd)
	if err != nil {
		return
	}

	// Standard inclusive interval intersection: a1 <= b2 && a2 >= b1.
	if start.After(oe) || end.Before(os) {
		return
	}

	lo, hi := start, end
	if os.After(lo) {
		lo = os
	}
	if oe.Before(hi) {
		hi = oe
	}
	for day := lo; !day.After(hi); day = day.AddDate(0, 0, 1) {
		conflicts[day.Format(pricing.DateLayout)] = struct{}{}
	}
}
