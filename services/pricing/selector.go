package pricing

import (
	"time"

	"roamvan/models"
)

// SelectRule picks the single pricing rule governing the given day from the
// candidate set, or nil when none covers it.
//
// When several rules cover the same day the broadest one wins: longest
// duration first, then the most recently created, then the largest ID.
// Narrow last-minute rules therefore lose to broad seasonal ones unless the
// duration also ties. The ordering is total, so the outcome never depends
// on the input order.
func SelectRule(rules []models.PricingRule, day time.Time) *models.PricingRule {
	var selected *models.PricingRule

	for i := range rules {
		rule := &rules[i]
		start, err := ParseDate(rule.StartDate)
		if err != nil {
			continue
		}
		end, err := ParseDate(rule.EndDate)
		if err != nil {
			continue
		}
		if !covers(start, end, day) {
			continue
		}
		if selected == nil || betterRule(rule, selected) {
			selected = rule
		}
	}
	return selected
}

// betterRule reports whether a should be preferred over b.
func betterRule(a, b *models.PricingRule) bool {
	da, db := a.DurationDays(), b.DurationDays()
	if da != db {
		return da > db
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
