package pricing

import (
	"time"

	"roamvan/models"
)

// ValidateMinimumStay checks the stay length against the minimum-stay
// constraint of the rule governing the first night.
//
// Only the first night's rule is consulted, even when later nights fall
// under rules with a different minimum. That keeps the answer stable for
// a guest who has already been shown the first night's conditions.
func ValidateMinimumStay(rules []models.PricingRule, start, end time.Time) error {
	nights := Nights(start, end)

	rule := SelectRule(rules, start)
	if rule == nil {
		return &PricingUnavailableError{Date: start.Format(DateLayout)}
	}

	if nights < rule.MinStay {
		return &MinimumStayError{Required: rule.MinStay, Actual: nights}
	}
	return nil
}
