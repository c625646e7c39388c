package pricing

import (
	"fmt"
	"time"

	"roamvan/models"

	"github.com/shopspring/decimal"
)

// RateMode controls what happens when no pricing rule covers a date.
type RateMode int

const (
	// Strict fails with a PricingUnavailableError naming the first
	// uncovered date.
	Strict RateMode = iota
	// Defaulting substitutes the configured fallback nightly rate.
	Defaulting
)

// weekendMultiplier is the surcharge applied to Friday and Saturday nights.
var weekendMultiplier = decimal.RequireFromString("1.20")

// DailyRates computes the nightly rate for every date in [start, end).
// The end date is the checkout day and is never charged.
//
// Friday and Saturday nights are charged at 1.2x the rule's base rate.
func DailyRates(rules []models.PricingRule, start, end time.Time, mode RateMode, defaultRate decimal.Decimal) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(DateLayout)

		rule := SelectRule(rules, day)
		if rule == nil {
			if mode == Strict {
				return nil, &PricingUnavailableError{Date: dateStr}
			}
			rates[dateStr] = applyWeekendSurcharge(defaultRate, day)
			continue
		}

		rate, err := decimal.NewFromString(rule.NightlyRate)
		if err != nil {
			return nil, fmt.Errorf("pricing rule %s has invalid nightly rate %q: %w", rule.ID, rule.NightlyRate, err)
		}
		rates[dateStr] = applyWeekendSurcharge(rate, day)
	}
	return rates, nil
}

// SumRates adds up a daily-rate breakdown with exact decimal arithmetic.
func SumRates(rates map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, rate := range rates {
		total = total.Add(rate)
	}
	return total
}

func applyWeekendSurcharge(rate decimal.Decimal, day time.Time) decimal.Decimal {
	if wd := day.Weekday(); wd == time.Friday || wd == time.Saturday {
		return rate.Mul(weekendMultiplier)
	}
	return rate
}
