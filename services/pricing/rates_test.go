package pricing

import (
	"testing"
	"time"

	"roamvan/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultRate = decimal.RequireFromString("100.00")

func juneRule(rate string) models.PricingRule {
	return models.PricingRule{
		ID: "june", StartDate: "2024-06-01", EndDate: "2024-06-30",
		NightlyRate: rate, MinStay: 1, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestDailyRates_CheckoutDayNotCharged(t *testing.T) {
	// Monday through Friday: four nights, the checkout Friday is free.
	rates, err := DailyRates([]models.PricingRule{juneRule("100.00")},
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-07"), Strict, defaultRate)
	require.NoError(t, err)

	assert.Len(t, rates, 4)
	assert.NotContains(t, rates, "2024-06-07")
	assert.True(t, SumRates(rates).Equal(decimal.RequireFromString("400.00")))
}

func TestDailyRates_WeekendSurcharge(t *testing.T) {
	// 2024-06-07 is a Friday, 2024-06-08 a Saturday.
	rates, err := DailyRates([]models.PricingRule{juneRule("100.00")},
		mustDate(t, "2024-06-07"), mustDate(t, "2024-06-09"), Strict, defaultRate)
	require.NoError(t, err)

	assert.True(t, rates["2024-06-07"].Equal(decimal.RequireFromString("120.00")))
	assert.True(t, rates["2024-06-08"].Equal(decimal.RequireFromString("120.00")))
	assert.True(t, SumRates(rates).Equal(decimal.RequireFromString("240.00")))
}

func TestDailyRates_SundayNotSurcharged(t *testing.T) {
	// 2024-06-09 is a Sunday.
	rates, err := DailyRates([]models.PricingRule{juneRule("100.00")},
		mustDate(t, "2024-06-09"), mustDate(t, "2024-06-10"), Strict, defaultRate)
	require.NoError(t, err)
	assert.True(t, rates["2024-06-09"].Equal(decimal.RequireFromString("100.00")))
}

func TestDailyRates_StrictFailsOnFirstUncoveredDate(t *testing.T) {
	rule := models.PricingRule{
		ID: "short", StartDate: "2024-06-03", EndDate: "2024-06-05", NightlyRate: "100.00",
	}
	_, err := DailyRates([]models.PricingRule{rule},
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-08"), Strict, defaultRate)

	var unavailable *PricingUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "2024-06-06", unavailable.Date)
}

func TestDailyRates_DefaultingSubstitutesFallback(t *testing.T) {
	fallback := decimal.RequireFromString("80.00")

	rates, err := DailyRates(nil,
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-04"), Defaulting, fallback)
	require.NoError(t, err)
	assert.True(t, rates["2024-06-03"].Equal(fallback))

	// The weekend surcharge applies to the fallback rate too.
	rates, err = DailyRates(nil,
		mustDate(t, "2024-06-07"), mustDate(t, "2024-06-08"), Defaulting, fallback)
	require.NoError(t, err)
	assert.True(t, rates["2024-06-07"].Equal(decimal.RequireFromString("96.00")))
}

func TestDailyRates_ContiguousRulesCoverWithoutGap(t *testing.T) {
	early := models.PricingRule{
		ID: "early", StartDate: "2024-06-03", EndDate: "2024-06-04", NightlyRate: "100.00",
	}
	late := models.PricingRule{
		ID: "late", StartDate: "2024-06-05", EndDate: "2024-06-06", NightlyRate: "150.00",
	}

	rates, err := DailyRates([]models.PricingRule{early, late},
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-07"), Strict, defaultRate)
	require.NoError(t, err)

	assert.True(t, rates["2024-06-04"].Equal(decimal.RequireFromString("100.00")))
	assert.True(t, rates["2024-06-05"].Equal(decimal.RequireFromString("150.00")))
	assert.True(t, SumRates(rates).Equal(decimal.RequireFromString("500.00")))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 4, Nights(mustDate(t, "2024-06-03"), mustDate(t, "2024-06-07")))
	assert.Equal(t, 1, Nights(mustDate(t, "2024-06-03"), mustDate(t, "2024-06-04")))
}
