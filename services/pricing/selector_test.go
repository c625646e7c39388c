package pricing

import (
	"testing"
	"time"

	"roamvan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestSelectRule_LongestDurationWins(t *testing.T) {
	seasonal := models.PricingRule{
		ID: "seasonal", StartDate: "2024-06-01", EndDate: "2024-06-30",
		NightlyRate: "120.00", MinStay: 2, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	weekend := models.PricingRule{
		ID: "weekend", StartDate: "2024-06-07", EndDate: "2024-06-09",
		NightlyRate: "200.00", MinStay: 1, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	day := mustDate(t, "2024-06-08")

	selected := SelectRule([]models.PricingRule{seasonal, weekend}, day)
	require.NotNil(t, selected)
	assert.Equal(t, "seasonal", selected.ID)

	// The outcome must not depend on input order.
	selected = SelectRule([]models.PricingRule{weekend, seasonal}, day)
	require.NotNil(t, selected)
	assert.Equal(t, "seasonal", selected.ID)
}

func TestSelectRule_MostRecentWinsOnEqualDuration(t *testing.T) {
	older := models.PricingRule{
		ID: "older", StartDate: "2024-06-01", EndDate: "2024-06-10",
		NightlyRate: "100.00", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := models.PricingRule{
		ID: "newer", StartDate: "2024-06-05", EndDate: "2024-06-14",
		NightlyRate: "110.00", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	day := mustDate(t, "2024-06-07")

	for _, rules := range [][]models.PricingRule{{older, newer}, {newer, older}} {
		selected := SelectRule(rules, day)
		require.NotNil(t, selected)
		assert.Equal(t, "newer", selected.ID)
	}
}

func TestSelectRule_IDBreaksFullTie(t *testing.T) {
	createdAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	a := models.PricingRule{
		ID: "aaa", StartDate: "2024-06-01", EndDate: "2024-06-10",
		NightlyRate: "100.00", CreatedAt: createdAt,
	}
	b := models.PricingRule{
		ID: "bbb", StartDate: "2024-06-01", EndDate: "2024-06-10",
		NightlyRate: "110.00", CreatedAt: createdAt,
	}
	day := mustDate(t, "2024-06-05")

	for _, rules := range [][]models.PricingRule{{a, b}, {b, a}} {
		selected := SelectRule(rules, day)
		require.NotNil(t, selected)
		assert.Equal(t, "bbb", selected.ID)
	}
}

func TestSelectRule_NoCoverage(t *testing.T) {
	rule := models.PricingRule{
		ID: "june", StartDate: "2024-06-01", EndDate: "2024-06-30", NightlyRate: "100.00",
	}
	assert.Nil(t, SelectRule([]models.PricingRule{rule}, mustDate(t, "2024-07-01")))
	assert.Nil(t, SelectRule(nil, mustDate(t, "2024-06-15")))
}

func TestSelectRule_RangeEndsInclusive(t *testing.T) {
	rule := models.PricingRule{
		ID: "june", StartDate: "2024-06-01", EndDate: "2024-06-30", NightlyRate: "100.00",
	}
	rules := []models.PricingRule{rule}

	assert.NotNil(t, SelectRule(rules, mustDate(t, "2024-06-01")))
	assert.NotNil(t, SelectRule(rules, mustDate(t, "2024-06-30")))
	assert.Nil(t, SelectRule(rules, mustDate(t, "2024-05-31")))
}
