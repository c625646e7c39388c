package pricing

import (
	"testing"
	"time"

	"roamvan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMinimumStay_TooShort(t *testing.T) {
	rule := models.PricingRule{
		ID: "june", StartDate: "2024-06-01", EndDate: "2024-06-30",
		NightlyRate: "100.00", MinStay: 3,
	}

	err := ValidateMinimumStay([]models.PricingRule{rule},
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-05"))

	var minStayErr *MinimumStayError
	require.ErrorAs(t, err, &minStayErr)
	assert.Equal(t, 3, minStayErr.Required)
	assert.Equal(t, 2, minStayErr.Actual)
}

func TestValidateMinimumStay_ExactLengthPasses(t *testing.T) {
	rule := models.PricingRule{
		ID: "june", StartDate: "2024-06-01", EndDate: "2024-06-30",
		NightlyRate: "100.00", MinStay: 3,
	}
	err := ValidateMinimumStay([]models.PricingRule{rule},
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-06"))
	assert.NoError(t, err)
}

func TestValidateMinimumStay_OnlyFirstNightRuleCounts(t *testing.T) {
	first := models.PricingRule{
		ID: "first", StartDate: "2024-06-01", EndDate: "2024-06-03",
		NightlyRate: "100.00", MinStay: 1,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	later := models.PricingRule{
		ID: "later", StartDate: "2024-06-04", EndDate: "2024-06-30",
		NightlyRate: "100.00", MinStay: 7,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	// Two nights starting inside the lenient rule: the strict later rule
	// covers the second night but has no say.
	err := ValidateMinimumStay([]models.PricingRule{first, later},
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-05"))
	assert.NoError(t, err)
}

func TestValidateMinimumStay_UncoveredFirstNight(t *testing.T) {
	rule := models.PricingRule{
		ID: "june", StartDate: "2024-06-10", EndDate: "2024-06-30",
		NightlyRate: "100.00", MinStay: 1,
	}
	err := ValidateMinimumStay([]models.PricingRule{rule},
		mustDate(t, "2024-06-03"), mustDate(t, "2024-06-05"))

	var unavailable *PricingUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "2024-06-03", unavailable.Date)
}
