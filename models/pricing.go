package models

import "time"

// PricingRule defines the nightly rate and minimum stay for a date range.
// Rules are immutable once created; overlapping rules are allowed and are
// resolved deterministically by the pricing engine (longest range wins,
// then the most recently created rule).
type PricingRule struct {
	ID          string    `bson:"id" json:"id"`
	StartDate   string    `bson:"start_date" json:"start_date"` // Inclusive, "2006-01-02"
	EndDate     string    `bson:"end_date" json:"end_date"`     // Inclusive, "2006-01-02"
	NightlyRate string    `bson:"nightly_rate" json:"nightly_rate"`
	MinStay     int       `bson:"min_stay" json:"min_stay"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// DurationDays returns the length of the rule's range in days, both ends counted.
func (r PricingRule) DurationDays() int {
	start, err1 := time.Parse("2006-01-02", r.StartDate)
	end, err2 := time.Parse("2006-01-02", r.EndDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
