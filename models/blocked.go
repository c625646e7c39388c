package models

import "time"

// Reasons a period may be blocked by an admin.
const (
	BlockedReasonMaintenance = "maintenance"
	BlockedReasonPrivate     = "private"
	BlockedReasonOther       = "other"
)

// BlockedPeriod is an admin-imposed unavailability window, independent of bookings.
type BlockedPeriod struct {
	ID        string    `bson:"id" json:"id"`
	StartDate string    `bson:"start_date" json:"start_date"` // Inclusive, "2006-01-02"
	EndDate   string    `bson:"end_date" json:"end_date"`     // Inclusive, "2006-01-02"
	Reason    string    `bson:"reason" json:"reason"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ValidBlockedReason reports whether reason is one of the known block reasons.
func ValidBlockedReason(reason string) bool {
	switch reason {
	case BlockedReasonMaintenance, BlockedReasonPrivate, BlockedReasonOther:
		return true
	}
	return false
}
