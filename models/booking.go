package models

import "time"

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Delivery distances offered, in kilometres. Zero means no delivery.
var DeliveryDistances = []int{0, 100, 200, 300}

// Booking represents a camper van reservation with its price snapshot.
// The end date is the checkout day: it is never charged a nightly rate,
// but it does count for availability conflicts. Monetary fields are
// decimal strings with two places; optional fees are empty when not
// applicable, which is distinct from "0.00".
type Booking struct {
	ID        string `bson:"id" json:"id"`
	StartDate string `bson:"start_date" json:"start_date"` // "2006-01-02"
	EndDate   string `bson:"end_date" json:"end_date"`     // Checkout day, "2006-01-02"

	PickupTime string `bson:"pickup_time" json:"pickup_time"` // "15:04"
	ReturnTime string `bson:"return_time" json:"return_time"` // "15:04"

	Status     string `bson:"status" json:"status"`
	CustomerID string `bson:"customer_id" json:"customer_id"`

	// Price snapshot, fixed at creation time. Later pricing rule changes
	// never retroactively affect a stored booking.
	NightlyRatesBreakdown map[string]string `bson:"nightly_rates_breakdown" json:"nightly_rates_breakdown"`
	NightlyRatesTotal     string            `bson:"nightly_rates_total" json:"nightly_rates_total"`
	ServiceFee            string            `bson:"service_fee" json:"service_fee"`
	EarlyPickupFee        string            `bson:"early_pickup_fee,omitempty" json:"early_pickup_fee,omitempty"`
	LateReturnFee         string            `bson:"late_return_fee,omitempty" json:"late_return_fee,omitempty"`
	ParkingFee            string            `bson:"parking_fee,omitempty" json:"parking_fee,omitempty"`
	DeliveryFee           string            `bson:"delivery_fee,omitempty" json:"delivery_fee,omitempty"`
	TotalPrice            string            `bson:"total_price" json:"total_price"`

	// Service options.
	Parking          bool `bson:"parking" json:"parking"`
	DeliveryDistance int  `bson:"delivery_distance" json:"delivery_distance"`

	// Driver's license upload.
	DriversLicenseID       string     `bson:"drivers_license_id,omitempty" json:"drivers_license_id,omitempty"`
	DriversLicenseFilename string     `bson:"drivers_license_filename,omitempty" json:"drivers_license_filename,omitempty"`
	DriversLicenseUploaded *time.Time `bson:"drivers_license_uploaded_at,omitempty" json:"drivers_license_uploaded_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CanTransitionTo reports whether a status change is allowed.
// pending -> confirmed or cancelled, confirmed -> completed or cancelled;
// completed and cancelled are terminal.
func CanTransitionTo(current, next string) bool {
	switch current {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidDeliveryDistance reports whether km is an offered delivery distance.
func ValidDeliveryDistance(km int) bool {
	for _, d := range DeliveryDistances {
		if d == km {
			return true
		}
	}
	return false
}
