package models

// QuoteRequest is the input for a price quote or a new booking's pricing.
type QuoteRequest struct {
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          string `json:"end_date" binding:"required"`
	PickupTime       string `json:"pickup_time" binding:"required"`
	ReturnTime       string `json:"return_time" binding:"required"`
	Parking          bool   `json:"parking"`
	DeliveryDistance int    `json:"delivery_distance"`
}

// PriceBreakdown is the full quote result. Optional fees are empty strings
// when not applicable and are omitted from JSON, never rendered as "0.00".
type PriceBreakdown struct {
	DailyBreakdown    map[string]string `json:"daily_breakdown"`
	NightlyRatesTotal string            `json:"nightly_rates_total"`
	ServiceFee        string            `json:"service_fee"`
	EarlyPickupFee    string            `json:"early_pickup_fee,omitempty"`
	LateReturnFee     string            `json:"late_return_fee,omitempty"`
	ParkingFee        string            `json:"parking_fee,omitempty"`
	DeliveryFee       string            `json:"delivery_fee,omitempty"`
	TotalPrice        string            `json:"total_price"`
}

// Availability is the result of a date-range availability check.
type Availability struct {
	Available        bool     `json:"is_available"`
	ConflictingDates []string `json:"conflicting_dates"`
}
