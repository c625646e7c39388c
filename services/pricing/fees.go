package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed fee schedule.
var (
	serviceFee      = decimal.RequireFromString("50.00")
	earlyPickupFee  = decimal.RequireFromString("50.00")
	lateReturnFee   = decimal.RequireFromString("50.00")
	parkingPerNight = decimal.RequireFromString("5.00")

	// Delivery fee by distance in kilometres.
	deliveryFees = map[int]decimal.Decimal{
		100: decimal.RequireFromString("20.00"),
		200: decimal.RequireFromString("40.00"),
		300: decimal.RequireFromString("60.00"),
	}
)

// Thresholds for time-based fees.
const (
	earlyPickupHour = 12 // pickups before noon
	lateReturnHour  = 16 // returns at or after 16:00
)

// Fees is the ancillary fee breakdown for a booking. Optional fees are nil
// when not applicable, which is distinct from a zero amount.
type Fees struct {
	ServiceFee     decimal.Decimal
	EarlyPickupFee *decimal.Decimal
	LateReturnFee  *decimal.Decimal
	ParkingFee     *decimal.Decimal
	DeliveryFee    *decimal.Decimal
}

// CalculateFees computes all ancillary fees for a stay.
//
// Precondition: pickup has already been validated by the request layer
// (earliest allowed pickup is 05:00); it is not re-checked here.
func CalculateFees(start, end time.Time, pickup, ret time.Time, useParking bool, deliveryKM int) Fees {
	nights := Nights(start, end)

	fees := Fees{ServiceFee: serviceFee}

	if pickup.Hour() < earlyPickupHour {
		fee := earlyPickupFee
		fees.EarlyPickupFee = &fee
	}
	if ret.Hour() >= lateReturnHour {
		fee := lateReturnFee
		fees.LateReturnFee = &fee
	}
	if useParking {
		fee := parkingPerNight.Mul(decimal.NewFromInt(int64(nights)))
		fees.ParkingFee = &fee
	}
	if fee, ok := deliveryFees[deliveryKM]; ok && deliveryKM != 0 {
		fees.DeliveryFee = &fee
	}
	return fees
}

// Total sums the nightly total and every present fee with exact decimal
// addition. Pure function, no rounding step.
func (f Fees) Total(nightlyTotal decimal.Decimal) decimal.Decimal {
	total := nightlyTotal.Add(f.ServiceFee)
	for _, fee := range []*decimal.Decimal{f.EarlyPickupFee, f.LateReturnFee, f.ParkingFee, f.DeliveryFee} {
		if fee != nil {
			total = total.Add(*fee)
		}
	}
	return total
}
