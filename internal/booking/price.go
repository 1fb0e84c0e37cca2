package booking

import (
	"math"
	"time"
)

// RentalDays converts a date interval into whole billable days: the
// duration divided by 24h, rounded up, with a floor of one day. A
// same-day or sub-day interval still bills a full day. This is the only
// pricing rule in the system.
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// TotalPrice computes the deterministic total for renting at pricePerDay
// over [start, end].
func TotalPrice(pricePerDay float64, start, end time.Time) float64 {
	return float64(RentalDays(start, end)) * pricePerDay
}
