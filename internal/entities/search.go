package entities

import (
	"fmt"
	"time"
)

// SearchPayload is the trip the guest is shopping for: where the car is
// picked up and returned, and over which dates.
type SearchPayload struct {
	PickupLocation string    `json:"pickupLocation"`
	ReturnLocation string    `json:"returnLocation"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
}

// Validate enforces the capture-time invariant: when both dates are set,
// the return date must be strictly after the pickup date. Downstream
// components trust a captured payload and do not re-validate.
func (p SearchPayload) Validate() error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return nil
	}
	if !p.EndDate.After(p.StartDate) {
		return fmt.Errorf("return date %s must be after pickup date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}

// ReservationIntent is the provisional booking kept while a guest goes
// through registration or login. CarID zero means the guest had not yet
// picked a car.
type ReservationIntent struct {
	Search SearchPayload `json:"search"`
	CarID  int           `json:"carId,omitempty"`
}
