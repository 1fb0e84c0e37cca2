package booking

import (
	"time"

	"autorent/internal/entities"
)

// ReservationLister is the read-only slice of ReservationStore the
// checker needs.
type ReservationLister interface {
	List() []entities.Reservation
}

// AvailabilityChecker decides whether a car already has a reservation
// overlapping a requested interval. It is a pure scan over the store's
// current snapshot; fleets are small enough that no index is worth it.
type AvailabilityChecker struct {
	store ReservationLister
}

func NewAvailabilityChecker(store ReservationLister) *AvailabilityChecker {
	return &AvailabilityChecker{store: store}
}

// HasConflict reports whether any reservation for carID overlaps
// [start, end]. Endpoints count as overlapping: a reservation ending the
// day another starts is a conflict, so same-day handover is disallowed.
// Status is not filtered; cancelled reservations are deleted from the
// store, never flagged.
func (c *AvailabilityChecker) HasConflict(carID int, start, end time.Time) bool {
	for _, res := range c.store.List() {
		if res.CarID != carID {
			continue
		}
		if overlaps(res.StartDate, res.EndDate, start, end) {
			return true
		}
	}
	return false
}

// overlaps implements the closed-interval rule: [s1,e1] and [s2,e2]
// conflict iff s1 <= e2 && s2 <= e1.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}
