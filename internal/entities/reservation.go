package entities

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Reservation books one car for one date interval. Dates and price are
// immutable once created; the only supported change is cancellation,
// which removes the record entirely.
type Reservation struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	CarID           int       `json:"carId"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	TotalPrice      float64   `json:"totalPrice"`
	Status          string    `json:"status"`
	PickUpLocation  string    `json:"pickUpLocation,omitempty"`
	DropOffLocation string    `json:"dropOffLocation,omitempty"`
	PricePerDay     float64   `json:"pricePerDay,omitempty"`
}
