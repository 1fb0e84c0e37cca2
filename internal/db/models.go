package db

import "time"

// Row types as stored in Postgres. FavoriteCars and Reservations live in
// integer[] columns and scan through pq.Array, hence int64.

type Car struct {
	ID           int
	Brand        string
	Model        string
	Category     string
	Color        string
	ReleaseYear  int
	Transmission string
	Fuel         string
	Seats        int
	Description  string
	PricePerDay  float64
	ImageURL     string
	Available    bool
}

type User struct {
	ID           int
	Email        string
	Username     string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	Phone        string
	CreatedAt    time.Time
	FavoriteCars []int64
	Reservations []int64
}

type Reservation struct {
	ID              int
	UserID          int
	CarID           int
	StartDate       time.Time
	EndDate         time.Time
	TotalPrice      float64
	Status          string
	PickUpLocation  string
	DropOffLocation string
	PricePerDay     float64
	CreatedAt       time.Time
}
