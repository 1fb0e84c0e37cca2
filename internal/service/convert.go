package service

import (
	"autorent/internal/db"
	"autorent/internal/entities"
)

func carToAPI(c *db.Car) entities.Car {
	return entities.Car{
		ID:           c.ID,
		Brand:        c.Brand,
		Model:        c.Model,
		Category:     c.Category,
		Color:        c.Color,
		ReleaseYear:  c.ReleaseYear,
		Transmission: c.Transmission,
		Fuel:         c.Fuel,
		Seats:        c.Seats,
		Description:  c.Description,
		PricePerDay:  c.PricePerDay,
		ImageURL:     c.ImageURL,
		Available:    c.Available,
	}
}

func carFromAPI(c entities.Car) db.Car {
	return db.Car{
		ID:           c.ID,
		Brand:        c.Brand,
		Model:        c.Model,
		Category:     c.Category,
		Color:        c.Color,
		ReleaseYear:  c.ReleaseYear,
		Transmission: c.Transmission,
		Fuel:         c.Fuel,
		Seats:        c.Seats,
		Description:  c.Description,
		PricePerDay:  c.PricePerDay,
		ImageURL:     c.ImageURL,
		Available:    c.Available,
	}
}

// userToAPI strips the password hash; it never leaves the server.
func userToAPI(u *db.User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		Role:         u.Role,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		CreatedAt:    u.CreatedAt,
		FavoriteCars: toInts(u.FavoriteCars),
		Reservations: toInts(u.Reservations),
	}
}

func reservationToAPI(r *db.Reservation) entities.Reservation {
	return entities.Reservation{
		ID:              r.ID,
		UserID:          r.UserID,
		CarID:           r.CarID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TotalPrice:      r.TotalPrice,
		Status:          r.Status,
		PickUpLocation:  r.PickUpLocation,
		DropOffLocation: r.DropOffLocation,
		PricePerDay:     r.PricePerDay,
	}
}

func reservationFromAPI(r entities.Reservation) db.Reservation {
	return db.Reservation{
		ID:              r.ID,
		UserID:          r.UserID,
		CarID:           r.CarID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TotalPrice:      r.TotalPrice,
		Status:          r.Status,
		PickUpLocation:  r.PickUpLocation,
		DropOffLocation: r.DropOffLocation,
		PricePerDay:     r.PricePerDay,
	}
}

func toInts(in []int64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func toInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
