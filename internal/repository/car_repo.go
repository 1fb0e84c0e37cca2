package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"autorent/internal/db"
)

type CarRepository struct {
	DB *sql.DB
}

func NewCarRepository(database *sql.DB) *CarRepository {
	return &CarRepository{DB: database}
}

const carColumns = `id, brand, model, category, color, release_year, transmission, fuel, seats, description, price_per_day, image_url, available`

func scanCar(row interface{ Scan(...interface{}) error }, c *db.Car) error {
	return row.Scan(
		&c.ID, &c.Brand, &c.Model, &c.Category, &c.Color, &c.ReleaseYear,
		&c.Transmission, &c.Fuel, &c.Seats, &c.Description, &c.PricePerDay,
		&c.ImageURL, &c.Available,
	)
}

func (r *CarRepository) List() ([]db.Car, error) {
	rows, err := r.DB.Query(`SELECT ` + carColumns + ` FROM cars ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying cars: %w", err)
	}
	defer rows.Close()

	var cars []db.Car
	for rows.Next() {
		var c db.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, fmt.Errorf("error scanning car: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *CarRepository) GetByID(id int) (*db.Car, error) {
	var c db.Car
	err := scanCar(r.DB.QueryRow(`SELECT `+carColumns+` FROM cars WHERE id = $1`, id), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying car %d: %w", id, err)
	}
	return &c, nil
}

func (r *CarRepository) Create(c *db.Car) error {
	query := `
		INSERT INTO cars (brand, model, category, color, release_year, transmission, fuel, seats, description, price_per_day, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	return r.DB.QueryRow(query,
		c.Brand, c.Model, c.Category, c.Color, c.ReleaseYear, c.Transmission,
		c.Fuel, c.Seats, c.Description, c.PricePerDay, c.ImageURL, c.Available,
	).Scan(&c.ID)
}

func (r *CarRepository) Update(c *db.Car) error {
	query := `
		UPDATE cars
		SET brand = $2, model = $3, category = $4, color = $5, release_year = $6,
		    transmission = $7, fuel = $8, seats = $9, description = $10,
		    price_per_day = $11, image_url = $12, available = $13
		WHERE id = $1`
	result, err := r.DB.Exec(query,
		c.ID, c.Brand, c.Model, c.Category, c.Color, c.ReleaseYear, c.Transmission,
		c.Fuel, c.Seats, c.Description, c.PricePerDay, c.ImageURL, c.Available,
	)
	if err != nil {
		return fmt.Errorf("error updating car %d: %w", c.ID, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CarRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting car %d: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
