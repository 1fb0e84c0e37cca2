package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"autorent/internal/db"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

const reservationColumns = `id, user_id, car_id, start_date, end_date, total_price, status, pick_up_location, drop_off_location, price_per_day, created_at`

func scanReservation(row interface{ Scan(...interface{}) error }, res *db.Reservation) error {
	return row.Scan(
		&res.ID, &res.UserID, &res.CarID, &res.StartDate, &res.EndDate,
		&res.TotalPrice, &res.Status, &res.PickUpLocation, &res.DropOffLocation,
		&res.PricePerDay, &res.CreatedAt,
	)
}

func (r *ReservationRepository) List() ([]db.Reservation, error) {
	return r.query(`SELECT ` + reservationColumns + ` FROM reservations ORDER BY id`)
}

func (r *ReservationRepository) ListByUser(userID int) ([]db.Reservation, error) {
	return r.query(`SELECT `+reservationColumns+` FROM reservations WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *ReservationRepository) query(q string, args ...interface{}) ([]db.Reservation, error) {
	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepository) GetByID(id int) (*db.Reservation, error) {
	var res db.Reservation
	err := scanReservation(r.DB.QueryRow(`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id), &res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying reservation %d: %w", id, err)
	}
	return &res, nil
}

// Create inserts the reservation and assigns its id. Interval overlap is
// checked by the booking client before it submits; there is no exclusion
// constraint here, so two sessions racing past each other's check can
// both insert. An EXCLUDE USING gist constraint on (car_id, daterange)
// is the hardening point if that ever stops being acceptable.
func (r *ReservationRepository) Create(res *db.Reservation) error {
	query := `
		INSERT INTO reservations (user_id, car_id, start_date, end_date, total_price, status, pick_up_location, drop_off_location, price_per_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	return r.DB.QueryRow(query,
		res.UserID, res.CarID, res.StartDate, res.EndDate, res.TotalPrice,
		res.Status, res.PickUpLocation, res.DropOffLocation, res.PricePerDay,
	).Scan(&res.ID, &res.CreatedAt)
}

// Delete removes the row and reports whether it existed. Callers treat a
// missing row as already-cancelled rather than an error.
func (r *ReservationRepository) Delete(id int) (bool, error) {
	result, err := r.DB.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting reservation %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteCancelled sweeps rows with status 'cancelled'. The booking
// client deletes on cancel, so in steady state this finds nothing; it
// exists to keep "cancelled means physically absent" true when some
// other writer only flips the status.
func (r *ReservationRepository) DeleteCancelled() (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM reservations WHERE status = $1`, "cancelled")
	if err != nil {
		return 0, fmt.Errorf("error sweeping cancelled reservations: %w", err)
	}
	return result.RowsAffected()
}
