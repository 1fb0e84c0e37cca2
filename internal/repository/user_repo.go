package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"autorent/internal/db"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

const userColumns = `id, email, username, password_hash, role, first_name, last_name, phone, created_at, favorite_cars, reservations`

func scanUser(row interface{ Scan(...interface{}) error }, u *db.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Role,
		&u.FirstName, &u.LastName, &u.Phone, &u.CreatedAt,
		pq.Array(&u.FavoriteCars), pq.Array(&u.Reservations),
	)
}

func (r *UserRepository) GetByID(id int) (*db.User, error) {
	var u db.User
	err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id), &u)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying user %d: %w", id, err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*db.User, error) {
	var u db.User
	err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email), &u)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(u *db.User) error {
	query := `
		INSERT INTO users (email, username, password_hash, role, first_name, last_name, phone, favorite_cars, reservations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	return r.DB.QueryRow(query,
		u.Email, u.Username, u.PasswordHash, u.Role, u.FirstName, u.LastName, u.Phone,
		pq.Array(u.FavoriteCars), pq.Array(u.Reservations),
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepository) UpdateProfile(id int, firstName, lastName, phone *string) error {
	query := `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
		    last_name  = COALESCE($3, last_name),
		    phone      = COALESCE($4, phone)
		WHERE id = $1`
	result, err := r.DB.Exec(query, id, firstName, lastName, phone)
	if err != nil {
		return fmt.Errorf("error updating user %d profile: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetFavoriteCars(id int, carIDs []int64) error {
	return r.setRelation(id, "favorite_cars", carIDs)
}

func (r *UserRepository) SetReservations(id int, reservationIDs []int64) error {
	return r.setRelation(id, "reservations", reservationIDs)
}

// setRelation replaces a whole id-set column. Replace-whole-value keeps
// the column consistent with the client's copy-on-write discipline.
func (r *UserRepository) setRelation(id int, column string, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	query := fmt.Sprintf(`UPDATE users SET %s = $2 WHERE id = $1`, column)
	result, err := r.DB.Exec(query, id, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating user %d %s: %w", id, column, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
