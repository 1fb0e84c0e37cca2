package service

import (
	"errors"
	"fmt"
	"log"

	"autorent/internal/db"
	"autorent/internal/entities"
	"autorent/internal/repository"
)

// ErrNotFound mirrors repository.ErrNotFound at the service boundary so
// handlers do not import the repository package.
var ErrNotFound = repository.ErrNotFound

type CarStore interface {
	List() ([]db.Car, error)
	GetByID(id int) (*db.Car, error)
	Create(c *db.Car) error
	Update(c *db.Car) error
	Delete(id int) error
}

type UserStore interface {
	GetByID(id int) (*db.User, error)
	GetByEmail(email string) (*db.User, error)
	UpdateProfile(id int, firstName, lastName, phone *string) error
	SetFavoriteCars(id int, carIDs []int64) error
	SetReservations(id int, reservationIDs []int64) error
}

type ReservationStore interface {
	List() ([]db.Reservation, error)
	ListByUser(userID int) ([]db.Reservation, error)
	GetByID(id int) (*db.Reservation, error)
	Create(res *db.Reservation) error
	Delete(id int) (bool, error)
}

// Notifier fans a reservation event out to the account holder.
type Notifier interface {
	ReservationCreated(user *db.User, res *db.Reservation)
	ReservationCancelled(user *db.User, res *db.Reservation)
}

// FleetService is the server-side API surface: catalog reads and admin
// writes, user lookups and patches, reservation persistence. It does not
// re-check interval overlap on create; the booking client owns that
// check (and the race that comes with it).
type FleetService struct {
	Cars         CarStore
	Users        UserStore
	Reservations ReservationStore
	Notify       Notifier
}

func NewFleetService(cars CarStore, users UserStore, reservations ReservationStore, notify Notifier) *FleetService {
	return &FleetService{Cars: cars, Users: users, Reservations: reservations, Notify: notify}
}

func (s *FleetService) ListCars() ([]entities.Car, error) {
	rows, err := s.Cars.List()
	if err != nil {
		return nil, err
	}
	cars := make([]entities.Car, len(rows))
	for i := range rows {
		cars[i] = carToAPI(&rows[i])
	}
	return cars, nil
}

func (s *FleetService) Car(id int) (*entities.Car, error) {
	row, err := s.Cars.GetByID(id)
	if err != nil {
		return nil, err
	}
	car := carToAPI(row)
	return &car, nil
}

func (s *FleetService) CreateCar(car entities.Car) (*entities.Car, error) {
	row := carFromAPI(car)
	if err := s.Cars.Create(&row); err != nil {
		return nil, err
	}
	created := carToAPI(&row)
	return &created, nil
}

func (s *FleetService) UpdateCar(car entities.Car) (*entities.Car, error) {
	row := carFromAPI(car)
	if err := s.Cars.Update(&row); err != nil {
		return nil, err
	}
	updated := carToAPI(&row)
	return &updated, nil
}

func (s *FleetService) DeleteCar(id int) error {
	return s.Cars.Delete(id)
}

func (s *FleetService) User(id int) (*entities.User, error) {
	row, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	user := userToAPI(row)
	return &user, nil
}

func (s *FleetService) UserByEmail(email string) (*entities.User, error) {
	row, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	user := userToAPI(row)
	return &user, nil
}

// PatchUser applies the non-nil fields of the patch and returns the
// fresh record. Relation sets are replaced whole.
func (s *FleetService) PatchUser(id int, patch entities.UserPatch) (*entities.User, error) {
	if patch.FirstName != nil || patch.LastName != nil || patch.Phone != nil {
		if err := s.Users.UpdateProfile(id, patch.FirstName, patch.LastName, patch.Phone); err != nil {
			return nil, err
		}
	}
	if patch.FavoriteCars != nil {
		if err := s.Users.SetFavoriteCars(id, toInt64s(*patch.FavoriteCars)); err != nil {
			return nil, err
		}
	}
	if patch.Reservations != nil {
		if err := s.Users.SetReservations(id, toInt64s(*patch.Reservations)); err != nil {
			return nil, err
		}
	}
	return s.User(id)
}

func (s *FleetService) ListReservations(userID int) ([]entities.Reservation, error) {
	var rows []db.Reservation
	var err error
	if userID > 0 {
		rows, err = s.Reservations.ListByUser(userID)
	} else {
		rows, err = s.Reservations.List()
	}
	if err != nil {
		return nil, err
	}
	reservations := make([]entities.Reservation, len(rows))
	for i := range rows {
		reservations[i] = reservationToAPI(&rows[i])
	}
	return reservations, nil
}

func (s *FleetService) CreateReservation(res entities.Reservation) (*entities.Reservation, error) {
	if res.UserID == 0 || res.CarID == 0 {
		return nil, fmt.Errorf("reservation requires userId and carId")
	}
	if !res.EndDate.After(res.StartDate) {
		return nil, fmt.Errorf("endDate must be after startDate")
	}
	if res.Status == "" {
		res.Status = entities.StatusPending
	}

	row := reservationFromAPI(res)
	if err := s.Reservations.Create(&row); err != nil {
		return nil, err
	}

	s.notifyAsync(row.UserID, &row, true)

	created := reservationToAPI(&row)
	return &created, nil
}

// CancelReservation deletes the row. A second cancel of the same id
// reports existed=false and no error.
func (s *FleetService) CancelReservation(id int) (bool, error) {
	row, err := s.Reservations.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existed, err := s.Reservations.Delete(id)
	if err != nil {
		return false, err
	}
	if existed {
		s.notifyAsync(row.UserID, row, false)
	}
	return existed, nil
}

// notifyAsync looks the owner up and fires the notification without
// blocking the request; a failed lookup only costs the message.
func (s *FleetService) notifyAsync(userID int, res *db.Reservation, created bool) {
	if s.Notify == nil {
		return
	}
	user, err := s.Users.GetByID(userID)
	if err != nil {
		log.Printf("notify: owner %d of reservation %d not found: %v", userID, res.ID, err)
		return
	}
	resCopy := *res
	go func() {
		if created {
			s.Notify.ReservationCreated(user, &resCopy)
		} else {
			s.Notify.ReservationCancelled(user, &resCopy)
		}
	}()
}
