package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"autorent/internal/entities"
)

// ReservationAPI is the slice of the fleet service these handlers use;
// an interface so tests can stand in a fake.
type ReservationAPI interface {
	ListReservations(userID int) ([]entities.Reservation, error)
	CreateReservation(res entities.Reservation) (*entities.Reservation, error)
	CancelReservation(id int) (bool, error)
}

type ReservationHandler struct {
	Service ReservationAPI
}

func NewReservationHandler(svc ReservationAPI) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// ListReservations returns the collection, optionally filtered with
// ?userId=.
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	userID := 0
	if raw := r.URL.Query().Get("userId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid userId", http.StatusBadRequest)
			return
		}
		userID = parsed
	}

	reservations, err := h.Service.ListReservations(userID)
	if err != nil {
		http.Error(w, "Could not list reservations", http.StatusInternalServerError)
		return
	}
	if reservations == nil {
		reservations = []entities.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}

// CreateReservation persists the record the booking client submits.
// There is deliberately no overlap re-check here; the client checks
// against its snapshot before posting.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var res entities.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateReservation(res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteReservation cancels by removal. Deleting an id that is already
// gone answers 404; clients treat that as success.
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid reservation id", http.StatusBadRequest)
		return
	}

	existed, err := h.Service.CancelReservation(id)
	if err != nil {
		http.Error(w, "Could not cancel reservation", http.StatusInternalServerError)
		return
	}
	if !existed {
		http.Error(w, "Reservation not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation cancelled"})
}
