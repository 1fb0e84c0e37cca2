package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"autorent/internal/entities"
	"autorent/internal/service"
)

type CarHandler struct {
	Service *service.FleetService
}

func NewCarHandler(svc *service.FleetService) *CarHandler {
	return &CarHandler{Service: svc}
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.ListCars()
	if err != nil {
		http.Error(w, "Could not list cars", http.StatusInternalServerError)
		return
	}
	if cars == nil {
		cars = []entities.Car{}
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid car id", http.StatusBadRequest)
		return
	}
	car, err := h.Service.Car(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Car not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not get car", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var car entities.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateCar(car)
	if err != nil {
		http.Error(w, "Could not create car", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid car id", http.StatusBadRequest)
		return
	}
	var car entities.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	car.ID = id

	updated, err := h.Service.UpdateCar(car)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Car not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not update car", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid car id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteCar(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Car not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not delete car", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Car deleted"})
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
