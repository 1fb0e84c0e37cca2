package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"autorent/internal/auth"
	"autorent/internal/entities"
	"autorent/internal/service"
)

type UserHandler struct {
	Service *service.FleetService
}

func NewUserHandler(svc *service.FleetService) *UserHandler {
	return &UserHandler{Service: svc}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	user, err := h.Service.User(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not get user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// FindUsers answers the ?email= lookup with a list, matching the shape
// the directory clients expect. An empty result is 200 with [].
func (h *UserHandler) FindUsers(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email query parameter required", http.StatusBadRequest)
		return
	}

	user, err := h.Service.UserByEmail(email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, http.StatusOK, []entities.User{})
			return
		}
		http.Error(w, "Could not query users", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, []entities.User{*user})
}

// PatchUser applies a partial update. Callers may only patch themselves
// unless they hold the admin role.
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	callerID, _ := auth.UserID(r.Context())
	role, _ := auth.Role(r.Context())
	if callerID != id && role != entities.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var patch entities.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.PatchUser(id, patch)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not update user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
