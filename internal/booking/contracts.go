// Package booking implements the reservation workflow: search and
// booking intent kept across an authentication detour, interval-overlap
// availability checks, deterministic pricing, and the optimistic
// favorites toggle. It performs no I/O of its own; every remote concern
// comes in through the collaborator contracts below.
package booking

import (
	"context"

	"autorent/internal/entities"
)

// CarSource is the fleet catalog as seen by the workflow. GetByID reads
// the local snapshot; FetchByID goes to the remote catalog and fails
// with ErrNotFound when the car does not exist.
type CarSource interface {
	GetByID(id int) (entities.Car, bool)
	FetchByID(ctx context.Context, id int) (entities.Car, error)
}

// UserDirectory is the account store. GetByID reads the local cache,
// FetchByID goes remote, UpsertCached inserts a fetched record into the
// cache, and Patch applies a partial update remotely, updating the cache
// only with the server-confirmed record.
type UserDirectory interface {
	GetByID(id int) (entities.User, bool)
	FetchByID(ctx context.Context, id int) (entities.User, error)
	UpsertCached(user entities.User)
	Patch(ctx context.Context, id int, patch entities.UserPatch) (entities.User, error)
}

// AuthState reports who, if anyone, is signed in.
type AuthState interface {
	IsAuthenticated() bool
	CurrentUser() (entities.User, bool)
}

// NavigateOptions qualifies a navigation signal. PreserveState asks the
// UI layer to keep the current target path for a post-auth redirect.
type NavigateOptions struct {
	PreserveState bool
}

// Navigator receives navigation signals from the workflow. The UI layer
// performs the actual transition; the core only emits the request.
type Navigator interface {
	GoTo(path string, opts NavigateOptions)
}

// ReservationStore is the durable reservation collection. List and
// GetByID read the latest synced snapshot; Sync refreshes it; Append and
// Remove mutate the remote collection and resynchronize the snapshot on
// success. Remove of an absent id is a no-op, not an error.
type ReservationStore interface {
	List() []entities.Reservation
	GetByID(id int) (entities.Reservation, bool)
	Sync(ctx context.Context) error
	Append(ctx context.Context, res entities.Reservation) (int, error)
	Remove(ctx context.Context, id int) error
}

// Paths the workflow navigates to. The hosting UI maps them onto its
// actual routes.
const (
	PathSearch       = "/search"
	PathRegister     = "/register"
	PathLogin        = "/login"
	PathReservations = "/reservations"
)
