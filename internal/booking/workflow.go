package booking

import (
	"context"
	"log"

	"autorent/internal/entities"
)

// ReserveStatus tells the caller how a workflow invocation ended when it
// did not fail outright.
type ReserveStatus string

const (
	// StatusCreated: the reservation was persisted and attached to the
	// user's history.
	StatusCreated ReserveStatus = "created"
	// StatusAuthRequired: the caller is a guest; the intent was stored
	// and a redirect to registration was emitted. Re-enter through
	// Resume after authentication.
	StatusAuthRequired ReserveStatus = "auth_required"
)

// ReserveOutcome is the result of a Reserve or Resume invocation.
type ReserveOutcome struct {
	Status      ReserveStatus
	Reservation *entities.Reservation
	Redirect    string
}

// Workflow orchestrates a booking: validate the search context, check
// auth, check availability, price and persist, then update the owner's
// reservation history. State between the guest's booking attempt and
// the post-auth resume lives in the IntentStore.
type Workflow struct {
	intents *IntentStore
	store   ReservationStore
	checker *AvailabilityChecker
	cars    CarSource
	users   UserDirectory
	auth    AuthState
	nav     Navigator
}

func NewWorkflow(intents *IntentStore, store ReservationStore, cars CarSource, users UserDirectory, auth AuthState, nav Navigator) *Workflow {
	return &Workflow{
		intents: intents,
		store:   store,
		checker: NewAvailabilityChecker(store),
		cars:    cars,
		users:   users,
		auth:    auth,
		nav:     nav,
	}
}

// CaptureSearch validates and stores the trip the user is shopping for.
// This is the single place the date invariant is enforced; everything
// downstream trusts the captured payload.
func (w *Workflow) CaptureSearch(payload entities.SearchPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	w.intents.SetSearch(payload)
	return nil
}

// Reserve is the "reserve this car" entry point. Without a captured
// search it fails with ErrMissingSearchContext and the caller should
// send the user back to the search page. For a guest it stores the
// reservation intent, signals a redirect to registration and ends the
// invocation; the flow is re-entered through Resume once a user exists.
func (w *Workflow) Reserve(ctx context.Context, carID int) (*ReserveOutcome, error) {
	search, ok := w.intents.Search()
	if !ok {
		w.nav.GoTo(PathSearch, NavigateOptions{})
		return nil, ErrMissingSearchContext
	}

	user, ok := w.auth.CurrentUser()
	if !ok {
		w.intents.SetIntent(entities.ReservationIntent{Search: search, CarID: carID})
		w.nav.GoTo(PathRegister, NavigateOptions{PreserveState: true})
		return &ReserveOutcome{Status: StatusAuthRequired, Redirect: PathRegister}, nil
	}

	return w.complete(ctx, user, carID, search)
}

// Resume re-enters the workflow after the authentication round-trip,
// using the intent stored by the guest's original attempt. It returns
// ErrNoPendingIntent when there is nothing to resume, including an
// intent captured before a car was picked.
func (w *Workflow) Resume(ctx context.Context) (*ReserveOutcome, error) {
	intent, ok := w.intents.Intent()
	if !ok || intent.CarID == 0 {
		return nil, ErrNoPendingIntent
	}

	user, ok := w.auth.CurrentUser()
	if !ok {
		w.nav.GoTo(PathRegister, NavigateOptions{PreserveState: true})
		return &ReserveOutcome{Status: StatusAuthRequired, Redirect: PathRegister}, nil
	}

	return w.complete(ctx, user, intent.CarID, intent.Search)
}

// complete runs availability check -> price -> persist -> attach. Any
// failure before the intent is cleared leaves it in place for a retry.
func (w *Workflow) complete(ctx context.Context, user entities.User, carID int, search entities.SearchPayload) (*ReserveOutcome, error) {
	car, err := w.resolveCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	if err := w.store.Sync(ctx); err != nil {
		return nil, &PersistenceError{Op: "sync reservations", Err: err}
	}
	if w.checker.HasConflict(carID, search.StartDate, search.EndDate) {
		return nil, ErrConflict
	}

	res := entities.Reservation{
		UserID:          user.ID,
		CarID:           carID,
		StartDate:       search.StartDate,
		EndDate:         search.EndDate,
		TotalPrice:      TotalPrice(car.PricePerDay, search.StartDate, search.EndDate),
		Status:          entities.StatusPending,
		PickUpLocation:  search.PickupLocation,
		DropOffLocation: search.ReturnLocation,
		PricePerDay:     car.PricePerDay,
	}

	id, err := w.store.Append(ctx, res)
	if err != nil {
		return nil, &PersistenceError{Op: "create reservation", Err: err}
	}
	res.ID = id

	w.attachToHistory(ctx, user, id)

	w.intents.ClearIntent()
	w.nav.GoTo(PathReservations, NavigateOptions{})
	return &ReserveOutcome{Status: StatusCreated, Reservation: &res, Redirect: PathReservations}, nil
}

// Cancel removes a reservation and detaches its id from the owner's
// history. Cancelling an id that is already gone is a no-op. There is no
// optimistic removal: the local snapshot only changes on repository
// confirmation.
func (w *Workflow) Cancel(ctx context.Context, reservationID int) error {
	res, ok := w.store.GetByID(reservationID)
	if !ok {
		return nil
	}

	if err := w.store.Remove(ctx, reservationID); err != nil {
		return &PersistenceError{Op: "cancel reservation", Err: err}
	}

	w.detachFromHistory(ctx, res.UserID, reservationID)
	return nil
}

func (w *Workflow) resolveCar(ctx context.Context, carID int) (entities.Car, error) {
	if car, ok := w.cars.GetByID(carID); ok {
		return car, nil
	}
	car, err := w.cars.FetchByID(ctx, carID)
	if err != nil {
		return entities.Car{}, err
	}
	return car, nil
}

// attachToHistory appends the new reservation id to the owner's set. The
// reservation itself is already persisted, so a failed patch is logged
// and does not fail the booking; the history converges on the next
// profile sync.
func (w *Workflow) attachToHistory(ctx context.Context, user entities.User, reservationID int) {
	ids := user.Reservations
	for _, id := range ids {
		if id == reservationID {
			return
		}
	}
	updated := append(append([]int(nil), ids...), reservationID)
	if _, err := w.users.Patch(ctx, user.ID, entities.UserPatch{Reservations: &updated}); err != nil {
		log.Printf("booking: failed to attach reservation %d to user %d: %v", reservationID, user.ID, err)
	}
}

func (w *Workflow) detachFromHistory(ctx context.Context, userID, reservationID int) {
	user, ok := w.users.GetByID(userID)
	if !ok {
		fetched, err := w.users.FetchByID(ctx, userID)
		if err != nil {
			log.Printf("booking: owner %d of cancelled reservation %d not found: %v", userID, reservationID, err)
			return
		}
		w.users.UpsertCached(fetched)
		user = fetched
	}

	updated := make([]int, 0, len(user.Reservations))
	for _, id := range user.Reservations {
		if id != reservationID {
			updated = append(updated, id)
		}
	}
	if _, err := w.users.Patch(ctx, userID, entities.UserPatch{Reservations: &updated}); err != nil {
		log.Printf("booking: failed to detach reservation %d from user %d: %v", reservationID, userID, err)
	}
}
