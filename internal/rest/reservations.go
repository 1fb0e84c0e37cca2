package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"autorent/internal/booking"
	"autorent/internal/entities"
)

// ReservationClient is the snapshot-backed reservation store: reads are
// served from the latest synced snapshot, mutations go to the fleet API
// and fold the confirmed result back in. Snapshot replacement is always
// whole-value, never in-place. Implements booking.ReservationStore.
type ReservationClient struct {
	client *Client

	mu       sync.RWMutex
	snapshot []entities.Reservation
}

func NewReservationClient(client *Client) *ReservationClient {
	return &ReservationClient{client: client}
}

// Sync replaces the snapshot with the remote collection.
func (c *ReservationClient) Sync(ctx context.Context) error {
	var reservations []entities.Reservation
	if err := c.client.do(ctx, http.MethodGet, "/api/reservations", nil, nil, &reservations); err != nil {
		return err
	}
	c.mu.Lock()
	c.snapshot = reservations
	c.mu.Unlock()
	return nil
}

// List returns a copy of the current snapshot.
func (c *ReservationClient) List() []entities.Reservation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entities.Reservation(nil), c.snapshot...)
}

// GetByID looks a reservation up in the snapshot.
func (c *ReservationClient) GetByID(id int) (entities.Reservation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, res := range c.snapshot {
		if res.ID == id {
			return res, true
		}
	}
	return entities.Reservation{}, false
}

// ListByUser fetches one user's reservations from the fleet API.
func (c *ReservationClient) ListByUser(ctx context.Context, userID int) ([]entities.Reservation, error) {
	query := url.Values{"userId": []string{strconv.Itoa(userID)}}
	var reservations []entities.Reservation
	if err := c.client.do(ctx, http.MethodGet, "/api/reservations", query, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Append persists a new reservation and returns its assigned id. The
// snapshot only gains the record once the server has confirmed it.
func (c *ReservationClient) Append(ctx context.Context, res entities.Reservation) (int, error) {
	var created entities.Reservation
	if err := c.client.do(ctx, http.MethodPost, "/api/reservations", nil, res, &created); err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.snapshot = append(append([]entities.Reservation(nil), c.snapshot...), created)
	c.mu.Unlock()
	return created.ID, nil
}

// Remove deletes a reservation. Deleting an id the server no longer has
// counts as success, which makes cancellation idempotent end to end.
func (c *ReservationClient) Remove(ctx context.Context, id int) error {
	err := c.client.do(ctx, http.MethodDelete, "/api/reservations/"+strconv.Itoa(id), nil, nil, nil)
	if err != nil && !errors.Is(err, booking.ErrNotFound) {
		return err
	}

	c.mu.Lock()
	updated := make([]entities.Reservation, 0, len(c.snapshot))
	for _, res := range c.snapshot {
		if res.ID != id {
			updated = append(updated, res)
		}
	}
	c.snapshot = updated
	c.mu.Unlock()
	return nil
}
