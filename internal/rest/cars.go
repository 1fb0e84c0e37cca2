package rest

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"autorent/internal/entities"
)

// CarClient keeps a snapshot of the fleet catalog and serves cached
// lookups from it. Implements booking.CarSource.
type CarClient struct {
	client *Client

	mu   sync.RWMutex
	cars []entities.Car
}

func NewCarClient(client *Client) *CarClient {
	return &CarClient{client: client}
}

// Sync replaces the snapshot with the remote catalog.
func (c *CarClient) Sync(ctx context.Context) error {
	var cars []entities.Car
	if err := c.client.do(ctx, http.MethodGet, "/api/cars", nil, nil, &cars); err != nil {
		return err
	}
	c.mu.Lock()
	c.cars = cars
	c.mu.Unlock()
	return nil
}

// List returns a copy of the snapshot.
func (c *CarClient) List() []entities.Car {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entities.Car(nil), c.cars...)
}

// Available returns the snapshot cars that can be booked.
func (c *CarClient) Available() []entities.Car {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []entities.Car
	for _, car := range c.cars {
		if car.Available {
			out = append(out, car)
		}
	}
	return out
}

// GetByID looks the car up in the snapshot.
func (c *CarClient) GetByID(id int) (entities.Car, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, car := range c.cars {
		if car.ID == id {
			return car, true
		}
	}
	return entities.Car{}, false
}

// FetchByID fetches the car from the catalog and folds it into the
// snapshot.
func (c *CarClient) FetchByID(ctx context.Context, id int) (entities.Car, error) {
	var car entities.Car
	if err := c.client.do(ctx, http.MethodGet, carPath(id), nil, nil, &car); err != nil {
		return entities.Car{}, err
	}

	c.mu.Lock()
	replaced := false
	updated := make([]entities.Car, len(c.cars))
	for i, existing := range c.cars {
		if existing.ID == car.ID {
			updated[i] = car
			replaced = true
		} else {
			updated[i] = existing
		}
	}
	if !replaced {
		updated = append(updated, car)
	}
	c.cars = updated
	c.mu.Unlock()

	return car, nil
}

func carPath(id int) string {
	return "/api/cars/" + strconv.Itoa(id)
}
