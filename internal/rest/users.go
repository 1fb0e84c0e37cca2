package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"autorent/internal/entities"
)

// UserClient caches user records keyed by id and applies partial updates
// through the fleet API. The cache is only ever replaced with
// server-confirmed records, which is what lets the favorites toggle roll
// back for free on a failed patch. Implements booking.UserDirectory.
type UserClient struct {
	client *Client

	mu    sync.RWMutex
	users map[int]entities.User
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client, users: make(map[int]entities.User)}
}

// GetByID returns the cached record, cloned so callers cannot reach into
// the cache's slices.
func (c *UserClient) GetByID(id int) (entities.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	user, ok := c.users[id]
	if !ok {
		return entities.User{}, false
	}
	return user.Clone(), true
}

// FetchByID fetches the record from the fleet API. The caller decides
// whether to fold it into the cache via UpsertCached.
func (c *UserClient) FetchByID(ctx context.Context, id int) (entities.User, error) {
	var user entities.User
	if err := c.client.do(ctx, http.MethodGet, userPath(id), nil, nil, &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// FindByEmail queries the directory by email address.
func (c *UserClient) FindByEmail(ctx context.Context, email string) (entities.User, error) {
	query := url.Values{"email": []string{email}}
	var users []entities.User
	if err := c.client.do(ctx, http.MethodGet, "/api/users", query, nil, &users); err != nil {
		return entities.User{}, err
	}
	if len(users) == 0 {
		return entities.User{}, nil
	}
	return users[0], nil
}

// UpsertCached inserts or replaces a record in the cache.
func (c *UserClient) UpsertCached(user entities.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[user.ID] = user.Clone()
}

// Patch applies a partial update remotely and, on success, replaces the
// cached record with the server-confirmed one. A failed patch leaves the
// cache untouched.
func (c *UserClient) Patch(ctx context.Context, id int, patch entities.UserPatch) (entities.User, error) {
	var updated entities.User
	if err := c.client.do(ctx, http.MethodPatch, userPath(id), nil, patch, &updated); err != nil {
		return entities.User{}, err
	}
	c.UpsertCached(updated)
	return updated, nil
}

// DropCached removes a record from the cache, e.g. on logout.
func (c *UserClient) DropCached(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, id)
}

func userPath(id int) string {
	return "/api/users/" + strconv.Itoa(id)
}
