package booking

import (
	"context"
	"fmt"
	"time"

	"autorent/internal/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeStore is an in-memory ReservationStore with injectable failures.
type fakeStore struct {
	items     []entities.Reservation
	nextID    int
	syncErr   error
	appendErr error
	removeErr error
	syncCalls int
}

func newFakeStore(seed ...entities.Reservation) *fakeStore {
	s := &fakeStore{items: seed, nextID: 100}
	for _, res := range seed {
		if res.ID >= s.nextID {
			s.nextID = res.ID + 1
		}
	}
	return s
}

func (s *fakeStore) List() []entities.Reservation {
	return append([]entities.Reservation(nil), s.items...)
}

func (s *fakeStore) GetByID(id int) (entities.Reservation, bool) {
	for _, res := range s.items {
		if res.ID == id {
			return res, true
		}
	}
	return entities.Reservation{}, false
}

func (s *fakeStore) Sync(context.Context) error {
	s.syncCalls++
	return s.syncErr
}

func (s *fakeStore) Append(_ context.Context, res entities.Reservation) (int, error) {
	if s.appendErr != nil {
		return 0, s.appendErr
	}
	res.ID = s.nextID
	s.nextID++
	s.items = append(s.items, res)
	return res.ID, nil
}

func (s *fakeStore) Remove(_ context.Context, id int) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	kept := s.items[:0]
	for _, res := range s.items {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	s.items = kept
	return nil
}

// fakeCars serves cars from a cached and a remote set.
type fakeCars struct {
	cached map[int]entities.Car
	remote map[int]entities.Car
}

func (c *fakeCars) GetByID(id int) (entities.Car, bool) {
	car, ok := c.cached[id]
	return car, ok
}

func (c *fakeCars) FetchByID(_ context.Context, id int) (entities.Car, error) {
	car, ok := c.remote[id]
	if !ok {
		return entities.Car{}, fmt.Errorf("car %d: %w", id, ErrNotFound)
	}
	return car, nil
}

// fakeUsers is a stateful UserDirectory: a cache in front of a remote
// map, with Patch applying to the remote and confirming into the cache
// unless patchErr is set.
type fakeUsers struct {
	cache    map[int]entities.User
	remote   map[int]entities.User
	patchErr error
	patches  []entities.UserPatch
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		cache:  make(map[int]entities.User),
		remote: make(map[int]entities.User),
	}
}

func (u *fakeUsers) GetByID(id int) (entities.User, bool) {
	user, ok := u.cache[id]
	if !ok {
		return entities.User{}, false
	}
	return user.Clone(), true
}

func (u *fakeUsers) FetchByID(_ context.Context, id int) (entities.User, error) {
	user, ok := u.remote[id]
	if !ok {
		return entities.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user.Clone(), nil
}

func (u *fakeUsers) UpsertCached(user entities.User) {
	u.cache[user.ID] = user.Clone()
}

func (u *fakeUsers) Patch(_ context.Context, id int, patch entities.UserPatch) (entities.User, error) {
	if u.patchErr != nil {
		return entities.User{}, u.patchErr
	}
	user, ok := u.remote[id]
	if !ok {
		return entities.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if patch.FavoriteCars != nil {
		user.FavoriteCars = append([]int(nil), *patch.FavoriteCars...)
	}
	if patch.Reservations != nil {
		user.Reservations = append([]int(nil), *patch.Reservations...)
	}
	u.remote[id] = user
	u.cache[id] = user.Clone()
	u.patches = append(u.patches, patch)
	return user.Clone(), nil
}

// fakeAuth reports a fixed current user, or none.
type fakeAuth struct {
	user *entities.User
}

func (a *fakeAuth) IsAuthenticated() bool {
	return a.user != nil
}

func (a *fakeAuth) CurrentUser() (entities.User, bool) {
	if a.user == nil {
		return entities.User{}, false
	}
	return a.user.Clone(), true
}

type navCall struct {
	path string
	opts NavigateOptions
}

type fakeNav struct {
	calls []navCall
}

func (n *fakeNav) GoTo(path string, opts NavigateOptions) {
	n.calls = append(n.calls, navCall{path: path, opts: opts})
}

func (n *fakeNav) last() (navCall, bool) {
	if len(n.calls) == 0 {
		return navCall{}, false
	}
	return n.calls[len(n.calls)-1], true
}
