package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorent/internal/db"
	"autorent/internal/entities"
	"autorent/internal/repository"
)

type fakeReservationStore struct {
	items  map[int]*db.Reservation
	nextID int
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{items: make(map[int]*db.Reservation), nextID: 1}
}

func (s *fakeReservationStore) List() ([]db.Reservation, error) {
	var out []db.Reservation
	for _, res := range s.items {
		out = append(out, *res)
	}
	return out, nil
}

func (s *fakeReservationStore) ListByUser(userID int) ([]db.Reservation, error) {
	var out []db.Reservation
	for _, res := range s.items {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (s *fakeReservationStore) GetByID(id int) (*db.Reservation, error) {
	res, ok := s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return res, nil
}

func (s *fakeReservationStore) Create(res *db.Reservation) error {
	res.ID = s.nextID
	s.nextID++
	res.CreatedAt = time.Now().UTC()
	stored := *res
	s.items[res.ID] = &stored
	return nil
}

func (s *fakeReservationStore) Delete(id int) (bool, error) {
	_, ok := s.items[id]
	delete(s.items, id)
	return ok, nil
}

type fakeUserStore struct {
	users map[int]*db.User
}

func (s *fakeUserStore) GetByID(id int) (*db.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (s *fakeUserStore) GetByEmail(string) (*db.User, error) { return nil, repository.ErrNotFound }

func (s *fakeUserStore) UpdateProfile(id int, firstName, lastName, phone *string) error {
	user, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if phone != nil {
		user.Phone = *phone
	}
	return nil
}

func (s *fakeUserStore) SetFavoriteCars(id int, carIDs []int64) error {
	user, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.FavoriteCars = carIDs
	return nil
}

func (s *fakeUserStore) SetReservations(id int, reservationIDs []int64) error {
	user, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Reservations = reservationIDs
	return nil
}

// recordingNotifier records events; done is signalled per call so tests
// can wait out the notify goroutine.
type recordingNotifier struct {
	mu        sync.Mutex
	created   []int
	cancelled []int
	done      chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 4)}
}

func (n *recordingNotifier) ReservationCreated(_ *db.User, res *db.Reservation) {
	n.mu.Lock()
	n.created = append(n.created, res.ID)
	n.mu.Unlock()
	n.done <- struct{}{}
}

func (n *recordingNotifier) ReservationCancelled(_ *db.User, res *db.Reservation) {
	n.mu.Lock()
	n.cancelled = append(n.cancelled, res.ID)
	n.mu.Unlock()
	n.done <- struct{}{}
}

func (n *recordingNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func newFleetFixture() (*FleetService, *fakeReservationStore, *recordingNotifier) {
	reservations := newFakeReservationStore()
	users := &fakeUserStore{users: map[int]*db.User{
		42: {ID: 42, Email: "rider@example.com", FirstName: "Rider"},
	}}
	notifier := newRecordingNotifier()
	return NewFleetService(nil, users, reservations, notifier), reservations, notifier
}

func TestCreateReservationDefaultsToPending(t *testing.T) {
	fleet, store, notifier := newFleetFixture()

	created, err := fleet.CreateReservation(entities.Reservation{
		UserID:    42,
		CarID:     7,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, created.Status)
	assert.NotZero(t, created.ID)
	assert.Contains(t, store.items, created.ID)

	notifier.wait(t)
	assert.Equal(t, []int{created.ID}, notifier.created)
}

func TestCreateReservationValidatesInterval(t *testing.T) {
	fleet, _, _ := newFleetFixture()

	_, err := fleet.CreateReservation(entities.Reservation{
		UserID:    42,
		CarID:     7,
		StartDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Error(t, err)

	_, err = fleet.CreateReservation(entities.Reservation{CarID: 7})
	assert.Error(t, err)
}

func TestCancelReservationIsIdempotent(t *testing.T) {
	fleet, _, notifier := newFleetFixture()
	created, err := fleet.CreateReservation(entities.Reservation{
		UserID:    42,
		CarID:     7,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	notifier.wait(t)

	existed, err := fleet.CancelReservation(created.ID)
	require.NoError(t, err)
	assert.True(t, existed)
	notifier.wait(t)
	assert.Equal(t, []int{created.ID}, notifier.cancelled)

	existed, err = fleet.CancelReservation(created.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestPatchUserReplacesRelations(t *testing.T) {
	fleet, _, _ := newFleetFixture()

	favorites := []int{1, 2}
	updated, err := fleet.PatchUser(42, entities.UserPatch{FavoriteCars: &favorites})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, updated.FavoriteCars)

	empty := []int{}
	updated, err = fleet.PatchUser(42, entities.UserPatch{FavoriteCars: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.FavoriteCars)
}
