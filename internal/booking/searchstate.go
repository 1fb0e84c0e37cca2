package booking

import (
	"sync"

	"autorent/internal/entities"
)

// IntentStore holds the in-progress search payload and, while a guest is
// sent through registration, the pending reservation intent. It lives
// for the whole session, never touches the network and never blocks.
// Values go in and come out by copy; callers cannot mutate stored state.
type IntentStore struct {
	mu     sync.RWMutex
	search *entities.SearchPayload
	intent *entities.ReservationIntent
}

func NewIntentStore() *IntentStore {
	return &IntentStore{}
}

// SetSearch stores a copy of the search payload. Always succeeds;
// payload validation is the capturer's job.
func (s *IntentStore) SetSearch(payload entities.SearchPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := payload
	s.search = &p
}

// Search returns a copy of the captured search payload, or false if none
// was ever set.
func (s *IntentStore) Search() (entities.SearchPayload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.search == nil {
		return entities.SearchPayload{}, false
	}
	return *s.search, true
}

// SetIntent stores a copy of the reservation intent, overwriting any
// prior intent.
func (s *IntentStore) SetIntent(intent entities.ReservationIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := intent
	s.intent = &i
}

// Intent returns a copy of the pending reservation intent, or false if
// there is none.
func (s *IntentStore) Intent() (entities.ReservationIntent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.intent == nil {
		return entities.ReservationIntent{}, false
	}
	return *s.intent, true
}

// ClearIntent drops only the pending reservation intent. The search
// payload survives so the user can book another car for the same trip.
func (s *IntentStore) ClearIntent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = nil
}

// Clear drops both the search payload and the intent. Called on logout
// or when the user abandons the search.
func (s *IntentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = nil
	s.intent = nil
}
