package booking

import (
	"context"
	"log"

	"autorent/internal/entities"
)

// Favorites toggles a car in and out of a user's favorite set with an
// explicit two-phase shape: read the cached record (fetching it on a
// miss), compute the toggled set locally, then patch the remote record.
// The cache is only replaced with the server-confirmed value; on a
// failed patch it stays at its pre-toggle state, so the UI re-derives
// favorite status from the cache rather than an assumed toggle.
type Favorites struct {
	users UserDirectory
}

func NewFavorites(users UserDirectory) *Favorites {
	return &Favorites{users: users}
}

// Toggle flips carID in the user's favorite set and returns the
// server-confirmed set.
func (f *Favorites) Toggle(ctx context.Context, userID, carID int) ([]int, error) {
	user, ok := f.users.GetByID(userID)
	if !ok {
		fetched, err := f.users.FetchByID(ctx, userID)
		if err != nil {
			log.Printf("booking: user %d not in cache and fetch failed: %v", userID, err)
			return nil, err
		}
		f.users.UpsertCached(fetched)
		user = fetched
	}

	toggled := toggleMember(user.FavoriteCars, carID)
	updated, err := f.users.Patch(ctx, userID, entities.UserPatch{FavoriteCars: &toggled})
	if err != nil {
		log.Printf("booking: failed to update favorites for user %d: %v", userID, err)
		return nil, &PersistenceError{Op: "update favorites", Err: err}
	}
	return updated.FavoriteCars, nil
}

// IsFavorite reports carID's membership as the cache currently sees it.
func (f *Favorites) IsFavorite(userID, carID int) bool {
	user, ok := f.users.GetByID(userID)
	if !ok {
		return false
	}
	for _, id := range user.FavoriteCars {
		if id == carID {
			return true
		}
	}
	return false
}

// toggleMember returns a new slice with id removed if present, appended
// otherwise. The input is never mutated.
func toggleMember(ids []int, id int) []int {
	out := make([]int, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
