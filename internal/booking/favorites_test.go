package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorent/internal/entities"
)

func seedFavoritesUser(users *fakeUsers, cached bool) {
	user := entities.User{ID: 8, Email: "fan@example.com", FavoriteCars: []int{1, 2}}
	users.remote[8] = user.Clone()
	if cached {
		users.cache[8] = user.Clone()
	}
}

func TestToggleRemovesExistingFavorite(t *testing.T) {
	users := newFakeUsers()
	seedFavoritesUser(users, true)
	favorites := NewFavorites(users)

	got, err := favorites.Toggle(context.Background(), 8, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	cached, _ := users.GetByID(8)
	assert.Equal(t, []int{1}, cached.FavoriteCars)
}

func TestToggleAddsNewFavorite(t *testing.T) {
	users := newFakeUsers()
	seedFavoritesUser(users, true)
	favorites := NewFavorites(users)

	got, err := favorites.Toggle(context.Background(), 8, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, got)
}

func TestToggleFetchesOnCacheMiss(t *testing.T) {
	users := newFakeUsers()
	seedFavoritesUser(users, false)
	favorites := NewFavorites(users)

	got, err := favorites.Toggle(context.Background(), 8, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	// The fetched record went through the cache on the way.
	_, ok := users.GetByID(8)
	assert.True(t, ok)
}

func TestToggleUnknownUser(t *testing.T) {
	users := newFakeUsers()
	favorites := NewFavorites(users)

	_, err := favorites.Toggle(context.Background(), 404, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleRemoteFailureLeavesCacheUntouched(t *testing.T) {
	users := newFakeUsers()
	seedFavoritesUser(users, true)
	users.patchErr = errors.New("service unavailable")
	favorites := NewFavorites(users)

	_, err := favorites.Toggle(context.Background(), 8, 2)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)

	// The cache still shows the pre-toggle state; the UI re-derives
	// favorite status from it.
	cached, _ := users.GetByID(8)
	assert.Equal(t, []int{1, 2}, cached.FavoriteCars)
	assert.True(t, favorites.IsFavorite(8, 2))
}

func TestIsFavorite(t *testing.T) {
	users := newFakeUsers()
	seedFavoritesUser(users, true)
	favorites := NewFavorites(users)

	assert.True(t, favorites.IsFavorite(8, 1))
	assert.False(t, favorites.IsFavorite(8, 9))
	assert.False(t, favorites.IsFavorite(999, 1))
}
