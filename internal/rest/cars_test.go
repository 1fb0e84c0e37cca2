package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorent/internal/entities"
)

func newTestCarClient(t *testing.T, cars ...entities.Car) *CarClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cars", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(cars)
	})
	mux.HandleFunc("/api/cars/2", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entities.Car{ID: 2, Brand: "Citroën", Model: "C3", PricePerDay: 40, Available: true})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return NewCarClient(NewClient(server.URL, server.Client()))
}

func TestCarClientSyncAndLookup(t *testing.T) {
	client := newTestCarClient(t,
		entities.Car{ID: 1, Brand: "Renault", Model: "Clio", PricePerDay: 50, Available: true},
		entities.Car{ID: 3, Brand: "Dacia", Model: "Sandero", PricePerDay: 35, Available: false},
	)

	_, ok := client.GetByID(1)
	assert.False(t, ok) // nothing cached before the first sync

	require.NoError(t, client.Sync(context.Background()))

	car, ok := client.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Clio", car.Model)

	available := client.Available()
	require.Len(t, available, 1)
	assert.Equal(t, 1, available[0].ID)
}

func TestCarClientFetchFoldsIntoSnapshot(t *testing.T) {
	client := newTestCarClient(t,
		entities.Car{ID: 1, Brand: "Renault", Model: "Clio", PricePerDay: 50, Available: true},
	)
	require.NoError(t, client.Sync(context.Background()))

	car, err := client.FetchByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "C3", car.Model)

	cached, ok := client.GetByID(2)
	assert.True(t, ok)
	assert.Equal(t, 40.0, cached.PricePerDay)
	assert.Len(t, client.List(), 2)
}
