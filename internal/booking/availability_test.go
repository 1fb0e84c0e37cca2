package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"autorent/internal/entities"
)

func TestHasConflict(t *testing.T) {
	// Car 3 is taken 2024-07-01 through 2024-07-05.
	store := newFakeStore(entities.Reservation{
		ID:        1,
		CarID:     3,
		UserID:    9,
		StartDate: date(2024, 7, 1),
		EndDate:   date(2024, 7, 5),
	})
	checker := NewAvailabilityChecker(store)

	tests := []struct {
		name  string
		carID int
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "overlapping tail conflicts",
			carID: 3,
			start: date(2024, 7, 4),
			end:   date(2024, 7, 6),
			want:  true,
		},
		{
			name:  "disjoint later interval is free",
			carID: 3,
			start: date(2024, 7, 6),
			end:   date(2024, 7, 8),
			want:  false,
		},
		{
			name:  "disjoint earlier interval is free",
			carID: 3,
			start: date(2024, 6, 25),
			end:   date(2024, 6, 30),
			want:  false,
		},
		{
			name:  "touching endpoint counts: no same-day handover",
			carID: 3,
			start: date(2024, 7, 5),
			end:   date(2024, 7, 7),
			want:  true,
		},
		{
			name:  "touching start endpoint counts too",
			carID: 3,
			start: date(2024, 6, 28),
			end:   date(2024, 7, 1),
			want:  true,
		},
		{
			name:  "containing interval conflicts",
			carID: 3,
			start: date(2024, 6, 30),
			end:   date(2024, 7, 10),
			want:  true,
		},
		{
			name:  "contained interval conflicts",
			carID: 3,
			start: date(2024, 7, 2),
			end:   date(2024, 7, 3),
			want:  true,
		},
		{
			name:  "other car is unaffected",
			carID: 4,
			start: date(2024, 7, 2),
			end:   date(2024, 7, 3),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.HasConflict(tt.carID, tt.start, tt.end))
		})
	}
}

func TestHasConflictEmptyStore(t *testing.T) {
	checker := NewAvailabilityChecker(newFakeStore())
	assert.False(t, checker.HasConflict(1, date(2024, 7, 1), date(2024, 7, 5)))
}
