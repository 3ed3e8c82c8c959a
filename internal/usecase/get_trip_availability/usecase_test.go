package get_trip_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
)

type fakeTripRepo struct {
	trip *domain.Trip
}

func (r *fakeTripRepo) GetByID(_ context.Context, id int64) (*domain.Trip, error) {
	if r.trip == nil || r.trip.ID != id {
		return nil, tripRepo.ErrTripNotFound
	}
	return r.trip, nil
}

type fakeAssignmentRepo struct {
	activeCount int
}

func (r *fakeAssignmentRepo) CountActiveByTrip(_ context.Context, _ int64) (int, error) {
	return r.activeCount, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetTripAvailability(t *testing.T) {
	trip := &domain.Trip{
		ID:       1,
		Title:    "Coral Garden",
		StartsAt: time.Date(2026, 9, 12, 8, 0, 0, 0, time.UTC),
		Capacity: 12,
	}

	tests := []struct {
		name          string
		activeCount   int
		wantSeatsLeft int
	}{
		{"empty trip", 0, 12},
		{"partially filled", 7, 5},
		{"full trip", 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeTripRepo{trip: trip}, &fakeAssignmentRepo{activeCount: tt.activeCount}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{TripID: 1})

			require.NoError(t, err)
			assert.Equal(t, trip.Title, resp.Title)
			assert.Equal(t, trip.Capacity, resp.Capacity)
			assert.Equal(t, tt.activeCount, resp.ActiveCount)
			assert.Equal(t, tt.wantSeatsLeft, resp.SeatsLeft)
		})
	}
}

func TestGetTripAvailability_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeTripRepo{}, &fakeAssignmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TripID: 1})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestGetTripAvailability_Validation(t *testing.T) {
	uc := NewUseCase(&fakeTripRepo{}, &fakeAssignmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TripID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
