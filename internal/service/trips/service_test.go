package trips

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	storage "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
)

type fakeRepo struct {
	trips  map[int64]*domain.Trip
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{trips: map[int64]*domain.Trip{}, nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	stored := *trip
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.nextID++
	r.trips[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, storage.ErrTripNotFound
	}
	return trip, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateTrip(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &fixedTimeProvider{now: now}, nopLogger{})

	trip, err := svc.Create(context.Background(), "  Blue Hole  ", now.Add(72*time.Hour), 8)

	require.NoError(t, err)
	assert.Equal(t, "Blue Hole", trip.Title, "title must be trimmed")
	assert.Equal(t, 8, trip.Capacity)
}

func TestCreateTrip_Validation(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &fixedTimeProvider{now: now}, nopLogger{})
	future := now.Add(72 * time.Hour)

	tests := []struct {
		name     string
		title    string
		startsAt time.Time
		capacity int
	}{
		{"empty title", "", future, 8},
		{"zero capacity", "Blue Hole", future, 0},
		{"capacity above limit", "Blue Hole", future, 101},
		{"negative capacity", "Blue Hole", future, -1},
		{"zero starts_at", "Blue Hole", time.Time{}, 8},
		{"starts in the past", "Blue Hole", now.Add(-time.Hour), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.title, tt.startsAt, tt.capacity)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateTrip_CapacityBounds(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &fixedTimeProvider{now: now}, nopLogger{})
	future := now.Add(72 * time.Hour)

	// Граничные значения допустимы
	_, err := svc.Create(context.Background(), "Solo charter", future, 1)
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), "Liveaboard", future, 100)
	assert.NoError(t, err)
}

func TestGetByID(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := NewService(repo, &fixedTimeProvider{now: now}, nopLogger{})

	created, err := svc.Create(context.Background(), "Blue Hole", now.Add(72*time.Hour), 8)
	require.NoError(t, err)

	trip, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, trip.ID)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTripNotFound)
}
