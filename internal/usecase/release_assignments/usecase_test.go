package release_assignments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
)

type fakeStore struct {
	trip   *domain.Trip
	active []*domain.Assignment
}

type fakeTripRepo struct {
	store *fakeStore
}

func (r *fakeTripRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Trip, error) {
	if r.store.trip == nil || r.store.trip.ID != id {
		return nil, tripRepo.ErrTripNotFound
	}
	return r.store.trip, nil
}

type fakeAssignmentRepo struct {
	store *fakeStore
}

func (r *fakeAssignmentRepo) ReleaseBatch(_ context.Context, tripID int64, diverIDs []int64) ([]int64, error) {
	requested := make(map[int64]bool, len(diverIDs))
	for _, id := range diverIDs {
		requested[id] = true
	}

	now := time.Now()
	var released []int64
	for _, a := range r.store.active {
		if a.TripID == tripID && a.IsActive() && requested[a.DiverID] {
			a.Status = domain.AssignmentReleased
			a.ReleasedAt = &now
			released = append(released, a.DiverID)
		}
	}
	return released, nil
}

func (r *fakeAssignmentRepo) activeCount() int {
	count := 0
	for _, a := range r.store.active {
		if a.IsActive() {
			count++
		}
	}
	return count
}

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakePublisher struct {
	released []events.AssignmentReleased
}

func (p *fakePublisher) PublishAssignmentReleased(_ context.Context, event events.AssignmentReleased) error {
	p.released = append(p.released, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(store *fakeStore) (*UseCase, *fakeAssignmentRepo, *fakePublisher) {
	assignmentRepo := &fakeAssignmentRepo{store: store}
	publisher := &fakePublisher{}
	uc := NewUseCase(
		&fakeTripRepo{store: store},
		assignmentRepo,
		&fakeTxManager{},
		publisher,
		time.Second,
		nopLogger{},
	)
	return uc, assignmentRepo, publisher
}

func newStoreWithDivers(diverIDs ...int64) *fakeStore {
	store := &fakeStore{
		trip: &domain.Trip{
			ID:       1,
			Title:    "Night Reef",
			StartsAt: time.Now().Add(48 * time.Hour),
			Capacity: 10,
		},
	}
	for i, diverID := range diverIDs {
		store.active = append(store.active, &domain.Assignment{
			ID:        int64(i + 1),
			TripID:    1,
			DiverID:   diverID,
			Status:    domain.AssignmentActive,
			CreatedAt: time.Now(),
		})
	}
	return store
}

func TestReleaseAssignments_Success(t *testing.T) {
	store := newStoreWithDivers(101, 102, 103)
	uc, assignmentRepo, publisher := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101, 103}})

	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{101, 103}, resp.Released)
	assert.Equal(t, 1, assignmentRepo.activeCount())
	assert.Len(t, publisher.released, 2)
}

func TestReleaseAssignments_Idempotent(t *testing.T) {
	store := newStoreWithDivers(101)
	uc, assignmentRepo, publisher := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101}})
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, resp.Released)

	// Повторное освобождение не ошибка и не событие
	resp, err = uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101}})
	require.NoError(t, err)
	assert.Empty(t, resp.Released)
	assert.Equal(t, 0, assignmentRepo.activeCount())
	assert.Len(t, publisher.released, 1)
}

func TestReleaseAssignments_UnknownDiverSkipped(t *testing.T) {
	store := newStoreWithDivers(101)
	uc, _, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{999}})
	require.NoError(t, err)
	assert.Empty(t, resp.Released)
}

func TestReleaseAssignments_TripNotFound(t *testing.T) {
	store := newStoreWithDivers(101)
	uc, _, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{TripID: 42, DiverIDs: []int64{101}})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestReleaseAssignments_Validation(t *testing.T) {
	store := newStoreWithDivers(101)
	uc, _, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{TripID: 0, DiverIDs: []int64{101}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: nil})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
