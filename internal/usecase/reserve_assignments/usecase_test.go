package reserve_assignments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
)

// fakeStore in-memory состояние поездки, назначений и подписей.
// Мьютекс в fakeTxManager сериализует доступ так же, как блокировка
// строки поездки в настоящем репозитории.
type fakeStore struct {
	trip    *domain.Trip
	active  []*domain.Assignment
	waivers map[int64][]*domain.Waiver
	nextID  int64
}

func newFakeStore(capacity int) *fakeStore {
	return &fakeStore{
		trip: &domain.Trip{
			ID:       1,
			Title:    "Blue Hole",
			StartsAt: time.Now().Add(72 * time.Hour),
			Capacity: capacity,
		},
		waivers: map[int64][]*domain.Waiver{},
		nextID:  1,
	}
}

func (s *fakeStore) signWaiver(diverID int64, signedAt time.Time, expiresAt *time.Time) {
	s.waivers[diverID] = append(s.waivers[diverID], &domain.Waiver{
		ID:        int64(len(s.waivers[diverID]) + 1),
		DiverID:   diverID,
		SignedAt:  signedAt,
		ExpiresAt: expiresAt,
	})
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

func (r *fakeAssignmentRepo) GetActiveByTrip(_ context.Context, tripID int64) ([]*domain.Assignment, error) {
	result := make([]*domain.Assignment, 0, len(r.store.active))
	for _, a := range r.store.active {
		if a.TripID == tripID && a.IsActive() {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAssignmentRepo) CreateBatch(_ context.Context, tripID int64, diverIDs []int64) ([]*domain.Assignment, error) {
	created := make([]*domain.Assignment, 0, len(diverIDs))
	for _, diverID := range diverIDs {
		a := &domain.Assignment{
			ID:        r.store.nextID,
			TripID:    tripID,
			DiverID:   diverID,
			Status:    domain.AssignmentActive,
			CreatedAt: time.Now(),
		}
		r.store.nextID++
		r.store.active = append(r.store.active, a)
		created = append(created, a)
	}
	return created, nil
}

type fakeWaiverRepo struct {
	store *fakeStore
}

func (r *fakeWaiverRepo) GetByDiver(_ context.Context, diverID int64) ([]*domain.Waiver, error) {
	return r.store.waivers[diverID], nil
}

// fakeTxManager сериализует "транзакции" мьютексом, имитируя блокировку
// строки поездки
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakePublisher struct {
	mu      sync.Mutex
	created []events.AssignmentCreated
}

func (p *fakePublisher) PublishAssignmentCreated(_ context.Context, event events.AssignmentCreated) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(store *fakeStore) (*UseCase, *fakePublisher) {
	publisher := &fakePublisher{}
	uc := NewUseCase(
		&fakeTripRepo{store: store},
		&fakeAssignmentRepo{store: store},
		&fakeWaiverRepo{store: store},
		&fakeTxManager{},
		publisher,
		time.Second,
		nopLogger{},
	)
	return uc, publisher
}

func TestReserveAssignments_Success(t *testing.T) {
	store := newFakeStore(10)
	now := time.Now()
	store.signWaiver(101, now.Add(-time.Hour), nil)
	store.signWaiver(102, now.Add(-time.Hour), nil)

	uc, publisher := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		TripID:   1,
		DiverIDs: []int64{101, 102},
	})

	require.NoError(t, err)
	require.Len(t, resp.Assigned, 2)
	assert.Equal(t, int64(101), resp.Assigned[0].DiverID)
	assert.Equal(t, int64(102), resp.Assigned[1].DiverID)
	assert.Equal(t, 8, resp.SeatsLeft)
	assert.Len(t, publisher.created, 2)
}

func TestReserveAssignments_TripNotFound(t *testing.T) {
	store := newFakeStore(10)
	store.signWaiver(101, time.Now().Add(-time.Hour), nil)

	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{TripID: 999, DiverIDs: []int64{101}})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestReserveAssignments_AlreadyAssigned(t *testing.T) {
	store := newFakeStore(10)
	now := time.Now()
	store.signWaiver(101, now.Add(-time.Hour), nil)
	store.signWaiver(102, now.Add(-time.Hour), nil)

	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101}})
	require.NoError(t, err)

	// Дайвер 101 уже на борту: вся группа отклоняется целиком
	_, err = uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{102, 101}})
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	active, _ := (&fakeAssignmentRepo{store: store}).GetActiveByTrip(context.Background(), 1)
	assert.Len(t, active, 1, "rejected party must not occupy any seats")
}

func TestReserveAssignments_WaiverMissing(t *testing.T) {
	store := newFakeStore(10)
	now := time.Now()
	store.signWaiver(101, now.Add(-time.Hour), nil)
	// У 102 подписи нет вообще

	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101, 102}})
	assert.ErrorIs(t, err, ErrWaiverMissing)

	active, _ := (&fakeAssignmentRepo{store: store}).GetActiveByTrip(context.Background(), 1)
	assert.Empty(t, active, "partial assignment must not happen")
}

func TestReserveAssignments_ExpiredWaiver(t *testing.T) {
	store := newFakeStore(10)
	now := time.Now()
	expired := now.Add(-time.Minute)
	store.signWaiver(101, now.Add(-48*time.Hour), &expired)

	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101}})
	assert.ErrorIs(t, err, ErrWaiverMissing)
}

func TestReserveAssignments_SupersededWaiver(t *testing.T) {
	store := newFakeStore(10)
	now := time.Now()
	expired := now.Add(-time.Minute)
	// Первая подпись истекла, вторая действует: более поздняя подпись
	// не аннулируется более ранней
	store.signWaiver(101, now.Add(-48*time.Hour), &expired)
	store.signWaiver(101, now.Add(-time.Hour), nil)

	uc, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101}})
	require.NoError(t, err)
	assert.Len(t, resp.Assigned, 1)
}

func TestReserveAssignments_CapacityExceeded(t *testing.T) {
	store := newFakeStore(3)
	now := time.Now()
	for diverID := int64(101); diverID <= 105; diverID++ {
		store.signWaiver(diverID, now.Add(-time.Hour), nil)
	}

	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{101, 102}})
	require.NoError(t, err)

	// Осталось одно место, группа из двух не помещается
	_, err = uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{103, 104}})
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Но одиночный дайвер занимает последнее место
	resp, err := uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{105}})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SeatsLeft)
}

func TestReserveAssignments_Validation(t *testing.T) {
	store := newFakeStore(10)
	uc, _ := newTestUseCase(store)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero trip id", &Request{TripID: 0, DiverIDs: []int64{101}}},
		{"empty party", &Request{TripID: 1, DiverIDs: nil}},
		{"negative diver id", &Request{TripID: 1, DiverIDs: []int64{-5}}},
		{"duplicate divers", &Request{TripID: 1, DiverIDs: []int64{101, 101}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Конкурирующие запросы на последние места: при вместимости 2 из трёх
// одиночных запросов побеждают ровно два, третий получает отказ по
// вместимости. Пересечения мест не бывает ни при каком порядке
func TestReserveAssignments_ConcurrentLastSeats(t *testing.T) {
	store := newFakeStore(2)
	now := time.Now()
	store.signWaiver(101, now.Add(-time.Hour), nil)
	store.signWaiver(102, now.Add(-time.Hour), nil)
	store.signWaiver(103, now.Add(-time.Hour), nil)

	uc, _ := newTestUseCase(store)

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i, diverID := range []int64{101, 102, 103} {
		wg.Add(1)
		go func(i int, diverID int64) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: []int64{diverID}})
		}(i, diverID)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 1, rejected)

	active, _ := (&fakeAssignmentRepo{store: store}).GetActiveByTrip(context.Background(), 1)
	assert.Len(t, active, 2, "active assignments must never exceed capacity")
}

// Случайный поток конкурирующих групп разного размера: в любой момент
// число активных назначений не превышает вместимость
func TestReserveAssignments_ConcurrentRandomParties(t *testing.T) {
	const capacity = 5
	store := newFakeStore(capacity)
	now := time.Now()
	for diverID := int64(1); diverID <= 30; diverID++ {
		store.signWaiver(diverID, now.Add(-time.Hour), nil)
	}

	uc, _ := newTestUseCase(store)

	var wg sync.WaitGroup
	diverID := int64(0)
	for g := 0; g < 10; g++ {
		partySize := g%3 + 1
		party := make([]int64, 0, partySize)
		for p := 0; p < partySize; p++ {
			diverID++
			party = append(party, diverID)
		}
		wg.Add(1)
		go func(party []int64) {
			defer wg.Done()
			_, _ = uc.Execute(context.Background(), &Request{TripID: 1, DiverIDs: party})
		}(party)
	}
	wg.Wait()

	active, _ := (&fakeAssignmentRepo{store: store}).GetActiveByTrip(context.Background(), 1)
	assert.LessOrEqual(t, len(active), capacity)

	// Один дайвер занимает не больше одного места
	seen := map[int64]bool{}
	for _, a := range active {
		assert.False(t, seen[a.DiverID], "diver %d has more than one active assignment", a.DiverID)
		seen[a.DiverID] = true
	}
}
