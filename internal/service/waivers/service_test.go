package waivers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/pkg/ptr"
)

type fakeRepo struct {
	waivers map[int64][]*domain.Waiver
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{waivers: map[int64][]*domain.Waiver{}, nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, waiver *domain.Waiver) (*domain.Waiver, error) {
	stored := *waiver
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++
	r.waivers[stored.DiverID] = append(r.waivers[stored.DiverID], &stored)
	return &stored, nil
}

func (r *fakeRepo) GetByDiver(_ context.Context, diverID int64) ([]*domain.Waiver, error) {
	return r.waivers[diverID], nil
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

func TestRecordSignature(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := NewService(repo, &fixedTimeProvider{now: now}, nopLogger{})

	signedAt := now.Add(-time.Hour)
	expiresAt := now.Add(365 * 24 * time.Hour)

	waiver, err := svc.RecordSignature(context.Background(), 101, signedAt, &expiresAt)

	require.NoError(t, err)
	assert.Equal(t, int64(101), waiver.DiverID)
	assert.Equal(t, signedAt, waiver.SignedAt)
	require.NotNil(t, waiver.ExpiresAt)
}

func TestRecordSignature_DefaultsToNow(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &fixedTimeProvider{now: now}, nopLogger{})

	waiver, err := svc.RecordSignature(context.Background(), 101, time.Time{}, nil)

	require.NoError(t, err)
	assert.Equal(t, now, waiver.SignedAt)
	assert.Nil(t, waiver.ExpiresAt)
}

func TestRecordSignature_Validation(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &fixedTimeProvider{now: now}, nopLogger{})

	_, err := svc.RecordSignature(context.Background(), 0, now, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Срок действия не может закончиться раньше подписи
	expired := now.Add(-time.Hour)
	_, err = svc.RecordSignature(context.Background(), 101, now, &expired)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Новая подпись не затирает старые: реестр append-only, и проверка
// валидности видит все записи дайвера
func TestHasValidWaiver_AppendOnly(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := NewService(repo, &fixedTimeProvider{now: now}, nopLogger{})

	expired := now.Add(-time.Minute)
	_, err := svc.RecordSignature(context.Background(), 101, now.Add(-48*time.Hour), &expired)
	require.NoError(t, err)

	ok, err := svc.HasValidWaiver(context.Background(), 101, now)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.RecordSignature(context.Background(), 101, now.Add(-time.Hour), ptr.Ptr(now.Add(time.Hour)))
	require.NoError(t, err)

	ok, err = svc.HasValidWaiver(context.Background(), 101, now)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, repo.waivers[101], 2, "previous signatures must be preserved")
}

func TestHasValidWaiver_NoSignatures(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &fixedTimeProvider{now: now}, nopLogger{})

	ok, err := svc.HasValidWaiver(context.Background(), 101, now)
	require.NoError(t, err)
	assert.False(t, ok)
}
