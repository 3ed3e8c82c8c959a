package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	releaseAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/release_assignments"
	reserveAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/reserve_assignments"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]*domain.Booking{}, nextID: 1}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.nextID++
	r.bookings[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r.bookings[id].Status = status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason *string) error {
	now := time.Now()
	b := r.bookings[id]
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	return nil
}

// fakeReserveUC отвечает заранее заданной ошибкой либо успехом
type fakeReserveUC struct {
	err      error
	requests []*reserveAssignments.Request
}

func (uc *fakeReserveUC) Execute(_ context.Context, req *reserveAssignments.Request) (*reserveAssignments.Response, error) {
	uc.requests = append(uc.requests, req)
	if uc.err != nil {
		return nil, uc.err
	}

	assigned := make([]reserveAssignments.AssignedDiver, len(req.DiverIDs))
	for i, diverID := range req.DiverIDs {
		assigned[i] = reserveAssignments.AssignedDiver{
			AssignmentID: int64(i + 1),
			DiverID:      diverID,
			CreatedAt:    time.Now(),
		}
	}
	return &reserveAssignments.Response{TripID: req.TripID, Assigned: assigned}, nil
}

type fakeReleaseUC struct {
	requests []*releaseAssignments.Request
}

func (uc *fakeReleaseUC) Execute(_ context.Context, req *releaseAssignments.Request) (*releaseAssignments.Response, error) {
	uc.requests = append(uc.requests, req)
	return &releaseAssignments.Response{TripID: req.TripID, Released: req.DiverIDs}, nil
}

type fakePublisher struct {
	confirmed []events.BookingConfirmed
	cancelled []events.BookingCancelled
}

func (p *fakePublisher) PublishBookingConfirmed(_ context.Context, event events.BookingConfirmed) error {
	p.confirmed = append(p.confirmed, event)
	return nil
}

func (p *fakePublisher) PublishBookingCancelled(_ context.Context, event events.BookingCancelled) error {
	p.cancelled = append(p.cancelled, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateBooking_Confirmed(t *testing.T) {
	repo := newFakeBookingRepo()
	reserveUC := &fakeReserveUC{}
	releaseUC := &fakeReleaseUC{}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, reserveUC, releaseUC, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TripID:        1,
		PartyDiverIDs: []int64{101, 102},
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentUnpaid), resp.PaymentStatus)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[resp.ID].Status)
	assert.Len(t, publisher.confirmed, 1)
	assert.Empty(t, releaseUC.requests)
}

// При отклонении резервирования бронирование не остаётся в pending:
// запись сразу фиксируется отменённой, места не заняты, а вызывающий
// получает и причину, и созданную запись
func TestCreateBooking_RejectionCancelsBooking(t *testing.T) {
	tests := []struct {
		name       string
		reserveErr error
		wantErr    error
	}{
		{"capacity exceeded", reserveAssignments.ErrCapacityExceeded, ErrCapacityExceeded},
		{"waiver missing", reserveAssignments.ErrWaiverMissing, ErrWaiverMissing},
		{"already assigned", reserveAssignments.ErrAlreadyAssigned, ErrAlreadyAssigned},
		{"trip not found", reserveAssignments.ErrTripNotFound, ErrTripNotFound},
		{"busy", reserveAssignments.ErrBusy, ErrBusy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			reserveUC := &fakeReserveUC{err: tt.reserveErr}
			publisher := &fakePublisher{}
			uc := NewUseCase(repo, reserveUC, &fakeReleaseUC{}, publisher, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				TripID:        1,
				PartyDiverIDs: []int64{101},
			})

			assert.ErrorIs(t, err, tt.wantErr)
			require.NotNil(t, resp, "rejected booking record must be returned")
			assert.Equal(t, string(domain.StatusCancelled), resp.Status)
			require.NotNil(t, resp.CancellationReason)

			stored := repo.bookings[resp.ID]
			assert.Equal(t, domain.StatusCancelled, stored.Status)
			assert.Len(t, publisher.cancelled, 1)
			assert.Empty(t, publisher.confirmed)
		})
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), &fakeReserveUC{}, &fakeReleaseUC{}, &fakePublisher{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero trip id", &Request{TripID: 0, PartyDiverIDs: []int64{101}}},
		{"empty party", &Request{TripID: 1, PartyDiverIDs: nil}},
		{"duplicate divers", &Request{TripID: 1, PartyDiverIDs: []int64{101, 101}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateBooking_PartyPassedAtomically(t *testing.T) {
	reserveUC := &fakeReserveUC{}
	uc := NewUseCase(newFakeBookingRepo(), reserveUC, &fakeReleaseUC{}, &fakePublisher{}, nopLogger{})

	party := []int64{101, 102, 103}
	_, err := uc.Execute(context.Background(), &Request{TripID: 7, PartyDiverIDs: party})

	require.NoError(t, err)
	require.Len(t, reserveUC.requests, 1)
	assert.Equal(t, party, reserveUC.requests[0].DiverIDs, "party must be reserved as a whole")
	assert.Equal(t, int64(7), reserveUC.requests[0].TripID)
}
