package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBookingCanTransitionPayment(t *testing.T) {
	tests := []struct {
		name    string
		status  BookingStatus
		payment PaymentStatus
		to      PaymentStatus
		want    bool
	}{
		{"unpaid to paid", StatusConfirmed, PaymentUnpaid, PaymentPaid, true},
		{"paid to refunded", StatusConfirmed, PaymentPaid, PaymentRefunded, true},
		{"unpaid to refunded skips paid", StatusConfirmed, PaymentUnpaid, PaymentRefunded, false},
		{"paid to paid", StatusConfirmed, PaymentPaid, PaymentPaid, false},
		{"refunded is terminal", StatusConfirmed, PaymentRefunded, PaymentPaid, false},
		{"cancelled booking freezes payment", StatusCancelled, PaymentUnpaid, PaymentPaid, false},
		{"cancelled booking freezes refund", StatusCancelled, PaymentPaid, PaymentRefunded, false},
		{"transition to unpaid is invalid", StatusConfirmed, PaymentPaid, PaymentUnpaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, PaymentStatus: tt.payment}
			assert.Equal(t, tt.want, b.CanTransitionPayment(tt.to))
		})
	}
}

func TestTripSeats(t *testing.T) {
	trip := &Trip{Capacity: 8}

	assert.True(t, trip.HasFreeSeats(0, 8))
	assert.True(t, trip.HasFreeSeats(6, 2))
	assert.False(t, trip.HasFreeSeats(7, 2))
	assert.Equal(t, 2, trip.SeatsLeft(6))
	assert.Equal(t, 0, trip.SeatsLeft(9))
}

func TestActiveDiverIDs(t *testing.T) {
	assignments := []*Assignment{
		{DiverID: 1, Status: AssignmentActive},
		{DiverID: 2, Status: AssignmentReleased},
		{DiverID: 3, Status: AssignmentActive},
	}
	assert.Equal(t, []int64{1, 3}, ActiveDiverIDs(assignments))
}
