package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment status of a booking.
// Independent axis from the lifecycle status; only meaningful while
// the booking is not cancelled.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid reports whether the value is a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsValid reports whether the value is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Booking represents a trip reservation for a party of divers
type Booking struct {
	ID            int64
	TripID        int64
	PartyDiverIDs []int64 // assigned atomically as a single party
	Status        BookingStatus
	PaymentStatus PaymentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
// Cancelled is a terminal state
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionPayment validates a payment status transition.
// Allowed: unpaid -> paid -> refunded. Payment state is frozen once
// the booking is cancelled.
func (b *Booking) CanTransitionPayment(to PaymentStatus) bool {
	if b.IsCancelled() {
		return false
	}

	switch to {
	case PaymentPaid:
		return b.PaymentStatus == PaymentUnpaid
	case PaymentRefunded:
		return b.PaymentStatus == PaymentPaid
	default:
		return false
	}
}
