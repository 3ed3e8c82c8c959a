// Package events модели событий жизненного цикла, отправляемых во внешний
// sink уведомлений/аудита. Доставка fire-and-forget: ошибка публикации
// никогда не прерывает породившую событие операцию.
package events

import "time"

// Имена очередей для событий
const (
	QueueAssignmentCreated    = "divetrip.assignment.created"
	QueueAssignmentReleased   = "divetrip.assignment.released"
	QueueBookingConfirmed     = "divetrip.booking.confirmed"
	QueueBookingCancelled     = "divetrip.booking.cancelled"
	QueuePaymentStatusChanged = "divetrip.booking.payment_changed"
)

// AssignmentCreated публикуется при успешном назначении дайвера на поездку
type AssignmentCreated struct {
	AssignmentID int64     `json:"assignmentId"`
	TripID       int64     `json:"tripId"`
	DiverID      int64     `json:"diverId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AssignmentReleased публикуется при освобождении места
type AssignmentReleased struct {
	TripID     int64     `json:"tripId"`
	DiverID    int64     `json:"diverId"`
	ReleasedAt time.Time `json:"releasedAt"`
}

// BookingConfirmed публикуется при подтверждении бронирования
type BookingConfirmed struct {
	BookingID     int64     `json:"bookingId"`
	TripID        int64     `json:"tripId"`
	PartyDiverIDs []int64   `json:"partyDiverIds"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}

// BookingCancelled публикуется при отмене бронирования
type BookingCancelled struct {
	BookingID   int64     `json:"bookingId"`
	TripID      int64     `json:"tripId"`
	Reason      *string   `json:"reason,omitempty"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// PaymentStatusChanged публикуется при смене статуса оплаты
type PaymentStatusChanged struct {
	BookingID int64     `json:"bookingId"`
	TripID    int64     `json:"tripId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ChangedAt time.Time `json:"changedAt"`
}
