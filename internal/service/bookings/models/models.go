package models

import (
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// Booking бронирование поездки для группы дайверов
type Booking struct {
	ID                 int64
	TripID             int64
	PartyDiverIDs      []int64
	Status             domain.BookingStatus
	PaymentStatus      domain.PaymentStatus
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FromDomainBooking конвертирует доменную модель в сервисную
func FromDomainBooking(b *domain.Booking) *Booking {
	if b == nil {
		return nil
	}

	return &Booking{
		ID:                 b.ID,
		TripID:             b.TripID,
		PartyDiverIDs:      b.PartyDiverIDs,
		Status:             b.Status,
		PaymentStatus:      b.PaymentStatus,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список доменных моделей
func FromDomainBookings(list []*domain.Booking) []*Booking {
	result := make([]*Booking, 0, len(list))
	for _, b := range list {
		result = append(result, FromDomainBooking(b))
	}

	return result
}
