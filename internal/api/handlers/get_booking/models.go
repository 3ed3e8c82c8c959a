package get_booking

import (
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	TripID             int64   `json:"tripId"`
	PartyDiverIDs      []int64 `json:"partyDiverIds"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"paymentStatus"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceBooking конвертирует сервисную модель в HTTP response
func FromServiceBooking(b *models.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		TripID:             b.TripID,
		PartyDiverIDs:      b.PartyDiverIDs,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
