package update_payment_status

import (
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/service/bookings/models"
)

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"` // "paid" или "refunded"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"tripId"`
	PartyDiverIDs []int64 `json:"partyDiverIds"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromServiceBooking конвертирует сервисную модель в HTTP response
func FromServiceBooking(b *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		TripID:        b.TripID,
		PartyDiverIDs: b.PartyDiverIDs,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
