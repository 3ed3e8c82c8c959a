package get_diver_bookings

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
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// BookingsListResponse HTTP response со списком бронирований
type BookingsListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromServiceBookings конвертирует сервисные модели в HTTP response
func FromServiceBookings(list []*models.Booking) *BookingsListResponse {
	result := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, &BookingResponse{
			ID:                 b.ID,
			TripID:             b.TripID,
			PartyDiverIDs:      b.PartyDiverIDs,
			Status:             string(b.Status),
			PaymentStatus:      string(b.PaymentStatus),
			CancellationReason: b.CancellationReason,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
		})
	}

	return &BookingsListResponse{Bookings: result}
}
