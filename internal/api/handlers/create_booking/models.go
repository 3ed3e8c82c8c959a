package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-DiveTripService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TripID        int64   `json:"tripId"`
	PartyDiverIDs []int64 `json:"partyDiverIds"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		TripID:        r.TripID,
		PartyDiverIDs: r.PartyDiverIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		TripID:             resp.TripID,
		PartyDiverIDs:      resp.PartyDiverIDs,
		Status:             resp.Status,
		PaymentStatus:      resp.PaymentStatus,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
