package create_trip

import (
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// CreateTripRequest HTTP request model
type CreateTripRequest struct {
	Title    string `json:"title"`
	StartsAt string `json:"startsAt"` // RFC3339
	Capacity int    `json:"capacity"`
}

// TripResponse HTTP response model
type TripResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartsAt  string `json:"startsAt"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainTrip конвертирует доменную модель в HTTP response
func FromDomainTrip(t *domain.Trip) *TripResponse {
	return &TripResponse{
		ID:        t.ID,
		Title:     t.Title,
		StartsAt:  t.StartsAt.Format(time.RFC3339),
		Capacity:  t.Capacity,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
