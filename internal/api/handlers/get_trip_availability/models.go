package get_trip_availability

import (
	"time"

	getTripAvailability "github.com/m04kA/SMC-DiveTripService/internal/usecase/get_trip_availability"
)

// TripAvailabilityResponse HTTP response model
type TripAvailabilityResponse struct {
	TripID      int64  `json:"tripId"`
	Title       string `json:"title"`
	StartsAt    string `json:"startsAt"`
	Capacity    int    `json:"capacity"`
	ActiveCount int    `json:"activeCount"`
	SeatsLeft   int    `json:"seatsLeft"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTripAvailability.Response) *TripAvailabilityResponse {
	return &TripAvailabilityResponse{
		TripID:      resp.TripID,
		Title:       resp.Title,
		StartsAt:    resp.StartsAt.Format(time.RFC3339),
		Capacity:    resp.Capacity,
		ActiveCount: resp.ActiveCount,
		SeatsLeft:   resp.SeatsLeft,
	}
}
