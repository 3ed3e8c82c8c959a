package release_assignments

import (
	releaseAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/release_assignments"
)

// ReleaseAssignmentsRequest HTTP request model
type ReleaseAssignmentsRequest struct {
	DiverIDs []int64 `json:"diverIds"`
}

// ReleaseAssignmentsResponse HTTP response model
// Released содержит только дайверов, чьи назначения были активны:
// повторное освобождение не считается ошибкой
type ReleaseAssignmentsResponse struct {
	TripID   int64   `json:"tripId"`
	Released []int64 `json:"released"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *releaseAssignments.Response) *ReleaseAssignmentsResponse {
	return &ReleaseAssignmentsResponse{
		TripID:   resp.TripID,
		Released: resp.Released,
	}
}
