package reserve_assignments

import (
	"time"

	reserveAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/reserve_assignments"
)

// ReserveAssignmentsRequest HTTP request model
type ReserveAssignmentsRequest struct {
	DiverIDs []int64 `json:"diverIds"`
}

// AssignedDiverResponse информация о созданном назначении
type AssignedDiverResponse struct {
	AssignmentID int64  `json:"assignmentId"`
	DiverID      int64  `json:"diverId"`
	CreatedAt    string `json:"createdAt"`
}

// ReserveAssignmentsResponse HTTP response model
type ReserveAssignmentsResponse struct {
	TripID    int64                   `json:"tripId"`
	Assigned  []AssignedDiverResponse `json:"assigned"`
	SeatsLeft int                     `json:"seatsLeft"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveAssignments.Response) *ReserveAssignmentsResponse {
	assigned := make([]AssignedDiverResponse, 0, len(resp.Assigned))
	for _, a := range resp.Assigned {
		assigned = append(assigned, AssignedDiverResponse{
			AssignmentID: a.AssignmentID,
			DiverID:      a.DiverID,
			CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ReserveAssignmentsResponse{
		TripID:    resp.TripID,
		Assigned:  assigned,
		SeatsLeft: resp.SeatsLeft,
	}
}
