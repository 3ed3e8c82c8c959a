package list_assignments

import (
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// AssignmentResponse активное назначение дайвера
type AssignmentResponse struct {
	ID        int64  `json:"id"`
	DiverID   int64  `json:"diverId"`
	CreatedAt string `json:"createdAt"`
}

// AssignmentsListResponse HTTP response со списком активных назначений
type AssignmentsListResponse struct {
	TripID      int64                 `json:"tripId"`
	Assignments []*AssignmentResponse `json:"assignments"`
}

// FromDomainAssignments конвертирует доменные модели в HTTP response
func FromDomainAssignments(tripID int64, list []*domain.Assignment) *AssignmentsListResponse {
	result := make([]*AssignmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, &AssignmentResponse{
			ID:        a.ID,
			DiverID:   a.DiverID,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}

	return &AssignmentsListResponse{
		TripID:      tripID,
		Assignments: result,
	}
}
