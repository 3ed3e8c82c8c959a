package domain

import "time"

// AssignmentStatus represents the status of a diver's seat assignment
type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "active"
	AssignmentReleased AssignmentStatus = "released"
)

// Assignment represents one diver occupying one seat on a trip.
// Released assignments are never deleted - they remain for audit,
// the active seat count of a trip is only the count of Active rows.
type Assignment struct {
	ID      int64
	TripID  int64
	DiverID int64
	Status  AssignmentStatus

	CreatedAt  time.Time
	ReleasedAt *time.Time
}

// IsActive returns true if the assignment currently occupies a seat
func (a *Assignment) IsActive() bool {
	return a.Status == AssignmentActive
}

// ActiveDiverIDs returns the diver IDs of active assignments
func ActiveDiverIDs(assignments []*Assignment) []int64 {
	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		if a.IsActive() {
			ids = append(ids, a.DiverID)
		}
	}
	return ids
}
