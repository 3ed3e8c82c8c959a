package domain

import "time"

// Trip represents a scheduled dive trip with a fixed seat capacity
type Trip struct {
	ID       int64
	Title    string
	StartsAt time.Time
	Capacity int // Количество мест, неизменяемо после создания

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFreeSeats returns true if n more divers fit given the current
// number of active assignments
func (t *Trip) HasFreeSeats(activeCount, n int) bool {
	return activeCount+n <= t.Capacity
}

// SeatsLeft returns the number of free seats given the current
// number of active assignments; never negative
func (t *Trip) SeatsLeft(activeCount int) int {
	left := t.Capacity - activeCount
	if left < 0 {
		return 0
	}
	return left
}

// HasStarted returns true if the trip has already departed as of now
func (t *Trip) HasStarted(now time.Time) bool {
	return !t.StartsAt.After(now)
}
