package domain

import "time"

// Waiver represents a single liability waiver signature event.
// Signatures are append-only: later signatures supersede earlier ones,
// nothing is ever updated in place.
type Waiver struct {
	ID        int64
	DiverID   int64
	SignedAt  time.Time
	ExpiresAt *time.Time // nil = бессрочная подпись

	CreatedAt time.Time
}

// IsValidAt returns true if the signature covers the given reference time:
// signed at or before asOf and not yet expired at asOf
func (w *Waiver) IsValidAt(asOf time.Time) bool {
	if w.SignedAt.After(asOf) {
		return false
	}
	if w.ExpiresAt != nil && !w.ExpiresAt.After(asOf) {
		return false
	}
	return true
}

// HasValidWaiver returns true if any of the diver's signature events
// is valid as of the reference time
func HasValidWaiver(waivers []*Waiver, asOf time.Time) bool {
	for _, w := range waivers {
		if w.IsValidAt(asOf) {
			return true
		}
	}
	return false
}
