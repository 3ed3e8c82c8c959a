package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaiverIsValidAt(t *testing.T) {
	signed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		waiver Waiver
		asOf   time.Time
		want   bool
	}{
		{
			name:   "signed before asOf, no expiry",
			waiver: Waiver{SignedAt: signed},
			asOf:   signed.AddDate(0, 1, 0),
			want:   true,
		},
		{
			name:   "signed exactly at asOf",
			waiver: Waiver{SignedAt: signed},
			asOf:   signed,
			want:   true,
		},
		{
			name:   "signed after asOf",
			waiver: Waiver{SignedAt: signed},
			asOf:   signed.Add(-time.Hour),
			want:   false,
		},
		{
			name:   "expiry after asOf",
			waiver: Waiver{SignedAt: signed, ExpiresAt: &expiry},
			asOf:   expiry.Add(-time.Hour),
			want:   true,
		},
		{
			name:   "expiry exactly at asOf is no longer valid",
			waiver: Waiver{SignedAt: signed, ExpiresAt: &expiry},
			asOf:   expiry,
			want:   false,
		},
		{
			name:   "expired before asOf",
			waiver: Waiver{SignedAt: signed, ExpiresAt: &expiry},
			asOf:   expiry.Add(time.Hour),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.waiver.IsValidAt(tt.asOf))
		})
	}
}

// Валидность подписи меняется только из-за явной подписи/истечения срока,
// не из-за порядка вызовов: если подпись валидна в t1 и срок не истёк к t2,
// она валидна и в t2.
func TestWaiverValidityMonotonic(t *testing.T) {
	signed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, 12, 1, 12, 0, 0, 0, time.UTC)
	w := &Waiver{DiverID: 7, SignedAt: signed, ExpiresAt: &expiry}

	t1 := signed.Add(24 * time.Hour)
	assert.True(t, w.IsValidAt(t1))

	for t2 := t1; t2.Before(expiry); t2 = t2.Add(7 * 24 * time.Hour) {
		assert.True(t, w.IsValidAt(t2), "expected waiver valid at %s", t2)
	}
}

func TestHasValidWaiver(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	expired := base.Add(24 * time.Hour)

	t.Run("no signatures", func(t *testing.T) {
		assert.False(t, HasValidWaiver(nil, base))
	})

	t.Run("later signature supersedes expired one", func(t *testing.T) {
		waivers := []*Waiver{
			{SignedAt: base.AddDate(-1, 0, 0), ExpiresAt: &expired},
			{SignedAt: base},
		}
		assert.True(t, HasValidWaiver(waivers, expired.Add(time.Hour)))
	})

	t.Run("all signatures expired", func(t *testing.T) {
		waivers := []*Waiver{
			{SignedAt: base.AddDate(-1, 0, 0), ExpiresAt: &expired},
		}
		assert.False(t, HasValidWaiver(waivers, expired.Add(time.Hour)))
	})
}
