package record_waiver

import (
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// RecordWaiverRequest HTTP request model
// SignedAt и ExpiresAt в формате RFC3339; пустой SignedAt = текущее время
type RecordWaiverRequest struct {
	SignedAt  *string `json:"signedAt,omitempty"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
}

// WaiverResponse HTTP response model
type WaiverResponse struct {
	ID        int64   `json:"id"`
	DiverID   int64   `json:"diverId"`
	SignedAt  string  `json:"signedAt"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ParseTimes разбирает временные поля запроса
func (r *RecordWaiverRequest) ParseTimes() (signedAt time.Time, expiresAt *time.Time, err error) {
	if r.SignedAt != nil {
		signedAt, err = time.Parse(time.RFC3339, *r.SignedAt)
		if err != nil {
			return time.Time{}, nil, err
		}
	}

	if r.ExpiresAt != nil {
		parsed, parseErr := time.Parse(time.RFC3339, *r.ExpiresAt)
		if parseErr != nil {
			return time.Time{}, nil, parseErr
		}
		expiresAt = &parsed
	}

	return signedAt, expiresAt, nil
}

// FromDomainWaiver конвертирует доменную модель в HTTP response
func FromDomainWaiver(w *domain.Waiver) *WaiverResponse {
	resp := &WaiverResponse{
		ID:        w.ID,
		DiverID:   w.DiverID,
		SignedAt:  w.SignedAt.Format(time.RFC3339),
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
	if w.ExpiresAt != nil {
		expiresAt := w.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &expiresAt
	}

	return resp
}
