package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TripID <= 0 {
		return fmt.Errorf("%w: tripID must be positive", ErrInvalidInput)
	}

	if len(req.PartyDiverIDs) < domain.MinPartySize {
		return fmt.Errorf("%w: party must not be empty", ErrInvalidInput)
	}

	if len(req.PartyDiverIDs) > domain.MaxPartySize {
		return fmt.Errorf("%w: party size %d exceeds maximum %d", ErrInvalidInput, len(req.PartyDiverIDs), domain.MaxPartySize)
	}

	seen := make(map[int64]bool, len(req.PartyDiverIDs))
	for _, diverID := range req.PartyDiverIDs {
		if diverID <= 0 {
			return fmt.Errorf("%w: diverID must be positive", ErrInvalidInput)
		}
		if seen[diverID] {
			return fmt.Errorf("%w: duplicate diverID %d in party", ErrInvalidInput, diverID)
		}
		seen[diverID] = true
	}

	return nil
}
