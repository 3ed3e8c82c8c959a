package release_assignments

import (
	"fmt"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TripID <= 0 {
		return fmt.Errorf("%w: tripID must be positive", ErrInvalidInput)
	}

	if len(req.DiverIDs) == 0 {
		return fmt.Errorf("%w: diverIDs must not be empty", ErrInvalidInput)
	}

	if len(req.DiverIDs) > domain.MaxPartySize {
		return fmt.Errorf("%w: party size %d exceeds maximum %d", ErrInvalidInput, len(req.DiverIDs), domain.MaxPartySize)
	}

	for _, diverID := range req.DiverIDs {
		if diverID <= 0 {
			return fmt.Errorf("%w: diverID must be positive", ErrInvalidInput)
		}
	}

	return nil
}
