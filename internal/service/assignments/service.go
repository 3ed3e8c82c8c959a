package assignments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	tripstorage "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
)

// Service сервис чтения журнала назначений
type Service struct {
	repo     AssignmentRepository
	tripRepo TripRepository
	logger   Logger
}

func NewService(repo AssignmentRepository, tripRepo TripRepository, logger Logger) *Service {
	return &Service{
		repo:     repo,
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// ListActive возвращает активные назначения поездки в порядке их создания
func (s *Service) ListActive(ctx context.Context, tripID int64) ([]*domain.Assignment, error) {
	if tripID <= 0 {
		return nil, fmt.Errorf("%w: trip id must be positive", ErrInvalidInput)
	}

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, tripstorage.ErrTripNotFound) {
			s.logger.Warn("[AssignmentsService.ListActive] Trip not found: trip_id=%d", tripID)
			return nil, ErrTripNotFound
		}
		s.logger.Error("[AssignmentsService.ListActive] Failed to get trip: trip_id=%d, error=%v", tripID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	list, err := s.repo.GetActiveByTrip(ctx, tripID)
	if err != nil {
		s.logger.Error("[AssignmentsService.ListActive] Failed to list assignments: trip_id=%d, error=%v", tripID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return list, nil
}
