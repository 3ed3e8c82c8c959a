package get_trip_availability

import (
	"context"
	"errors"
	"fmt"

	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
)

// UseCase use case получения доступности поездки
// Чистое чтение: занятые места всегда вычисляются из журнала назначений,
// поэтому ответ не может разойтись с фактическим состоянием
type UseCase struct {
	tripRepo       TripRepository
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tripRepo TripRepository,
	assignmentRepo AssignmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tripRepo:       tripRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Execute возвращает вместимость и количество свободных мест поездки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TripID <= 0 {
		return nil, fmt.Errorf("%w: tripID must be positive", ErrInvalidInput)
	}

	trip, err := uc.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			uc.logger.Warn("GetTripAvailability: trip id=%d not found", req.TripID)
			return nil, ErrTripNotFound
		}
		uc.logger.Error("GetTripAvailability: failed to get trip id=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
	}

	activeCount, err := uc.assignmentRepo.CountActiveByTrip(ctx, req.TripID)
	if err != nil {
		uc.logger.Error("GetTripAvailability: failed to count assignments for trip id=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to count active assignments: %v", ErrInternal, err)
	}

	return &Response{
		TripID:      trip.ID,
		Title:       trip.Title,
		StartsAt:    trip.StartsAt,
		Capacity:    trip.Capacity,
		ActiveCount: activeCount,
		SeatsLeft:   trip.SeatsLeft(activeCount),
	}, nil
}
