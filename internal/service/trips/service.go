package trips

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	storage "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
)

// Service сервис управления поездками
type Service struct {
	repo         TripRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(repo TripRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create создаёт поездку с фиксированной вместимостью.
// Вместимость задаётся один раз при создании и дальше не меняется.
func (s *Service) Create(ctx context.Context, title string, startsAt time.Time, capacity int) (*domain.Trip, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > domain.MaxTripTitleLength {
		return nil, fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxTripTitleLength)
	}
	if capacity < domain.MinTripCapacity || capacity > domain.MaxTripCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinTripCapacity, domain.MaxTripCapacity)
	}
	if startsAt.IsZero() {
		return nil, fmt.Errorf("%w: starts_at is required", ErrInvalidInput)
	}
	if !startsAt.After(s.timeProvider.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", ErrInvalidInput)
	}

	trip, err := s.repo.Create(ctx, &domain.Trip{
		Title:    title,
		StartsAt: startsAt,
		Capacity: capacity,
	})
	if err != nil {
		s.logger.Error("[TripsService.Create] Failed to create trip: title=%s, error=%v", title, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[TripsService.Create] Trip created: id=%d, title=%s, capacity=%d", trip.ID, trip.Title, trip.Capacity)

	return trip, nil
}

// GetByID возвращает поездку по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: trip id must be positive", ErrInvalidInput)
	}

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTripNotFound) {
			s.logger.Warn("[TripsService.GetByID] Trip not found: id=%d", id)
			return nil, ErrTripNotFound
		}
		s.logger.Error("[TripsService.GetByID] Failed to get trip: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return trip, nil
}
