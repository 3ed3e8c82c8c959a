package waivers

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// Service сервис реестра страховых расписок.
// Реестр append-only: новая подпись не изменяет и не удаляет предыдущие,
// действующей считается любая запись, валидная на момент проверки.
type Service struct {
	repo         WaiverRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(repo WaiverRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RecordSignature регистрирует подпись расписки дайвером.
// Если signedAt нулевое, используется текущее время.
func (s *Service) RecordSignature(ctx context.Context, diverID int64, signedAt time.Time, expiresAt *time.Time) (*domain.Waiver, error) {
	if diverID <= 0 {
		return nil, fmt.Errorf("%w: diver id must be positive", ErrInvalidInput)
	}

	if signedAt.IsZero() {
		signedAt = s.timeProvider.Now()
	}

	if expiresAt != nil && !expiresAt.After(signedAt) {
		return nil, fmt.Errorf("%w: expiration must be after signing time", ErrInvalidInput)
	}

	waiver, err := s.repo.Create(ctx, &domain.Waiver{
		DiverID:   diverID,
		SignedAt:  signedAt,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		s.logger.Error("[WaiversService.RecordSignature] Failed to create waiver: diver_id=%d, error=%v", diverID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[WaiversService.RecordSignature] Waiver recorded: id=%d, diver_id=%d, signed_at=%s",
		waiver.ID, diverID, signedAt.Format(time.RFC3339))

	return waiver, nil
}

// HasValidWaiver проверяет, есть ли у дайвера расписка, действующая на момент asOf
func (s *Service) HasValidWaiver(ctx context.Context, diverID int64, asOf time.Time) (bool, error) {
	if diverID <= 0 {
		return false, fmt.Errorf("%w: diver id must be positive", ErrInvalidInput)
	}

	if asOf.IsZero() {
		asOf = s.timeProvider.Now()
	}

	list, err := s.repo.GetByDiver(ctx, diverID)
	if err != nil {
		s.logger.Error("[WaiversService.HasValidWaiver] Failed to get waivers: diver_id=%d, error=%v", diverID, err)
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return domain.HasValidWaiver(list, asOf), nil
}
