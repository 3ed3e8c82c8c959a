package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	storage "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DiveTripService/internal/service/bookings/models"
	"github.com/m04kA/SMC-DiveTripService/pkg/txmanager"
)

// Service сервис чтения бронирований и управления статусом оплаты
type Service struct {
	repo      BookingRepository
	txManager TransactionManager
	publisher EventPublisher
	logger    Logger
}

func NewService(repo BookingRepository, txManager TransactionManager, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("[BookingsService.GetByID] Booking not found: id=%d", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("[BookingsService.GetByID] Failed to get booking: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByDiver возвращает бронирования, в которых участвует дайвер
func (s *Service) GetByDiver(ctx context.Context, diverID int64, status *domain.BookingStatus) ([]*models.Booking, error) {
	if diverID <= 0 {
		return nil, fmt.Errorf("%w: diver id must be positive", ErrInvalidInput)
	}

	list, err := s.repo.GetByDiver(ctx, diverID, status)
	if err != nil {
		s.logger.Error("[BookingsService.GetByDiver] Failed to list bookings: diver_id=%d, error=%v", diverID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(list), nil
}

// MarkPaid переводит оплату бронирования в статус paid.
// Переход разрешён только из unpaid и только для неотменённого бронирования.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*models.Booking, error) {
	return s.updatePaymentStatus(ctx, id, domain.PaymentPaid)
}

// MarkRefunded переводит оплату бронирования в статус refunded.
// Переход разрешён только из paid.
func (s *Service) MarkRefunded(ctx context.Context, id int64) (*models.Booking, error) {
	return s.updatePaymentStatus(ctx, id, domain.PaymentRefunded)
}

func (s *Service) updatePaymentStatus(ctx context.Context, id int64, to domain.PaymentStatus) (*models.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	var updated *domain.Booking
	var fromStatus domain.PaymentStatus

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("get booking: %w", err)
		}

		if !booking.CanTransitionPayment(to) {
			s.logger.Warn("[BookingsService.updatePaymentStatus] Invalid transition: id=%d, from=%s, to=%s, booking_status=%s",
				id, booking.PaymentStatus, to, booking.Status)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.PaymentStatus, to)
		}

		fromStatus = booking.PaymentStatus

		if err := s.repo.UpdatePaymentStatus(ctx, id, to); err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}

		booking.PaymentStatus = to
		updated = booking

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		if txmanager.IsBusy(err) {
			s.logger.Warn("[BookingsService.updatePaymentStatus] Booking busy: id=%d, error=%v", id, err)
			return nil, ErrBusy
		}
		s.logger.Error("[BookingsService.updatePaymentStatus] Failed: id=%d, to=%s, error=%v", id, to, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[BookingsService.updatePaymentStatus] Payment status changed: booking_id=%d, from=%s, to=%s",
		id, fromStatus, to)

	if pubErr := s.publisher.PublishPaymentStatusChanged(ctx, events.PaymentStatusChanged{
		BookingID: updated.ID,
		TripID:    updated.TripID,
		OldStatus: string(fromStatus),
		NewStatus: string(to),
		ChangedAt: updated.UpdatedAt,
	}); pubErr != nil {
		s.logger.Warn("[BookingsService.updatePaymentStatus] Failed to publish event: booking_id=%d, error=%v", id, pubErr)
	}

	return models.FromDomainBooking(updated), nil
}
