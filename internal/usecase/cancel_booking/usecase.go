package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	bookingRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/booking"
	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
	"github.com/m04kA/SMC-DiveTripService/pkg/txmanager"
)

// UseCase use case отмены бронирования
//
// Освобождение мест группы и перевод бронирования в cancelled выполняются
// в одной транзакции под блокировкой строки поездки: журнал назначений
// и статус бронирования не могут разойтись. Отмена идемпотентного
// освобождения никогда не проваливается частично
type UseCase struct {
	bookingRepo    BookingRepository
	tripRepo       TripRepository
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	publisher      EventPublisher
	timeProvider   TimeProvider
	lockWait       time.Duration
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	lockWait time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		tripRepo:       tripRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		publisher:      publisher,
		timeProvider:   &RealTimeProvider{},
		lockWait:       lockWait,
		logger:         logger,
	}
}

// Execute отменяет бронирование и освобождает места всей группы
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	var cancelled *domain.Booking
	var released []int64

	txCtx, cancel := context.WithTimeout(ctx, uc.lockWait)
	defer cancel()

	err := uc.txManager.DoSerializable(txCtx, func(txCtx context.Context) error {
		// Внутри транзакции GetByID блокирует строку бронирования,
		// конкурирующая отмена увидит уже отменённое бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Отмена терминальна: повторная отмена - ошибка, состояние не меняется
		if booking.IsCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", req.BookingID)
			return ErrAlreadyCancelled
		}

		// Блокируем поездку - освобождение мест сериализуется
		// с конкурирующим резервированием
		if _, err := uc.tripRepo.GetByIDForUpdate(txCtx, booking.TripID); err != nil {
			if errors.Is(err, tripRepo.ErrTripNotFound) {
				return fmt.Errorf("%w: trip %d not found for booking %d", ErrInternal, booking.TripID, booking.ID)
			}
			return fmt.Errorf("%w: failed to lock trip: %v", ErrInternal, err)
		}

		released, err = uc.assignmentRepo.ReleaseBatch(txCtx, booking.TripID, booking.PartyDiverIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to release assignments: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.Cancel(txCtx, booking.ID, req.Reason); err != nil {
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		cancelled = booking
		return nil
	})

	if err != nil {
		if txmanager.IsBusy(err) {
			uc.logger.Warn("CancelBooking: booking=%d lock not acquired within %s", req.BookingID, uc.lockWait)
			return ErrBusy
		}
		return err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, released %d seats on trip=%d",
		cancelled.ID, len(released), cancelled.TripID)

	// События fire-and-forget
	now := uc.timeProvider.Now()
	for _, diverID := range released {
		if err := uc.publisher.PublishAssignmentReleased(ctx, events.AssignmentReleased{
			TripID:     cancelled.TripID,
			DiverID:    diverID,
			ReleasedAt: now,
		}); err != nil {
			uc.logger.Warn("CancelBooking: failed to publish AssignmentReleased for diver=%d: %v", diverID, err)
		}
	}

	if err := uc.publisher.PublishBookingCancelled(ctx, events.BookingCancelled{
		BookingID:   cancelled.ID,
		TripID:      cancelled.TripID,
		Reason:      req.Reason,
		CancelledAt: now,
	}); err != nil {
		uc.logger.Warn("CancelBooking: failed to publish BookingCancelled for id=%d: %v", cancelled.ID, err)
	}

	return nil
}
