package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	releaseAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/release_assignments"
	reserveAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/reserve_assignments"
	"github.com/m04kA/SMC-DiveTripService/pkg/ptr"
)

// UseCase use case создания бронирования поездки для группы дайверов
//
// Статус бронирования всегда согласован с журналом назначений синхронно,
// в рамках той же логической операции: бронирование подтверждается только
// после успешного резервирования всей группы, а при любом отклонении
// сразу фиксируется отменённым - в статусе pending оно не остаётся
type UseCase struct {
	bookingRepo  BookingRepository
	reserveUC    ReserveAssignmentsUseCase
	releaseUC    ReleaseAssignmentsUseCase
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reserveUC ReserveAssignmentsUseCase,
	releaseUC ReleaseAssignmentsUseCase,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		reserveUC:    reserveUC,
		releaseUC:    releaseUC,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// При отклонении резервирования возвращает Response с отменённым
// бронированием И типизированную ошибку отклонения: вызывающий видит
// и причину, и созданную запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: trip=%d, party=%v", req.TripID, req.PartyDiverIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем бронирование в статусе pending
	booking, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		TripID:        req.TripID,
		PartyDiverIDs: req.PartyDiverIDs,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 3. Резервируем места для всей группы атомарно
	_, reserveErr := uc.reserveUC.Execute(ctx, &reserveAssignments.Request{
		TripID:   req.TripID,
		DiverIDs: req.PartyDiverIDs,
		AsOf:     req.AsOf,
	})

	if reserveErr != nil {
		// Отклонение: немедленно фиксируем бронирование отменённым,
		// в pending оно не остаётся
		rejection := mapReserveError(reserveErr)
		reason := ptr.Ptr(rejection.Error())

		if cancelErr := uc.bookingRepo.Cancel(ctx, booking.ID, reason); cancelErr != nil {
			uc.logger.Error("CreateBooking: failed to cancel booking id=%d after rejection: %v",
				booking.ID, cancelErr)
			return nil, fmt.Errorf("%w: failed to cancel rejected booking: %v", ErrInternal, cancelErr)
		}

		uc.logger.Warn("CreateBooking: booking id=%d cancelled, reservation rejected: %v",
			booking.ID, reserveErr)

		booking.Status = domain.StatusCancelled
		booking.CancellationReason = reason

		uc.publishCancelled(ctx, booking)
		return toResponse(booking), rejection
	}

	// 4. Подтверждаем бронирование
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
		// Места уже заняты - компенсируем, иначе группа повиснет
		// на поездке без подтверждённого бронирования
		uc.logger.Error("CreateBooking: failed to confirm booking id=%d, releasing seats: %v",
			booking.ID, err)

		if _, relErr := uc.releaseUC.Execute(ctx, &releaseAssignments.Request{
			TripID:   req.TripID,
			DiverIDs: req.PartyDiverIDs,
		}); relErr != nil {
			uc.logger.Error("CreateBooking: compensation failed for booking id=%d: %v", booking.ID, relErr)
		}

		reason := ptr.Ptr("confirmation failed")
		if cancelErr := uc.bookingRepo.Cancel(ctx, booking.ID, reason); cancelErr != nil {
			uc.logger.Error("CreateBooking: failed to cancel booking id=%d: %v", booking.ID, cancelErr)
		}

		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed

	uc.logger.Info("CreateBooking: successfully created booking id=%d, trip=%d, party size=%d",
		booking.ID, booking.TripID, len(booking.PartyDiverIDs))

	// 5. Событие fire-and-forget
	if err := uc.publisher.PublishBookingConfirmed(ctx, events.BookingConfirmed{
		BookingID:     booking.ID,
		TripID:        booking.TripID,
		PartyDiverIDs: booking.PartyDiverIDs,
		ConfirmedAt:   uc.timeProvider.Now(),
	}); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish BookingConfirmed for id=%d: %v", booking.ID, err)
	}

	return toResponse(booking), nil
}

// publishCancelled отправляет событие отмены, игнорируя ошибки публикации
func (uc *UseCase) publishCancelled(ctx context.Context, booking *domain.Booking) {
	if err := uc.publisher.PublishBookingCancelled(ctx, events.BookingCancelled{
		BookingID:   booking.ID,
		TripID:      booking.TripID,
		Reason:      booking.CancellationReason,
		CancelledAt: uc.timeProvider.Now(),
	}); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish BookingCancelled for id=%d: %v", booking.ID, err)
	}
}

// mapReserveError конвертирует ошибки резервирования в ошибки usecase
func mapReserveError(err error) error {
	switch {
	case errors.Is(err, reserveAssignments.ErrTripNotFound):
		return ErrTripNotFound
	case errors.Is(err, reserveAssignments.ErrAlreadyAssigned):
		return ErrAlreadyAssigned
	case errors.Is(err, reserveAssignments.ErrWaiverMissing):
		return ErrWaiverMissing
	case errors.Is(err, reserveAssignments.ErrCapacityExceeded):
		return ErrCapacityExceeded
	case errors.Is(err, reserveAssignments.ErrBusy):
		return ErrBusy
	case errors.Is(err, reserveAssignments.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return fmt.Errorf("%w: reservation failed: %v", ErrInternal, err)
	}
}

// toResponse конвертирует domain модель в response
func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:                 booking.ID,
		TripID:             booking.TripID,
		PartyDiverIDs:      booking.PartyDiverIDs,
		Status:             string(booking.Status),
		PaymentStatus:      string(booking.PaymentStatus),
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}
