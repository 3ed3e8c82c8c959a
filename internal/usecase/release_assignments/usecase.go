package release_assignments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/events"
	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
	"github.com/m04kA/SMC-DiveTripService/pkg/txmanager"
)

// UseCase use case освобождения мест на поездке
//
// Операция идемпотентна: дайверы без активного назначения пропускаются,
// повторный вызов с тем же составом не является ошибкой. Из-за вместимости
// освобождение провалиться не может
type UseCase struct {
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
	tripRepo TripRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	lockWait time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		tripRepo:       tripRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		publisher:      publisher,
		timeProvider:   &RealTimeProvider{},
		lockWait:       lockWait,
		logger:         logger,
	}
}

// Execute освобождает активные назначения указанных дайверов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseAssignments: trip=%d, party=%v", req.TripID, req.DiverIDs)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReleaseAssignments: validation failed: %v", err)
		return nil, err
	}

	var released []int64

	// Освобождение сериализуется с резервированием той же блокировкой
	// строки поездки, чтобы счётчик мест менялся атомарно
	txCtx, cancel := context.WithTimeout(ctx, uc.lockWait)
	defer cancel()

	err := uc.txManager.DoSerializable(txCtx, func(txCtx context.Context) error {
		if _, err := uc.tripRepo.GetByIDForUpdate(txCtx, req.TripID); err != nil {
			if errors.Is(err, tripRepo.ErrTripNotFound) {
				return ErrTripNotFound
			}
			return fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		}

		var err error
		released, err = uc.assignmentRepo.ReleaseBatch(txCtx, req.TripID, req.DiverIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to release assignments: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if txmanager.IsBusy(err) {
			uc.logger.Warn("ReleaseAssignments: trip=%d lock not acquired within %s", req.TripID, uc.lockWait)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("ReleaseAssignments: trip=%d, released %d of %d requested",
		req.TripID, len(released), len(req.DiverIDs))

	// События fire-and-forget
	releasedAt := uc.timeProvider.Now()
	for _, diverID := range released {
		if err := uc.publisher.PublishAssignmentReleased(ctx, events.AssignmentReleased{
			TripID:     req.TripID,
			DiverID:    diverID,
			ReleasedAt: releasedAt,
		}); err != nil {
			uc.logger.Warn("ReleaseAssignments: failed to publish AssignmentReleased for diver=%d: %v", diverID, err)
		}
	}

	return &Response{
		TripID:   req.TripID,
		Released: released,
	}, nil
}
