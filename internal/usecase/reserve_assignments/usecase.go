package reserve_assignments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
	"github.com/m04kA/SMC-DiveTripService/pkg/txmanager"
)

// UseCase use case резервирования мест на поездке для группы дайверов
//
// Вся проверка и запись выполняются атомарно под блокировкой строки поездки:
// конкурирующие запросы на последние места сериализуются, побеждает тот,
// чья транзакция зафиксировалась первой. Проигравший получает
// ErrCapacityExceeded; usecase сам никогда не повторяет попытку
type UseCase struct {
	tripRepo       TripRepository
	assignmentRepo AssignmentRepository
	waiverRepo     WaiverRepository
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
	waiverRepo WaiverRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	lockWait time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		tripRepo:       tripRepo,
		assignmentRepo: assignmentRepo,
		waiverRepo:     waiverRepo,
		txManager:      txManager,
		publisher:      publisher,
		timeProvider:   &RealTimeProvider{},
		lockWait:       lockWait,
		logger:         logger,
	}
}

// Execute выполняет резервирование: вся группа назначается целиком или никак
//
// Порядок проверок фиксированный:
//  1. ни один дайвер группы не имеет активного назначения на поездку
//  2. каждый дайвер имеет действующую подпись отказа на момент AsOf
//  3. свободных мест хватает на всю группу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveAssignments: trip=%d, party=%v", req.TripID, req.DiverIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveAssignments: validation failed: %v", err)
		return nil, err
	}

	// 2. Момент проверки валидности подписей
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = uc.timeProvider.Now()
	}

	var created []*domain.Assignment
	var seatsLeft int

	// 3. Ограничиваем ожидание блокировки поездки: лучше вернуть Busy,
	// чем держать запрос в очереди за блокировкой неограниченно долго
	txCtx, cancel := context.WithTimeout(ctx, uc.lockWait)
	defer cancel()

	err := uc.txManager.DoSerializable(txCtx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку поездки - единица взаимного исключения
		trip, err := uc.tripRepo.GetByIDForUpdate(txCtx, req.TripID)
		if err != nil {
			if errors.Is(err, tripRepo.ErrTripNotFound) {
				return ErrTripNotFound
			}
			return fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		}

		// 3.2. Активные назначения под той же блокировкой
		active, err := uc.assignmentRepo.GetActiveByTrip(txCtx, req.TripID)
		if err != nil {
			return fmt.Errorf("%w: failed to get active assignments: %v", ErrInternal, err)
		}

		// 3.3. Проверка на повторное назначение
		activeDivers := make(map[int64]bool, len(active))
		for _, a := range active {
			activeDivers[a.DiverID] = true
		}
		for _, diverID := range req.DiverIDs {
			if activeDivers[diverID] {
				uc.logger.Warn("ReserveAssignments: diver=%d already assigned to trip=%d", diverID, req.TripID)
				return fmt.Errorf("%w: diver %d", ErrAlreadyAssigned, diverID)
			}
		}

		// 3.4. Проверка подписей отказов для всей группы
		for _, diverID := range req.DiverIDs {
			waivers, err := uc.waiverRepo.GetByDiver(txCtx, diverID)
			if err != nil {
				return fmt.Errorf("%w: failed to get waivers for diver %d: %v", ErrInternal, diverID, err)
			}
			if !domain.HasValidWaiver(waivers, asOf) {
				uc.logger.Warn("ReserveAssignments: diver=%d has no valid waiver as of %s", diverID, asOf)
				return fmt.Errorf("%w: diver %d", ErrWaiverMissing, diverID)
			}
		}

		// 3.5. Проверка вместимости для всей группы целиком
		if !trip.HasFreeSeats(len(active), len(req.DiverIDs)) {
			uc.logger.Warn("ReserveAssignments: trip=%d capacity exceeded, %d/%d seats taken, requested %d",
				req.TripID, len(active), trip.Capacity, len(req.DiverIDs))
			return ErrCapacityExceeded
		}

		// 3.6. Создаем назначения одной вставкой
		created, err = uc.assignmentRepo.CreateBatch(txCtx, req.TripID, req.DiverIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to create assignments: %v", ErrInternal, err)
		}

		seatsLeft = trip.SeatsLeft(len(active) + len(created))
		return nil
	})

	if err != nil {
		if txmanager.IsBusy(err) {
			uc.logger.Warn("ReserveAssignments: trip=%d lock not acquired within %s", req.TripID, uc.lockWait)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("ReserveAssignments: trip=%d, assigned %d divers, %d seats left",
		req.TripID, len(created), seatsLeft)

	// 4. События fire-and-forget: ошибка публикации не откатывает резервирование
	for _, a := range created {
		if err := uc.publisher.PublishAssignmentCreated(ctx, events.AssignmentCreated{
			AssignmentID: a.ID,
			TripID:       a.TripID,
			DiverID:      a.DiverID,
			CreatedAt:    a.CreatedAt,
		}); err != nil {
			uc.logger.Warn("ReserveAssignments: failed to publish AssignmentCreated for diver=%d: %v", a.DiverID, err)
		}
	}

	// Конвертируем в response
	resp := &Response{
		TripID:    req.TripID,
		Assigned:  make([]AssignedDiver, len(created)),
		SeatsLeft: seatsLeft,
	}
	for i, a := range created {
		resp.Assigned[i] = AssignedDiver{
			AssignmentID: a.ID,
			DiverID:      a.DiverID,
			CreatedAt:    a.CreatedAt,
		}
	}

	return resp, nil
}
