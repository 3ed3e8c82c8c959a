package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DiveTripService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// Repository репозиторий журнала назначений дайверов на поездки
// Записи не удаляются физически: освобождение места переводит строку
// в статус released, история сохраняется для аудита
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает активные назначения для группы дайверов одной вставкой
// Вызывается только внутри транзакции, удерживающей блокировку строки поездки.
// Частичный уникальный индекс (trip_id, diver_id) WHERE status = 'active'
// страхует от двойного активного назначения, если вызывающий код нарушил
// дисциплину блокировок
func (r *Repository) CreateBatch(ctx context.Context, tripID int64, diverIDs []int64) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("assignments").
		Columns(
			"trip_id",
			"diver_id",
			"status",
		)

	for _, diverID := range diverIDs {
		insertBuilder = insertBuilder.Values(tripID, diverID, domain.AssignmentActive)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, diver_id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateActive
		}
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	created := make([]*domain.Assignment, 0, len(diverIDs))
	for rows.Next() {
		assignment := &domain.Assignment{
			TripID: tripID,
			Status: domain.AssignmentActive,
		}
		var createdAt sql.NullTime

		if err := rows.Scan(&assignment.ID, &assignment.DiverID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan row: %v", ErrScanRow, err)
		}

		assignment.CreatedAt = createdAt.Time
		created = append(created, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	return created, nil
}

// ReleaseBatch переводит активные назначения указанных дайверов в released
// Дайверы без активного назначения молча пропускаются - операция идемпотентна.
// Возвращает ID дайверов, чьи назначения были фактически освобождены
func (r *Repository) ReleaseBatch(ctx context.Context, tripID int64, diverIDs []int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("assignments").
		Set("status", domain.AssignmentReleased).
		Set("released_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"trip_id":  tripID,
			"diver_id": diverIDs,
			"status":   domain.AssignmentActive,
		}).
		Suffix("RETURNING diver_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseBatch - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseBatch - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	released := make([]int64, 0, len(diverIDs))
	for rows.Next() {
		var diverID int64
		if err := rows.Scan(&diverID); err != nil {
			return nil, fmt.Errorf("%w: ReleaseBatch - scan diver_id: %v", ErrScanRow, err)
		}
		released = append(released, diverID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReleaseBatch - rows error: %v", ErrScanRow, err)
	}

	return released, nil
}

// GetActiveByTrip получает активные назначения поездки
// Порядок стабильный - по времени создания (старые первыми)
func (r *Repository) GetActiveByTrip(ctx context.Context, tripID int64) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"trip_id",
		"diver_id",
		"status",
		"created_at",
		"released_at",
	).
		From("assignments").
		Where(squirrel.Eq{
			"trip_id": tripID,
			"status":  domain.AssignmentActive,
		}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTrip - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTrip - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAssignments(rows)
}

// CountActiveByTrip возвращает количество активных назначений поездки
// Количество занятых мест всегда вычисляется из журнала назначений,
// отдельный счётчик нигде не хранится и расходиться не может
func (r *Repository) CountActiveByTrip(ctx context.Context, tripID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("assignments").
		Where(squirrel.Eq{
			"trip_id": tripID,
			"status":  domain.AssignmentActive,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByTrip - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByTrip - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanAssignments сканирует результаты запроса в слайс назначений
func (r *Repository) scanAssignments(rows *sql.Rows) ([]*domain.Assignment, error) {
	assignments := make([]*domain.Assignment, 0)

	for rows.Next() {
		var assignment domain.Assignment
		var createdAt sql.NullTime

		err := rows.Scan(
			&assignment.ID,
			&assignment.TripID,
			&assignment.DiverID,
			&assignment.Status,
			&createdAt,
			&assignment.ReleasedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAssignments - scan row: %v", ErrScanRow, err)
		}

		assignment.CreatedAt = createdAt.Time
		assignments = append(assignments, &assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}
