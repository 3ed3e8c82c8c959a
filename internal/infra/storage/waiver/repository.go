package waiver

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DiveTripService/pkg/psqlbuilder"
)

// Repository append-only журнал подписей отказов от ответственности
// Подписи никогда не обновляются и не удаляются: более поздняя подпись
// заменяет предыдущую только на уровне проверки валидности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает событие подписи отказа
func (r *Repository) Create(ctx context.Context, waiver *domain.Waiver) (*domain.Waiver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("waivers").
		Columns(
			"diver_id",
			"signed_at",
			"expires_at",
		).
		Values(
			waiver.DiverID,
			waiver.SignedAt,
			waiver.ExpiresAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&waiver.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	waiver.CreatedAt = createdAt.Time

	return waiver, nil
}

// GetByDiver получает все подписи дайвера (новые первыми)
// Чистое чтение без побочных эффектов
func (r *Repository) GetByDiver(ctx context.Context, diverID int64) ([]*domain.Waiver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"diver_id",
		"signed_at",
		"expires_at",
		"created_at",
	).
		From("waivers").
		Where(squirrel.Eq{"diver_id": diverID}).
		OrderBy("signed_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDiver - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDiver - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	waivers := make([]*domain.Waiver, 0)

	for rows.Next() {
		var waiver domain.Waiver
		var createdAt sql.NullTime

		err := rows.Scan(
			&waiver.ID,
			&waiver.DiverID,
			&waiver.SignedAt,
			&waiver.ExpiresAt,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByDiver - scan row: %v", ErrScanRow, err)
		}

		waiver.CreatedAt = createdAt.Time
		waivers = append(waivers, &waiver)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDiver - rows error: %v", ErrScanRow, err)
	}

	return waivers, nil
}
