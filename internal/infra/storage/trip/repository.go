package trip

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DiveTripService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с поездками
// Строка поездки является единицей взаимного исключения при бронировании:
// все мутации мест берут блокировку через GetByIDForUpdate
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поездок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую поездку
// Вместимость фиксируется при создании и далее не меняется
func (r *Repository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trips").
		Columns(
			"title",
			"starts_at",
			"capacity",
		).
		Values(
			trip.Title,
			trip.StartsAt,
			trip.Capacity,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&trip.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	trip.CreatedAt = createdAt.Time
	trip.UpdatedAt = updatedAt.Time

	return trip, nil
}

// GetByID получает поездку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает поездку по ID с блокировкой строки (FOR UPDATE)
// Используется внутри транзакции для сериализации конкурирующих
// операций резервирования и освобождения мест на одной поездке
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Trip, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"title",
		"starts_at",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("trips").
		Where(squirrel.Eq{"id": id})

	// Блокировка имеет смысл только внутри транзакции
	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var trip domain.Trip
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&trip.ID,
		&trip.Title,
		&trip.StartsAt,
		&trip.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trip: %v", ErrScanRow, err)
	}

	trip.CreatedAt = createdAt.Time
	trip.UpdatedAt = updatedAt.Time

	return &trip, nil
}
