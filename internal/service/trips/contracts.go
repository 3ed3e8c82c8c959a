package trips

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
