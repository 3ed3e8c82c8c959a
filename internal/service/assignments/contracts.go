package assignments

import (
	"context"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// AssignmentRepository интерфейс журнала назначений
type AssignmentRepository interface {
	GetActiveByTrip(ctx context.Context, tripID int64) ([]*domain.Assignment, error)
	CountActiveByTrip(ctx context.Context, tripID int64) (int, error)
}

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
