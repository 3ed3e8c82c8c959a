package get_trip_availability

import (
	"context"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	CountActiveByTrip(ctx context.Context, tripID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
