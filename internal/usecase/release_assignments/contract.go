package release_assignments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Trip, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	ReleaseBatch(ctx context.Context, tripID int64, diverIDs []int64) ([]int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс отправки событий во внешний sink
type EventPublisher interface {
	PublishAssignmentReleased(ctx context.Context, event events.AssignmentReleased) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
