package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	releaseAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/release_assignments"
	reserveAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/reserve_assignments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
}

// ReserveAssignmentsUseCase интерфейс резервирования мест
// Координатор бронирований делегирует учёт мест менеджеру назначений
// и сам никогда не пишет в журнал назначений
type ReserveAssignmentsUseCase interface {
	Execute(ctx context.Context, req *reserveAssignments.Request) (*reserveAssignments.Response, error)
}

// ReleaseAssignmentsUseCase интерфейс освобождения мест
// Используется для компенсации, если бронирование не удалось подтвердить
type ReleaseAssignmentsUseCase interface {
	Execute(ctx context.Context, req *releaseAssignments.Request) (*releaseAssignments.Response, error)
}

// EventPublisher интерфейс отправки событий во внешний sink
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmed) error
	PublishBookingCancelled(ctx context.Context, event events.BookingCancelled) error
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
