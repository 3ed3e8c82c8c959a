package waivers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

// WaiverRepository интерфейс реестра страховых расписок
type WaiverRepository interface {
	Create(ctx context.Context, waiver *domain.Waiver) (*domain.Waiver, error)
	GetByDiver(ctx context.Context, diverID int64) ([]*domain.Waiver, error)
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
