package create_trip

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

type TripService interface {
	Create(ctx context.Context, title string, startsAt time.Time, capacity int) (*domain.Trip, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
