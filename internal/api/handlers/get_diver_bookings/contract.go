package get_diver_bookings

import (
	"context"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/service/bookings/models"
)

type BookingService interface {
	GetByDiver(ctx context.Context, diverID int64, status *domain.BookingStatus) ([]*models.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
