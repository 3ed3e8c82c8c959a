package update_payment_status

import (
	"context"

	"github.com/m04kA/SMC-DiveTripService/internal/service/bookings/models"
)

type BookingService interface {
	MarkPaid(ctx context.Context, id int64) (*models.Booking, error)
	MarkRefunded(ctx context.Context, id int64) (*models.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
