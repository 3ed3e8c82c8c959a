package get_trip_availability

import (
	"context"

	getTripAvailability "github.com/m04kA/SMC-DiveTripService/internal/usecase/get_trip_availability"
)

type GetTripAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getTripAvailability.Request) (*getTripAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
