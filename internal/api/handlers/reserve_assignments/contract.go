package reserve_assignments

import (
	"context"

	reserveAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/reserve_assignments"
)

type ReserveAssignmentsUseCase interface {
	Execute(ctx context.Context, req *reserveAssignments.Request) (*reserveAssignments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
