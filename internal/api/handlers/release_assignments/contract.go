package release_assignments

import (
	"context"

	releaseAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/release_assignments"
)

type ReleaseAssignmentsUseCase interface {
	Execute(ctx context.Context, req *releaseAssignments.Request) (*releaseAssignments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
