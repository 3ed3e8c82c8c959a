package list_assignments

import (
	"context"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

type AssignmentService interface {
	ListActive(ctx context.Context, tripID int64) ([]*domain.Assignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
