package record_waiver

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/domain"
)

type WaiverService interface {
	RecordSignature(ctx context.Context, diverID int64, signedAt time.Time, expiresAt *time.Time) (*domain.Waiver, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
