package txmanager

import (
	"context"
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, означающие проигрыш конкурентной борьбы за блокировку
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// IsBusy сообщает, что транзакция не смогла получить нужные блокировки
// за отведённое время: истёк дедлайн контекста либо PostgreSQL вернул
// ошибку сериализации/дедлока. Такие ошибки безопасно отдавать вызывающему
// как "занято, повторите" - данные не были изменены
func IsBusy(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return true
		}
	}

	return false
}
