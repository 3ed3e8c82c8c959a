package assignments

import "errors"

var (
	// ErrTripNotFound поездка не найдена
	ErrTripNotFound = errors.New("trip not found")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
