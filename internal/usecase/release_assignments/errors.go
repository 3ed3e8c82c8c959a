package release_assignments

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("release_assignments: trip not found")

	// ErrBusy возвращается, когда блокировку поездки не удалось получить
	// за отведённое время; вызывающий может повторить запрос
	ErrBusy = errors.New("release_assignments: trip is busy, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_assignments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_assignments: internal error")
)
