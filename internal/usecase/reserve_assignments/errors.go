package reserve_assignments

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("reserve_assignments: trip not found")

	// ErrAlreadyAssigned возвращается, когда дайвер из группы уже имеет
	// активное назначение на эту поездку
	ErrAlreadyAssigned = errors.New("reserve_assignments: diver already assigned to this trip")

	// ErrWaiverMissing возвращается, когда у дайвера нет действующей подписи
	// отказа от ответственности на момент бронирования
	ErrWaiverMissing = errors.New("reserve_assignments: diver has no valid waiver")

	// ErrCapacityExceeded возвращается, когда свободных мест меньше размера группы
	ErrCapacityExceeded = errors.New("reserve_assignments: not enough free seats")

	// ErrBusy возвращается, когда блокировку поездки не удалось получить
	// за отведённое время; вызывающий может повторить запрос
	ErrBusy = errors.New("reserve_assignments: trip is busy, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_assignments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_assignments: internal error")
)
