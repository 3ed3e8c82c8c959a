package create_booking

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("create_booking: trip not found")

	// ErrAlreadyAssigned возвращается, когда дайвер из группы уже занимает
	// место на этой поездке
	ErrAlreadyAssigned = errors.New("create_booking: diver already assigned to this trip")

	// ErrWaiverMissing возвращается, когда у дайвера из группы нет
	// действующей подписи отказа от ответственности
	ErrWaiverMissing = errors.New("create_booking: diver has no valid waiver")

	// ErrCapacityExceeded возвращается, когда свободных мест меньше размера группы
	ErrCapacityExceeded = errors.New("create_booking: not enough free seats")

	// ErrBusy возвращается, когда поездка занята конкурирующей операцией
	ErrBusy = errors.New("create_booking: trip is busy, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
