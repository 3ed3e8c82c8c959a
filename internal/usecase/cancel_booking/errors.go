package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	// Состояние бронирования при этом не меняется
	ErrAlreadyCancelled = errors.New("cancel_booking: booking is already cancelled")

	// ErrBusy возвращается, когда поездка занята конкурирующей операцией
	ErrBusy = errors.New("cancel_booking: trip is busy, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
