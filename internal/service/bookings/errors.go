package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidTransition недопустимый переход статуса оплаты
	ErrInvalidTransition = errors.New("invalid payment status transition")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrBusy бронирование заблокировано конкурирующей операцией
	ErrBusy = errors.New("booking is busy, try again later")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
