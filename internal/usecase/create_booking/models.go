package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	TripID        int64     // ID поездки
	PartyDiverIDs []int64   // Состав группы, назначается атомарно
	AsOf          time.Time // Момент проверки подписей; нулевое значение = текущее время
}

// Response модель ответа с созданным бронированием
// При отклонении резервирования Response содержит бронирование
// в статусе cancelled вместе с причиной отклонения в ошибке
type Response struct {
	ID            int64
	TripID        int64
	PartyDiverIDs []int64
	Status        string
	PaymentStatus string

	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
