package reserve_assignments

import "time"

// Request модель запроса на резервирование мест
type Request struct {
	TripID   int64     // ID поездки
	DiverIDs []int64   // Группа дайверов, назначается целиком или никак
	AsOf     time.Time // Момент проверки валидности подписей; нулевое значение = текущее время
}

// AssignedDiver информация о созданном назначении
type AssignedDiver struct {
	AssignmentID int64
	DiverID      int64
	CreatedAt    time.Time
}

// Response модель ответа с созданными назначениями
type Response struct {
	TripID    int64
	Assigned  []AssignedDiver // В порядке создания
	SeatsLeft int             // Свободные места после резервирования
}
