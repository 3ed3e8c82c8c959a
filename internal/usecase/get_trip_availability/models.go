package get_trip_availability

import "time"

// Request модель запроса доступности поездки
type Request struct {
	TripID int64
}

// Response модель ответа с доступностью поездки
type Response struct {
	TripID      int64
	Title       string
	StartsAt    time.Time
	Capacity    int
	ActiveCount int // Занятые места = активные назначения
	SeatsLeft   int
}
