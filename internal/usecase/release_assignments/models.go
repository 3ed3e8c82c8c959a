package release_assignments

// Request модель запроса на освобождение мест
type Request struct {
	TripID   int64   // ID поездки
	DiverIDs []int64 // Дайверы, чьи назначения нужно освободить
}

// Response модель ответа
type Response struct {
	TripID   int64
	Released []int64 // Дайверы, чьи назначения были фактически освобождены
}
