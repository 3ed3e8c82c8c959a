package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64
	Reason    *string // Причина отмены (опционально)
}
