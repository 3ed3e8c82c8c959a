package domain

// Business validation constants
const (
	MinTripCapacity = 1
	MaxTripCapacity = 100

	MinPartySize = 1
	MaxPartySize = 20

	MaxTripTitleLength          = 200
	MaxCancellationReasonLength = 500
)

// ValidBookingStatuses список допустимых статусов бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ValidPaymentStatuses список допустимых статусов оплаты
var ValidPaymentStatuses = []PaymentStatus{
	PaymentUnpaid,
	PaymentPaid,
	PaymentRefunded,
}
