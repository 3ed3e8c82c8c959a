package events

import "context"

// Publisher интерфейс отправки событий во внешний sink
// Реализации обязаны не блокировать вызывающую операцию надолго
// и возвращать ошибку только для логирования
type Publisher interface {
	PublishAssignmentCreated(ctx context.Context, event AssignmentCreated) error
	PublishAssignmentReleased(ctx context.Context, event AssignmentReleased) error
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
	PublishBookingCancelled(ctx context.Context, event BookingCancelled) error
	PublishPaymentStatusChanged(ctx context.Context, event PaymentStatusChanged) error
}

// NopPublisher заглушка, используется когда отправка событий выключена
type NopPublisher struct{}

func (NopPublisher) PublishAssignmentCreated(context.Context, AssignmentCreated) error {
	return nil
}

func (NopPublisher) PublishAssignmentReleased(context.Context, AssignmentReleased) error {
	return nil
}

func (NopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmed) error {
	return nil
}

func (NopPublisher) PublishBookingCancelled(context.Context, BookingCancelled) error {
	return nil
}

func (NopPublisher) PublishPaymentStatusChanged(context.Context, PaymentStatusChanged) error {
	return nil
}
