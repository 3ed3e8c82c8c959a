// Package rabbitmq публикация событий жизненного цикла в RabbitMQ.
// Очереди durable, сообщения persistent. Ошибки публикации логируются
// и возвращаются вызывающему, который их игнорирует - событие не должно
// провалить породившую его операцию.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-DiveTripService/internal/events"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher AMQP publisher событий жизненного цикла
type Publisher struct {
	url string
	log Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel

	declared map[string]bool
}

// NewPublisher создает publisher и устанавливает соединение с брокером
func NewPublisher(url string, log Logger) (*Publisher, error) {
	p := &Publisher{
		url:      url,
		log:      log,
		declared: make(map[string]bool),
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

// PublishAssignmentCreated публикует событие назначения дайвера
func (p *Publisher) PublishAssignmentCreated(ctx context.Context, event events.AssignmentCreated) error {
	return p.publish(ctx, events.QueueAssignmentCreated, event)
}

// PublishAssignmentReleased публикует событие освобождения места
func (p *Publisher) PublishAssignmentReleased(ctx context.Context, event events.AssignmentReleased) error {
	return p.publish(ctx, events.QueueAssignmentReleased, event)
}

// PublishBookingConfirmed публикует событие подтверждения бронирования
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmed) error {
	return p.publish(ctx, events.QueueBookingConfirmed, event)
}

// PublishBookingCancelled публикует событие отмены бронирования
func (p *Publisher) PublishBookingCancelled(ctx context.Context, event events.BookingCancelled) error {
	return p.publish(ctx, events.QueueBookingCancelled, event)
}

// PublishPaymentStatusChanged публикует событие смены статуса оплаты
func (p *Publisher) PublishPaymentStatusChanged(ctx context.Context, event events.PaymentStatusChanged) error {
	return p.publish(ctx, events.QueuePaymentStatusChanged, event)
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial failed: %v", ErrNotConnected, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: channel open failed: %v", ErrNotConnected, err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

func (p *Publisher) publish(ctx context.Context, queue string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("rabbitmq: marshal event for %s failed: %v", queue, err)
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.conn == nil || p.conn.IsClosed() {
		// Пробуем восстановить соединение один раз
		if err := p.connect(); err != nil {
			p.log.Error("rabbitmq: reconnect failed: %v", err)
			return err
		}
		p.declared = make(map[string]bool)
	}

	// Объявление очереди идемпотентно, делаем один раз на соединение
	if !p.declared[queue] {
		if _, err := p.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			p.log.Error("rabbitmq: queue declare %s failed: %v", queue, err)
			return fmt.Errorf("%w: queue declare: %v", ErrPublish, err)
		}
		p.declared[queue] = true
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		p.log.Error("rabbitmq: publish to %s failed: %v", queue, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return nil
}
