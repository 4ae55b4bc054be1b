package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishFailed = errs.New("failed to publish booking event")

// AMQPPublisher publishes lifecycle events to a durable topic exchange with
// the event type as routing key. The connection is opened lazily and
// reopened after a failure.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, exchange string) *AMQPPublisher {
	return &AMQPPublisher{url: url, exchange: exchange}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "marshal booking event"), ErrPublishFailed)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return errs.Mark(err, ErrPublishFailed)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    event.BookingID.String() + ":" + event.Type,
		Type:         event.Type,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, pub); err != nil {
		p.reset()
		return errs.Mark(errs.Wrap(err, "publish "+event.Type), ErrPublishFailed)
	}
	return nil
}

// channel must be called with p.mu held.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "dial amqp broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open amqp channel")
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange "+p.exchange)
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	slog.Info("amqp publisher closed", "exchange", p.exchange)
	return nil
}
