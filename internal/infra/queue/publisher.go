// Package queue publishes booking events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher holds one channel for the process. amqp channels are not
// safe for concurrent publishing, so publishes are serialized.
type AMQPPublisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     channel
	queue  string
	logger *slog.Logger
}

func DialAMQP(cfg config.QueueConfig, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open amqp channel")
	}
	p, err := NewAMQPPublisher(ch, cfg.BookingCreatedQueue, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func NewAMQPPublisher(ch channel, queue string, logger *slog.Logger) (*AMQPPublisher, error) {
	// Durable so events survive a broker restart.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, errs.Wrapf(err, "declare queue %s", queue)
	}
	return &AMQPPublisher{ch: ch, queue: queue, logger: logger}, nil
}

func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, event commands.BookingCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal booking created event")
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID.String(),
		Type:         "booking.created",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errs.Wrap(err, "publish booking created event")
	}
	p.logger.Debug("Published booking created event", "booking_id", event.BookingID, "queue", p.queue)
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// LogPublisher records events in the application log when no broker is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishBookingCreated(_ context.Context, event commands.BookingCreatedEvent) error {
	p.logger.Info("Booking created",
		"booking_id", event.BookingID,
		"experience_id", event.ExperienceID,
		"guests", event.Guests,
		"total_amount_cents", event.TotalAmountCents,
		"status", event.Status,
	)
	return nil
}
