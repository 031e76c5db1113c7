// Package rabbitmq announces committed order status changes on a fanout exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"orderlifecycle/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the durable fanout exchange status changes are published to.
const ExchangeName = "order_status_changed"

var ErrPublishNacked = errors.New("publish NACK from broker")

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// StatusChangedMessage is the JSON body of every published message.
type StatusChangedMessage struct {
	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	Event          string    `json:"event"`
	ActorRole      string    `json:"actorRole"`
	ActorID        int64     `json:"actorId"`
	ChangedAt      time.Time `json:"changedAt"`
}

// StatusPublisher implements ports.StatusPublisher.
// Publishes are serialized so every confirmation is matched to its message.
type StatusPublisher struct {
	conn *amqp.Connection
	ch   channel
	acks <-chan amqp.Confirmation

	mu sync.Mutex
}

// Dial connects, switches the channel to confirm mode and declares the exchange.
func Dial(url string) (*StatusPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable confirm mode: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	p, err := newStatusPublisher(ch, acks)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newStatusPublisher(ch channel, acks <-chan amqp.Confirmation) (*StatusPublisher, error) {
	if err := ch.ExchangeDeclare(ExchangeName, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", ExchangeName, err)
	}
	return &StatusPublisher{ch: ch, acks: acks}, nil
}

// Publish sends change as a persistent message and, in confirm mode, waits for the broker.
func (p *StatusPublisher) Publish(ctx context.Context, change ports.StatusChanged) error {
	msg, err := newPublishing(change)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ch.PublishWithContext(ctx, ExchangeName, "", false, false, msg); err != nil {
		return fmt.Errorf("failed to publish status change: %w", err)
	}

	if p.acks == nil {
		return nil
	}

	select {
	case conf, ok := <-p.acks:
		if !ok {
			return amqp.ErrClosed
		}
		if !conf.Ack {
			return ErrPublishNacked
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *StatusPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

func newPublishing(change ports.StatusChanged) (amqp.Publishing, error) {
	body, err := json.Marshal(StatusChangedMessage{
		OrderID:        change.OrderID.String(),
		PreviousStatus: change.From.String(),
		Status:         change.Status.String(),
		Event:          change.Event.String(),
		ActorRole:      change.ActorRole.String(),
		ActorID:        change.ActorID,
		ChangedAt:      change.ChangedAt.UTC(),
	})
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		CorrelationId: change.OrderID.String(),
		Timestamp:     change.ChangedAt.UTC(),
		Headers: amqp.Table{
			"x-source": "order-lifecycle",
		},
		Body: body,
	}, nil
}
