package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"haul/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "haul.order-events"

// ErrNotAcknowledged is returned when the broker nacks a message.
var ErrNotAcknowledged = errors.New("message was not acknowledged by the broker")

// OrderEventMessage is the body of every published message.
type OrderEventMessage struct {
	EventID   int64           `json:"eventId"`
	OrderID   string          `json:"orderId"`
	EventType string          `json:"eventType"`
	EventTime time.Time       `json:"eventTime"`
	Payload   json.RawMessage `json:"payload"`
}

// EventPublisher sends order events to a durable fanout exchange. Every
// subscriber queue bound to the exchange receives every event.
//
// It keeps one channel in confirm mode and opens a new one after a failure.
// Publish returns only once the broker has acknowledged the message, so an
// event is never reported as delivered before the broker has it.
type EventPublisher struct {
	conn     Connection
	exchange string

	mu sync.Mutex
	ch Channel
}

func NewEventPublisher(conn Connection, exchange string) *EventPublisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &EventPublisher{conn: conn, exchange: exchange}
}

var _ ports.EventPublisher = (*EventPublisher)(nil)

func (p *EventPublisher) Publish(ctx context.Context, event ports.OutboxEvent) error {
	body, err := json.Marshal(OrderEventMessage{
		EventID:   event.ID,
		OrderID:   event.OrderID.String(),
		EventType: event.EventType,
		EventTime: event.EventTime,
		Payload:   json.RawMessage(event.Payload),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, event.EventType, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    strconv.FormatInt(event.ID, 10),
		Type:         event.EventType,
		Timestamp:    event.EventTime,
		Body:         body,
	})
	if err != nil {
		p.reset()
		return fmt.Errorf("failed to publish message: %w", err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		// The confirmation of this message can no longer be matched reliably.
		p.reset()
		return fmt.Errorf("failed to confirm message: %w", err)
	}
	if !acked {
		return fmt.Errorf("%w: event %d", ErrNotAcknowledged, event.ID)
	}
	return nil
}

// Close releases the channel. The connection stays open.
func (p *EventPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}

func (p *EventPublisher) channel() (Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}
	if err = ch.ExchangeDeclare(p.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	p.ch = ch
	return ch, nil
}

func (p *EventPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
}
