package order

import (
	"time"

	"haul/internal/core/domain/model/kernel"
)

const (
	EventTypeCreated       = "OrderCreated"
	EventTypeStatusChanged = "OrderStatusChanged"
)

// Event is something that happened to an order. Events are stored in the same
// transaction as the order and relayed to the message broker afterwards.
type Event interface {
	EventType() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

type CreatedEvent struct {
	OrderID      kernel.UUID
	RestaurantID kernel.UUID
	CreatedBy    string
	Details      string
	At           time.Time
}

func (e CreatedEvent) EventType() string        { return EventTypeCreated }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

type StatusChangedEvent struct {
	OrderID   kernel.UUID
	From      Status
	To        Status
	ChangedBy string
	At        time.Time
}

func (e StatusChangedEvent) EventType() string        { return EventTypeStatusChanged }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }
