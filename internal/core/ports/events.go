package ports

import (
	"context"
	"time"

	"haul/internal/core/domain/model/kernel"
)

// OutboxEvent is an order event as stored in the outbox table.
type OutboxEvent struct {
	ID        int64
	OrderID   kernel.UUID
	EventType string
	EventTime time.Time
	Payload   []byte
}

// OrderEventRepository reads and acknowledges stored order events. Events are
// written by the unit of work when the order itself is saved.
type OrderEventRepository interface {
	// FetchUnpublished locks and returns up to limit unpublished events,
	// oldest first. Rows locked by another relay are skipped.
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxEvent, error)

	MarkPublished(ctx context.Context, ids []int64, at time.Time) error
}

// EventPublisher delivers an order event to subscribers outside the service.
type EventPublisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}
