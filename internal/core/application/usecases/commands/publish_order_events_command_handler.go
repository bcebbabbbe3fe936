package commands

import (
	"context"
	"fmt"

	"haul/internal/core/ports"
)

// PublishOrderEventsCommandHandler relays stored order events to the message
// broker. The batch stays locked for the duration of the transaction, so two
// relays never publish the same event concurrently.
//
// Events are published oldest first. When publishing fails, the events that
// went out before the failure are still marked, and the rest are left for the
// next run.
type PublishOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
}

func NewPublishOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
) PublishOrderEventsCommandHandler {
	return PublishOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle returns the number of events marked as published.
func (h *PublishOrderEventsCommandHandler) Handle(ctx context.Context, cmd PublishOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	eventRepo := uow.OrderEventRepository()
	events, err := eventRepo.FetchUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	published := make([]int64, 0, len(events))
	var publishErr error
	for _, e := range events {
		if publishErr = h.publisher.Publish(ctx, e); publishErr != nil {
			publishErr = fmt.Errorf("publish event %d of order %s: %w", e.ID, e.OrderID, publishErr)
			break
		}
		published = append(published, e.ID)
	}

	if len(published) > 0 {
		if err = eventRepo.MarkPublished(ctx, published, h.clock.Now()); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}
