// Package eventrepo is the order event outbox: events are inserted in the
// transaction that changed the order and relayed to the broker later.
package eventrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"haul/internal/adapters/out/postgres/orderrepo"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/core/ports"

	"github.com/google/uuid"
)

type OrderEventDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"size:64;not null"`
	EventTime   time.Time  `gorm:"not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	PublishedAt *time.Time `gorm:"index"`

	Order *orderrepo.OrderDTO `gorm:"foreignKey:OrderID"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

type createdPayload struct {
	Details      string `json:"details"`
	RestaurantID string `json:"restaurantId"`
	CreatedBy    string `json:"createdBy"`
}

type statusChangedPayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	ChangedBy string `json:"changedBy"`
}

func fromDomain(e order.Event) (OrderEventDTO, error) {
	var body any
	switch ev := e.(type) {
	case order.CreatedEvent:
		body = createdPayload{
			Details:      ev.Details,
			RestaurantID: ev.RestaurantID.String(),
			CreatedBy:    ev.CreatedBy,
		}
	case order.StatusChangedEvent:
		body = statusChangedPayload{
			From:      ev.From.String(),
			To:        ev.To.String(),
			ChangedBy: ev.ChangedBy,
		}
	default:
		return OrderEventDTO{}, fmt.Errorf("unsupported order event %T", e)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return OrderEventDTO{}, err
	}

	return OrderEventDTO{
		OrderID:   e.AggregateID().Value(),
		EventType: e.EventType(),
		EventTime: e.OccurredAt(),
		Payload:   payload,
	}, nil
}

func toOutboxEvent(dto OrderEventDTO) (ports.OutboxEvent, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ports.OutboxEvent{}, err
	}
	return ports.OutboxEvent{
		ID:        dto.ID,
		OrderID:   orderID,
		EventType: dto.EventType,
		EventTime: dto.EventTime.UTC(),
		Payload:   dto.Payload,
	}, nil
}
