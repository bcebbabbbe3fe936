package queries

import (
	"context"
	"database/sql"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the events of the order in the order they were written, or
// *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]OrderEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(query.OrderID())
	if err != nil || id.IsZero() {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var exists bool
	if err = h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, id.Value()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT e.id, e.event_type, e.event_time, e.payload::text, e.published_at
		FROM order_events e
		WHERE e.order_id = ?
		ORDER BY e.id
	`, id.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]OrderEventView, 0)
	for rows.Next() {
		var v OrderEventView
		var publishedAt sql.NullTime
		if err = rows.Scan(&v.ID, &v.EventType, &v.EventTime, &v.Payload, &publishedAt); err != nil {
			return nil, err
		}
		v.EventTime = v.EventTime.UTC()
		if publishedAt.Valid {
			at := publishedAt.Time.UTC()
			v.PublishedAt = &at
		}
		history = append(history, v)
	}

	return history, rows.Err()
}
