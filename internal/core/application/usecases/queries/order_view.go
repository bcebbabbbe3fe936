package queries

import (
	"context"
	"database/sql"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is the read model of an order in lists.
type OrderView struct {
	ID            kernel.UUID
	RestaurantID  kernel.UUID
	Details       string
	Status        order.Status
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
}

const orderColumns = `o.id, o.restaurant_id, o.details, o.status, o.created_at, o.created_by, o.last_updated_at`

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var v OrderView
		var id, restaurantID uuid.UUID
		var status int

		if err := rows.Scan(&id, &restaurantID, &v.Details, &status, &v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		rID, err := kernel.UUIDFromBytes(restaurantID[:])
		if err != nil {
			return nil, err
		}

		v.ID = orderID
		v.RestaurantID = rID
		v.Status = order.Status(status)
		v.CreatedAt = v.CreatedAt.UTC()
		v.LastUpdatedAt = v.LastUpdatedAt.UTC()
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

// listOrders returns the orders matching where, newest first. Orders created
// at the same instant are ordered by id so pages never overlap.
func listOrders(ctx context.Context, db *gorm.DB, where string, arg any, paging Paging) (Page[OrderView], error) {
	var total int64
	if err := db.WithContext(ctx).
		Raw(`SELECT count(*) FROM orders o WHERE `+where, arg).
		Scan(&total).Error; err != nil {
		return Page[OrderView]{}, err
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE `+where+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, arg, paging.Size(), paging.Offset()).Rows()
	if err != nil {
		return Page[OrderView]{}, err
	}

	items, err := scanOrderViews(rows)
	if err != nil {
		return Page[OrderView]{}, err
	}

	return Page[OrderView]{
		Items:      items,
		PageNumber: paging.Number(),
		PageSize:   paging.Size(),
		TotalCount: total,
	}, nil
}
