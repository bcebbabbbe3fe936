package queries

import (
	"context"
	"errors"
	"fmt"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderByIDQueryHandler struct {
	db       *gorm.DB
	managers ports.ManagerDirectory
}

func NewGetOrderByIDQueryHandler(db *gorm.DB, managers ports.ManagerDirectory) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db, managers: managers}
}

// Handle reports OrderNotFound with a single message naming the id. An id
// that is not a UUID is reported the same way.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (GetOrderByIDResult, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDResult{}, err
	}

	notFound := GetOrderByIDResult{
		Type:   GetOrderByIDOrderNotFound,
		Errors: []string{fmt.Sprintf("Order with ID '%s' not found.", query.OrderID())},
	}

	id, err := kernel.UUIDFromString(query.OrderID())
	if err != nil || id.IsZero() {
		return notFound, nil
	}

	o, err := h.loadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound, nil
		}
		return GetOrderByIDResult{}, err
	}

	managers, err := h.managers.RestaurantManagers(ctx, o.RestaurantID())
	if err != nil {
		return GetOrderByIDResult{}, err
	}

	return GetOrderByIDResult{
		Type:               GetOrderByIDSucceeded,
		Order:              o,
		RestaurantManagers: managers,
	}, nil
}

func (h GetOrderByIDQueryHandler) loadOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`, o.version
		FROM orders o
		WHERE o.id = ?
	`, id.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	var v OrderView
	var rawID, restaurantID, version uuid.UUID
	var status int
	if err = rows.Scan(
		&rawID, &restaurantID, &v.Details, &status, &v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt, &version,
	); err != nil {
		return nil, err
	}

	rID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return nil, err
	}
	ver, err := kernel.UUIDFromBytes(version[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, rID, v.Details, order.Status(status), v.CreatedAt.UTC(), v.CreatedBy, v.LastUpdatedAt.UTC(), ver,
	)
}
