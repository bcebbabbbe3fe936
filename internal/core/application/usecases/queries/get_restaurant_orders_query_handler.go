package queries

import (
	"context"
	"errors"
	"fmt"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/services"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRestaurantOrdersQueryHandler struct {
	db       *gorm.DB
	managers ports.ManagerDirectory
	policy   services.AccessPolicy
}

func NewGetRestaurantOrdersQueryHandler(db *gorm.DB, managers ports.ManagerDirectory) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db, managers: managers, policy: services.NewAccessPolicy()}
}

func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) (GetRestaurantOrdersResult, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantOrdersResult{}, err
	}

	notFound := GetRestaurantOrdersResult{
		Type:   GetRestaurantOrdersRestaurantNotFound,
		Errors: []string{fmt.Sprintf("Restaurant with ID '%s' not found.", query.RestaurantID())},
	}

	id, err := kernel.UUIDFromString(query.RestaurantID())
	if err != nil || id.IsZero() {
		return notFound, nil
	}

	managers, err := h.managers.RestaurantManagers(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound, nil
		}
		return GetRestaurantOrdersResult{}, err
	}

	if !h.policy.CanViewRestaurantOrders(query.Requester(), query.IsAdmin(), managers) {
		return GetRestaurantOrdersResult{
			Type:   GetRestaurantOrdersNoAccess,
			Errors: []string{"You are not authorized to view this restaurant's orders."},
		}, nil
	}

	page, err := listOrders(ctx, h.db, "o.restaurant_id = ?", id.Value(), query.Paging())
	if err != nil {
		return GetRestaurantOrdersResult{}, err
	}

	return GetRestaurantOrdersResult{Type: GetRestaurantOrdersSucceeded, Orders: page}, nil
}
