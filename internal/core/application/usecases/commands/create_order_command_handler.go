package commands

import (
	"context"
	"errors"
	"fmt"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
)

// CreateOrderCommandHandler stores a new order in status Created.
//
// The restaurant is not looked up beforehand. The insert carries a foreign key
// to restaurants and a violation comes back from the repository as
// *errs.ReferenceNotFoundError, which is reported as
// CreateOrderRestaurantNotFound.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	restaurantID, err := kernel.UUIDFromString(cmd.RestaurantID())
	if err != nil || restaurantID.IsZero() {
		return restaurantNotFound(cmd.RestaurantID()), nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, cmd.Customer(), cmd.Details(), h.clock.Now())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		if errors.Is(err, errs.ErrReferenceNotFound) {
			return restaurantNotFound(cmd.RestaurantID()), nil
		}
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{Type: CreateOrderSucceeded, OrderID: o.ID()}, nil
}

func restaurantNotFound(id string) CreateOrderResult {
	return CreateOrderResult{
		Type:   CreateOrderRestaurantNotFound,
		Errors: []string{fmt.Sprintf("Restaurant with ID '%s' not found.", id)},
	}
}
