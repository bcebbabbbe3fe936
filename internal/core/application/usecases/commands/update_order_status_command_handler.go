package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/core/domain/services"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/retry"
)

// DefaultConcurrencyRetries is how many times a status update is retried
// after losing a version race, on top of the first attempt.
const DefaultConcurrencyRetries = 5

// UpdateOrderStatusCommandHandler applies a status change under optimistic
// concurrency.
//
// Each attempt runs in its own transaction:
//  1. load the order and its restaurant's managers
//  2. OrderNotFound when there is no such order
//  3. Forbidden unless the requester is an admin or a manager of the restaurant
//  4. WrongOrderStatus unless the transition table allows current -> target
//  5. change the status and write it conditionally on the version read in 1
//
// When the conditional write finds a different version, another writer got
// there first: the attempt is rolled back, a warning is logged and the whole
// sequence runs again against fresh state. After DefaultConcurrencyRetries
// failed retries the conflict is returned as an error.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
	policy     services.AccessPolicy
	logger     *slog.Logger
	maxRetries int
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     services.NewAccessPolicy(),
		logger:     logger.With("component", "update_order_status_handler"),
		maxRetries: DefaultConcurrencyRetries,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	orderID, err := kernel.UUIDFromString(cmd.OrderID())
	if err != nil || orderID.IsZero() {
		return orderNotFound(cmd.OrderID()), nil
	}

	policy := retry.Policy{
		MaxRetries:  h.maxRetries,
		ShouldRetry: isVersionConflict,
		OnRetry: func(ctx context.Context, n int, err error) {
			h.logger.WarnContext(ctx, "Failed to update order due to concurrency conflict. Retrying...",
				"order_id", orderID.String(), "retry", n, "error", err)
		},
	}

	return retry.Do(ctx, policy, func(ctx context.Context) (UpdateOrderStatusResult, error) {
		return h.attempt(ctx, orderID, cmd)
	})
}

func (h *UpdateOrderStatusCommandHandler) attempt(
	ctx context.Context,
	orderID kernel.UUID,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, managers, err := orderRepo.GetWithManagers(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderNotFound(cmd.OrderID()), nil
		}
		return UpdateOrderStatusResult{}, err
	}

	requester := identity.NewPrincipal(cmd.Requester())
	if !h.policy.CanMutateOrder(requester, cmd.IsAdmin(), managers) {
		return UpdateOrderStatusResult{
			Type: UpdateOrderStatusForbidden,
			Errors: []string{fmt.Sprintf(
				"User '%s' is not authorized to update order with ID '%s'.", cmd.Requester(), cmd.OrderID(),
			)},
		}, nil
	}

	if !order.IsAllowed(o.Status(), cmd.Status()) {
		return UpdateOrderStatusResult{
			Type: UpdateOrderStatusWrongOrderStatus,
			Errors: []string{fmt.Sprintf(
				"Order with ID '%s' cannot be updated to status '%s'.", cmd.OrderID(), cmd.Status(),
			)},
		}, nil
	}

	if err = o.ChangeStatus(cmd.Status(), cmd.Requester(), h.clock.Now()); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	return UpdateOrderStatusResult{Type: UpdateOrderStatusSucceeded}, nil
}

func isVersionConflict(err error) bool {
	return errors.Is(err, errs.ErrVersionIsInvalid)
}

func orderNotFound(id string) UpdateOrderStatusResult {
	return UpdateOrderStatusResult{
		Type:   UpdateOrderStatusOrderNotFound,
		Errors: []string{fmt.Sprintf("Order with ID '%s' not found.", id)},
	}
}
