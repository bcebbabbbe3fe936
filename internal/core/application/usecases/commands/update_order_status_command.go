package commands

import (
	"errors"
	"strings"

	"haul/internal/core/domain/model/order"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand asks to move an order to another workflow status.
// IsAdmin is decided by the caller from the requester's role claims.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	status    order.Status
	requester string
	isAdmin   bool

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	orderID string,
	status order.Status,
	requester string,
	isAdmin bool,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setRequester(requester),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c UpdateOrderStatusCommand) Requester() string {
	return c.requester
}

func (c UpdateOrderStatusCommand) IsAdmin() bool {
	return c.isAdmin
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setRequester(requester string) error {
	if strings.TrimSpace(requester) == "" {
		return errs.NewValueIsRequiredError("requester")
	}
	c.requester = requester
	return nil
}
