package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"haul/internal/core/domain/model/order"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand places an order with a restaurant on behalf of a
// customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(restaurantID, "alice", "2x margherita, no olives")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if result.Type == CreateOrderRestaurantNotFound {
//	    // result.Errors[0] == "Restaurant with ID '...' not found."
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	restaurantID string
	customer     string
	details      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks that a restaurant id and a customer are given
// and that details hold 1..2000 characters. The restaurant id is not parsed
// here: an id that is not a UUID names no restaurant and is reported as such
// by the handler.
func NewCreateOrderCommand(restaurantID, customer, details string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setCustomer(customer),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) RestaurantID() string {
	return c.restaurantID
}

// Customer returns the username placing the order.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

func (c CreateOrderCommand) Details() string {
	return c.details
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID string) error {
	if strings.TrimSpace(restaurantID) == "" {
		return errs.NewValueIsRequiredError("restaurantId")
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setDetails(details string) error {
	n := utf8.RuneCountInString(details)
	if strings.TrimSpace(details) == "" || n > order.MaxDetailsLength {
		return errs.NewValueIsOutOfRangeError("orderDetails length", n, order.MinDetailsLength, order.MaxDetailsLength)
	}
	c.details = details
	return nil
}
