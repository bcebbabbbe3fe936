package queries

import (
	"errors"
	"strings"

	"haul/internal/core/domain/model/order"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery loads one order together with the managers of its
// restaurant, which is what the caller needs to decide whether the requester
// may see it.
//
// Example:
//
//	query, _ := NewGetOrderByIDQuery(id)
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if result.Type == GetOrderByIDSucceeded &&
//	    policy.CanViewOrder(principal, result.Order, result.RestaurantManagers) {
//	    // render result.Order
//	}
type GetOrderByIDQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderByIDQuery(orderID string) (GetOrderByIDQuery, error) {
	if strings.TrimSpace(orderID) == "" {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderByIDQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

func (q GetOrderByIDQuery) OrderID() string {
	return q.orderID
}

type GetOrderByIDResultType int

const (
	GetOrderByIDSucceeded GetOrderByIDResultType = iota + 1
	GetOrderByIDOrderNotFound
)

type GetOrderByIDResult struct {
	Type               GetOrderByIDResultType
	Order              *order.Order
	RestaurantManagers []string
	Errors             []string
}
