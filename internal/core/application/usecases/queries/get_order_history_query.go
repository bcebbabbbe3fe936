package queries

import (
	"errors"
	"strings"
	"time"

	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

type GetOrderHistoryQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID string) (GetOrderHistoryQuery, error) {
	if strings.TrimSpace(orderID) == "" {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() string {
	return q.orderID
}

// OrderEventView is one stored order event. Payload is the raw JSON document.
type OrderEventView struct {
	ID          int64
	EventType   string
	EventTime   time.Time
	Payload     string
	PublishedAt *time.Time
}
