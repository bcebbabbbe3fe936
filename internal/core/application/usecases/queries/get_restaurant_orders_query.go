package queries

import (
	"errors"
	"strings"

	"haul/internal/core/domain/model/identity"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
	)
)

type GetRestaurantOrdersQuery struct {
	restaurantID string
	paging       Paging
	requester    identity.Principal
	isAdmin      bool

	guard guard.ConstructorGuard
}

func NewGetRestaurantOrdersQuery(
	restaurantID string,
	pageSize, pageNumber int,
	requester identity.Principal,
	isAdmin bool,
) (GetRestaurantOrdersQuery, error) {
	var errList []error
	if strings.TrimSpace(restaurantID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("restaurantId"))
	}
	paging, err := NewPaging(pageSize, pageNumber)
	if err != nil {
		errList = append(errList, err)
	}
	if err = errors.Join(errList...); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		paging:       paging,
		requester:    requester,
		isAdmin:      isAdmin,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

func (q GetRestaurantOrdersQuery) RestaurantID() string {
	return q.restaurantID
}

func (q GetRestaurantOrdersQuery) Paging() Paging {
	return q.paging
}

func (q GetRestaurantOrdersQuery) Requester() identity.Principal {
	return q.requester
}

func (q GetRestaurantOrdersQuery) IsAdmin() bool {
	return q.isAdmin
}

type GetRestaurantOrdersResultType int

const (
	GetRestaurantOrdersSucceeded GetRestaurantOrdersResultType = iota + 1
	GetRestaurantOrdersRestaurantNotFound
	GetRestaurantOrdersNoAccess
)

type GetRestaurantOrdersResult struct {
	Type   GetRestaurantOrdersResultType
	Orders Page[OrderView]
	Errors []string
}
