package queries

import (
	"errors"
	"strings"

	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery lists the orders a user created.
type GetUserOrdersQuery struct {
	username string
	paging   Paging

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(username string, pageSize, pageNumber int) (GetUserOrdersQuery, error) {
	var errList []error
	if strings.TrimSpace(username) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	paging, err := NewPaging(pageSize, pageNumber)
	if err != nil {
		errList = append(errList, err)
	}
	if err = errors.Join(errList...); err != nil {
		return GetUserOrdersQuery{}, err
	}
	return GetUserOrdersQuery{username: username, paging: paging, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) Username() string {
	return q.username
}

func (q GetUserOrdersQuery) Paging() Paging {
	return q.paging
}
