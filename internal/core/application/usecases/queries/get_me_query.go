package queries

import (
	"errors"
	"strings"

	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrGetMeQueryIsNotConstructed = errors.New("GetMeQuery must be created via NewGetMeQuery constructor")
)

// GetMeQuery reads the account of the authenticated caller.
type GetMeQuery struct {
	username string

	guard guard.ConstructorGuard
}

func NewGetMeQuery(username string) (GetMeQuery, error) {
	if strings.TrimSpace(username) == "" {
		return GetMeQuery{}, errs.NewValueIsRequiredError("username")
	}
	return GetMeQuery{username: username, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

func (q GetMeQuery) Username() string {
	return q.username
}

type MeView struct {
	Username string
	Roles    []string
}
