package commands

import (
	"errors"
	"strings"

	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrAuthenticateUserCommandIsNotConstructed = errors.New(
		"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
	)
)

// AuthenticateUserCommand exchanges credentials for an access token. Only
// presence is checked here so that malformed and wrong credentials produce
// the same answer.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserCommand(username, password string) (AuthenticateUserCommand, error) {
	var errList []error
	if strings.TrimSpace(username) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return AuthenticateUserCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Username() string {
	return c.username
}

func (c AuthenticateUserCommand) Password() string {
	return c.password
}
